package gokemon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"susie.mx/gokemon-client/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(&Config{BaseURL: srv.URL, SessionCookie: "test-session"})
	require.NoError(t, err)
	return c
}

func TestClient_GetCatalog(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/pokemon", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]speciesPayload{
			{
				ID:          150,
				Name:        "Mewtwo",
				IsLegendary: true,
				Forms: []formPayload{
					{
						Name:    "mewtwo",
						Types:   []typePayload{{Name: "psychic"}},
						Sprites: spritesPayload{FrontDefault: "mewtwo.png", FrontShiny: "mewtwo-shiny.png"},
					},
				},
			},
		})
	})

	catalog, err := c.GetCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	sp := catalog[0]
	assert.Equal(t, int64(150), sp.ID)
	assert.Equal(t, "Mewtwo", sp.Name)
	assert.True(t, sp.IsLegendary)
	require.Len(t, sp.Forms, 1)
	assert.Equal(t, "psychic", sp.Forms[0].Types[0].Name)
	assert.Equal(t, "mewtwo-shiny.png", sp.Forms[0].Sprites.FrontShiny)
}

func TestClient_GetViewer(t *testing.T) {
	t.Run("sends session cookie", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			require.NoError(t, err)
			assert.Equal(t, "test-session", cookie.Value)

			_ = json.NewEncoder(w).Encode(accountPayload{
				ID:       3,
				Username: "ash",
				OwnedPokemon: []ownedItemPayload{
					{ID: 11, SpeciesID: 25, FormIndex: 0, IsShiny: true},
				},
				NextSelectionAt: 1700000000000,
				PreferredForms:  map[int64]int{25: 1},
			})
		})

		viewer, err := c.GetViewer(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ash", viewer.Username)
		require.Len(t, viewer.OwnedItems, 1)
		assert.True(t, viewer.OwnedItems[0].IsShiny)
		assert.Equal(t, int64(1700000000000), viewer.NextSelectionAt)
		assert.Equal(t, 1, viewer.PreferredForms[25])
	})

	t.Run("anonymous short-circuits", func(t *testing.T) {
		c, err := New(&Config{BaseURL: "http://localhost:1", SessionCookie: ""})
		require.NoError(t, err)

		_, err = c.GetViewer(context.Background())
		assert.True(t, errors.IsUnauthenticated(err))
	})
}

func TestClient_ListFriendRequests(t *testing.T) {
	// Literal server response: the received key is misspelled on the wire,
	// unlike the trade request list.
	const body = `{
		"sent": [
			{"id": 1, "user": {"id": 3, "username": "ash"}, "friend": {"id": 4, "username": "misty"}}
		],
		"recieved": [
			{"id": 2, "user": {"id": 5, "username": "brock"}, "friend": {"id": 3, "username": "ash"}}
		]
	}`

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/friendRequests", r.URL.Path)
		_, _ = w.Write([]byte(body))
	})

	list, err := c.ListFriendRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Sent, 1)
	require.Len(t, list.Received, 1)
	assert.Equal(t, "misty", list.Sent[0].To.Username)
	assert.Equal(t, "brock", list.Received[0].From.Username)
}

func TestClient_CreateTradeRequest(t *testing.T) {
	var got map[string]int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tradeRequests", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := c.CreateTradeRequest(context.Background(), &CreateTradeRequestInput{
		OfferedItemID: 11,
		FriendID:      4,
		WantedItemID:  22,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"pokemonId": 11, "friendId": 4, "friendPokemonId": 22}, got)

	assert.True(t, errors.IsInvalidArgument(c.CreateTradeRequest(context.Background(), nil)))
}

func TestClient_ConfirmPendingSelection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pendingPokemon/confirm", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 2, body["index"])

		_ = json.NewEncoder(w).Encode(ownedItemPayload{ID: 99, SpeciesID: 7, FormIndex: 0})
	})

	item, err := c.ConfirmPendingSelection(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(99), item.ID)
	assert.Equal(t, int64(7), item.SpeciesID)

	_, err = c.ConfirmPendingSelection(context.Background(), -1)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusUnauthorized, errors.IsUnauthenticated},
		{http.StatusNotFound, errors.IsNotFound},
		{http.StatusBadRequest, errors.IsInvalidArgument},
		{http.StatusInternalServerError, errors.IsUnavailable},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})

		_, err := c.GetAccount(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, tt.check(err), "status %d mapped to %s", tt.status, errors.GetCode(err))
	}
}

func TestClient_UnreachableHostIsUnavailable(t *testing.T) {
	c, err := New(&Config{BaseURL: "http://127.0.0.1:1", SessionCookie: "s"})
	require.NoError(t, err)

	_, err = c.GetCatalog(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}
