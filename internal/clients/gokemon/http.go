package gokemon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"susie.mx/gokemon-client/internal/entities"
	"susie.mx/gokemon-client/internal/errors"
)

const sessionCookieName = "gokemon_session"

type client struct {
	baseURL       string
	sessionCookie string
	httpClient    *http.Client
}

// New creates a Gokemon API client from the provided config.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{
		baseURL:       cfg.BaseURL,
		sessionCookie: cfg.SessionCookie,
		httpClient:    &http.Client{Timeout: cfg.HTTPTimeout},
	}, nil
}

// Ensure client implements Client
var _ Client = (*client)(nil)

// do issues a request and decodes the JSON response into out (skipped when
// out is nil, which is the mutation fire-and-forget case).
func (c *client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "encoding %s %s request", method, path)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrapf(err, "building %s %s request", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.sessionCookie})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("%s %s failed", method, path))
	}
	defer func() { _ = resp.Body.Close() }()

	if code := errors.FromHTTPStatus(resp.StatusCode); code != errors.CodeOK {
		slog.Warn("API request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return errors.Newf(code, "%s %s returned %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, path)
	}
	return nil
}

// GetCatalog fetches the full species catalog
func (c *client) GetCatalog(ctx context.Context) ([]entities.Species, error) {
	var payload []speciesPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/pokemon", nil, &payload); err != nil {
		return nil, errors.Wrap(err, "fetching catalog")
	}

	catalog := make([]entities.Species, 0, len(payload))
	for _, sp := range payload {
		catalog = append(catalog, sp.toEntity())
	}
	return catalog, nil
}

// GetViewer fetches the authenticated account
func (c *client) GetViewer(ctx context.Context) (*entities.Account, error) {
	if c.sessionCookie == "" {
		return nil, errors.Unauthenticated("no session cookie held")
	}

	var payload accountPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, &payload); err != nil {
		return nil, errors.Wrap(err, "fetching viewer")
	}
	return payload.toEntity(), nil
}

// GetAccount fetches any account's public profile by id
func (c *client) GetAccount(ctx context.Context, accountID int64) (*entities.Account, error) {
	var payload accountPayload
	path := fmt.Sprintf("/api/v1/user/%d", accountID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, errors.Wrapf(err, "fetching account %d", accountID)
	}
	return payload.toEntity(), nil
}

// ListFriendRequests returns the viewer's outstanding friend requests
func (c *client) ListFriendRequests(ctx context.Context) (*FriendRequestList, error) {
	var payload friendRequestListPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/friendRequests", nil, &payload); err != nil {
		return nil, errors.Wrap(err, "listing friend requests")
	}

	list := &FriendRequestList{}
	for _, fr := range payload.Sent {
		list.Sent = append(list.Sent, fr.toEntity())
	}
	for _, fr := range payload.Received {
		list.Received = append(list.Received, fr.toEntity())
	}
	return list, nil
}

// CreateFriendRequest sends a friend request to another account
func (c *client) CreateFriendRequest(ctx context.Context, friendID int64) error {
	body := map[string]int64{"friendId": friendID}
	return c.do(ctx, http.MethodPost, "/api/v1/friendRequests", body, nil)
}

// AcceptFriendRequest accepts a received friend request
func (c *client) AcceptFriendRequest(ctx context.Context, requestID int64) error {
	path := fmt.Sprintf("/api/v1/friendRequests/%d/accept", requestID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// DeleteFriendRequest cancels a sent request or denies a received one
func (c *client) DeleteFriendRequest(ctx context.Context, requestID int64) error {
	body := map[string]int64{"friendRequestId": requestID}
	return c.do(ctx, http.MethodDelete, "/api/v1/friendRequests", body, nil)
}

// RemoveFriend dissolves an existing friendship
func (c *client) RemoveFriend(ctx context.Context, friendID int64) error {
	path := fmt.Sprintf("/api/v1/friends/%d", friendID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListTradeRequests returns the viewer's outstanding trade requests
func (c *client) ListTradeRequests(ctx context.Context) (*TradeRequestList, error) {
	var payload tradeRequestListPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/tradeRequests", nil, &payload); err != nil {
		return nil, errors.Wrap(err, "listing trade requests")
	}

	list := &TradeRequestList{}
	for _, tr := range payload.Sent {
		list.Sent = append(list.Sent, tr.toEntity())
	}
	for _, tr := range payload.Received {
		list.Received = append(list.Received, tr.toEntity())
	}
	return list, nil
}

// CreateTradeRequest offers one of the viewer's items against a friend's item
func (c *client) CreateTradeRequest(ctx context.Context, input *CreateTradeRequestInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	body := map[string]int64{
		"pokemonId":       input.OfferedItemID,
		"friendId":        input.FriendID,
		"friendPokemonId": input.WantedItemID,
	}
	return c.do(ctx, http.MethodPost, "/api/v1/tradeRequests", body, nil)
}

// AcceptTradeRequest accepts a received trade request, executing the swap
func (c *client) AcceptTradeRequest(ctx context.Context, requestID int64) error {
	path := fmt.Sprintf("/api/v1/tradeRequests/%d/accept", requestID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// DeleteTradeRequest cancels a sent trade request or denies a received one
func (c *client) DeleteTradeRequest(ctx context.Context, requestID int64) error {
	body := map[string]int64{"tradeRequestId": requestID}
	return c.do(ctx, http.MethodDelete, "/api/v1/tradeRequests", body, nil)
}

// ConfirmPendingSelection confirms a pending item by index and returns the
// now-owned item for optimistic append
func (c *client) ConfirmPendingSelection(ctx context.Context, index int) (*entities.OwnedItem, error) {
	if index < 0 {
		return nil, errors.InvalidArgumentf("pending index must be non-negative, got %d", index)
	}

	body := map[string]int{"index": index}
	var payload ownedItemPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/pendingPokemon/confirm", body, &payload); err != nil {
		return nil, errors.Wrapf(err, "confirming pending selection %d", index)
	}
	item := payload.toEntity()
	return &item, nil
}

// SetPreferredForm records the viewer's preferred form for a species
func (c *client) SetPreferredForm(ctx context.Context, speciesID int64, formIndex int) error {
	body := map[string]int64{
		"speciesId": speciesID,
		"formIndex": int64(formIndex),
	}
	return c.do(ctx, http.MethodPut, "/api/v1/preferredForms", body, nil)
}
