package trade

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"susie.mx/gokemon-client/internal/clients/gokemon"
	gokemonmock "susie.mx/gokemon-client/internal/clients/gokemon/mock"
	"susie.mx/gokemon-client/internal/entities"
	"susie.mx/gokemon-client/internal/errors"
	"susie.mx/gokemon-client/internal/pkg/idgen"
)

const (
	viewerID  = int64(3)
	profileID = int64(4)
)

var (
	offeredItem = entities.OwnedItem{ID: 11, SpeciesID: 25, FormIndex: 0}
	wantedItem  = entities.OwnedItem{ID: 22, SpeciesID: 7, FormIndex: 0}
)

func newTestWorkflow(t *testing.T, client gokemon.Client, onSubmitted func()) *Workflow {
	t.Helper()

	w, err := NewWorkflow(&Config{
		Client:      client,
		IDGenerator: idgen.NewSequential("draft"),
		OnSubmitted: onSubmitted,
	})
	require.NoError(t, err)
	return w
}

func TestNewWorkflow_Validation(t *testing.T) {
	_, err := NewWorkflow(&Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestWorkflow_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := gokemonmock.NewMockClient(ctrl)

	refreshed := false
	w := newTestWorkflow(t, mockClient, func() { refreshed = true })

	assert.Equal(t, StateClosed, w.State())

	require.NoError(t, w.Begin(viewerID, profileID, nil))
	assert.Equal(t, StateSelecting, w.State())

	require.NoError(t, w.SelectOffered(offeredItem))
	assert.Equal(t, StateSelecting, w.State(), "one side chosen stays selecting")

	require.NoError(t, w.SelectWanted(wantedItem))
	assert.Equal(t, StateProposing, w.State())

	mockClient.EXPECT().
		CreateTradeRequest(gomock.Any(), &gokemon.CreateTradeRequestInput{
			OfferedItemID: offeredItem.ID,
			FriendID:      profileID,
			WantedItemID:  wantedItem.ID,
		}).
		Return(nil)

	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, StateClosed, w.State())
	assert.True(t, refreshed, "successful submit triggers the refresh hook")

	offered, wanted := w.Draft()
	assert.Nil(t, offered)
	assert.Nil(t, wanted)
}

func TestWorkflow_Begin(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newTestWorkflow(t, gokemonmock.NewMockClient(ctrl), nil)

	t.Run("requires a viewer", func(t *testing.T) {
		err := w.Begin(0, profileID, nil)
		assert.True(t, errors.IsUnauthenticated(err))
	})

	t.Run("rejects self trade", func(t *testing.T) {
		err := w.Begin(viewerID, viewerID, nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("prefills the offered side", func(t *testing.T) {
		require.NoError(t, w.Begin(viewerID, profileID, &offeredItem))
		offered, wanted := w.Draft()
		require.NotNil(t, offered)
		assert.Equal(t, offeredItem.ID, offered.ID)
		assert.Nil(t, wanted)
	})
}

func TestWorkflow_SwitchingProfileDiscardsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newTestWorkflow(t, gokemonmock.NewMockClient(ctrl), nil)

	require.NoError(t, w.Begin(viewerID, profileID, nil))
	require.NoError(t, w.SelectOffered(offeredItem))

	// Same pair keeps the draft.
	require.NoError(t, w.Begin(viewerID, profileID, nil))
	offered, _ := w.Draft()
	require.NotNil(t, offered)

	// A different profile discards it.
	require.NoError(t, w.Begin(viewerID, profileID+1, nil))
	offered, wanted := w.Draft()
	assert.Nil(t, offered)
	assert.Nil(t, wanted)
	assert.Equal(t, StateSelecting, w.State())
}

func TestWorkflow_CancelFromProposing(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newTestWorkflow(t, gokemonmock.NewMockClient(ctrl), nil)

	require.NoError(t, w.Begin(viewerID, profileID, nil))
	require.NoError(t, w.SelectOffered(offeredItem))
	require.NoError(t, w.SelectWanted(wantedItem))
	require.Equal(t, StateProposing, w.State())

	w.Cancel()
	assert.Equal(t, StateClosed, w.State())

	offered, wanted := w.Draft()
	assert.Nil(t, offered)
	assert.Nil(t, wanted)
}

func TestWorkflow_ReplacingSelectionKeepsProposing(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newTestWorkflow(t, gokemonmock.NewMockClient(ctrl), nil)

	require.NoError(t, w.Begin(viewerID, profileID, nil))
	require.NoError(t, w.SelectOffered(offeredItem))
	require.NoError(t, w.SelectWanted(wantedItem))

	other := entities.OwnedItem{ID: 33, SpeciesID: 1}
	require.NoError(t, w.SelectOffered(other))
	assert.Equal(t, StateProposing, w.State(), "no implicit reset on reselect")

	offered, _ := w.Draft()
	assert.Equal(t, other.ID, offered.ID)
}

func TestWorkflow_SelectRequiresOpenDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newTestWorkflow(t, gokemonmock.NewMockClient(ctrl), nil)

	assert.True(t, errors.IsFailedPrecondition(w.SelectOffered(offeredItem)))
	assert.True(t, errors.IsFailedPrecondition(w.SelectWanted(wantedItem)))
}

func TestWorkflow_SubmitOnlyFromProposing(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newTestWorkflow(t, gokemonmock.NewMockClient(ctrl), nil)

	assert.True(t, errors.IsFailedPrecondition(w.Submit(context.Background())))

	require.NoError(t, w.Begin(viewerID, profileID, nil))
	assert.True(t, errors.IsFailedPrecondition(w.Submit(context.Background())))
}

func TestWorkflow_FailedSubmitStaysProposing(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := gokemonmock.NewMockClient(ctrl)
	w := newTestWorkflow(t, mockClient, nil)

	require.NoError(t, w.Begin(viewerID, profileID, nil))
	require.NoError(t, w.SelectOffered(offeredItem))
	require.NoError(t, w.SelectWanted(wantedItem))

	mockClient.EXPECT().
		CreateTradeRequest(gomock.Any(), gomock.Any()).
		Return(errors.Unavailable("api down"))

	err := w.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
	assert.Equal(t, StateProposing, w.State(), "failure leaves the draft intact")

	offered, wanted := w.Draft()
	assert.NotNil(t, offered)
	assert.NotNil(t, wanted)
}

func TestWorkflow_NoDoubleSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := gokemonmock.NewMockClient(ctrl)
	w := newTestWorkflow(t, mockClient, nil)

	require.NoError(t, w.Begin(viewerID, profileID, nil))
	require.NoError(t, w.SelectOffered(offeredItem))
	require.NoError(t, w.SelectWanted(wantedItem))

	inFlight := make(chan struct{})
	release := make(chan struct{})

	// Exactly one CreateTradeRequest may ever be issued.
	mockClient.EXPECT().
		CreateTradeRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *gokemon.CreateTradeRequestInput) error {
			close(inFlight)
			<-release
			return nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, w.Submit(context.Background()))
	}()

	<-inFlight
	assert.Equal(t, StateSubmitting, w.State())

	err := w.Submit(context.Background())
	assert.True(t, errors.IsFailedPrecondition(err), "second submit while in flight is rejected")

	close(release)
	wg.Wait()
	assert.Equal(t, StateClosed, w.State())
}

func TestWorkflow_CancelDuringSubmitIgnoresResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := gokemonmock.NewMockClient(ctrl)

	refreshed := false
	w := newTestWorkflow(t, mockClient, func() { refreshed = true })

	require.NoError(t, w.Begin(viewerID, profileID, nil))
	require.NoError(t, w.SelectOffered(offeredItem))
	require.NoError(t, w.SelectWanted(wantedItem))

	inFlight := make(chan struct{})
	release := make(chan struct{})

	mockClient.EXPECT().
		CreateTradeRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *gokemon.CreateTradeRequestInput) error {
			close(inFlight)
			<-release
			return errors.Unavailable("api down")
		})

	done := make(chan error, 1)
	go func() { done <- w.Submit(context.Background()) }()

	<-inFlight
	w.Cancel()
	close(release)

	assert.NoError(t, <-done, "superseded response is dropped, not surfaced")
	assert.Equal(t, StateClosed, w.State())
	assert.False(t, refreshed)
}
