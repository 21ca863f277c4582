// Package trade implements the client-local trade proposal workflow: the
// two-sided item selection and submission flow for offering one of the
// viewer's items against one of the profile owner's. The draft exists only
// in memory and is never sent to the remote API until explicit submission.
package trade

import (
	"context"
	"log/slog"
	"sync"

	"susie.mx/gokemon-client/internal/clients/gokemon"
	"susie.mx/gokemon-client/internal/entities"
	"susie.mx/gokemon-client/internal/errors"
	"susie.mx/gokemon-client/internal/pkg/idgen"
)

// State is a trade workflow state.
type State string

// Workflow states
const (
	// StateClosed means no draft exists.
	StateClosed State = "closed"
	// StateSelecting means one side of the draft is chosen.
	StateSelecting State = "selecting"
	// StateProposing means both sides are chosen and the confirmation UI is
	// active.
	StateProposing State = "proposing"
	// StateSubmitting means a submission is in flight; submit is a no-op
	// until it resolves.
	StateSubmitting State = "submitting"
)

// Config holds the dependencies for the trade workflow
type Config struct {
	Client      gokemon.Client
	IDGenerator idgen.Generator
	// OnSubmitted is invoked after a successful submission. The owning view
	// uses it to trigger a full session refresh, since the draft and any
	// cached ownership index are stale at that point.
	OnSubmitted func()
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Workflow manages at most one trade draft, scoped to the (viewer, profile)
// pair it was begun for.
type Workflow struct {
	client      gokemon.Client
	idGen       idgen.Generator
	onSubmitted func()

	mu        sync.Mutex
	state     State
	draftID   string
	viewerID  int64
	profileID int64
	offered   *entities.OwnedItem
	wanted    *entities.OwnedItem
}

// NewWorkflow creates a trade workflow with the provided dependencies
func NewWorkflow(cfg *Config) (*Workflow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Workflow{
		client:      cfg.Client,
		idGen:       cfg.IDGenerator,
		onSubmitted: cfg.OnSubmitted,
		state:       StateClosed,
	}, nil
}

// Begin scopes a fresh draft to a (viewer, profile) pair. Any draft left
// over from a different profile is discarded; beginning again for the same
// pair keeps the current draft. prefill, when non-nil, seeds the offered
// side (the UI pre-fills the viewer's first owned item).
func (w *Workflow) Begin(viewerID, profileID int64, prefill *entities.OwnedItem) error {
	if viewerID == 0 {
		return errors.Unauthenticated("trading requires a logged-in viewer")
	}
	if viewerID == profileID {
		return errors.InvalidArgument("cannot open a trade against your own profile")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == StateSubmitting {
		return errors.FailedPrecondition("a submission is in flight")
	}
	if w.state != StateClosed && w.viewerID == viewerID && w.profileID == profileID {
		return nil
	}

	w.reset()
	w.draftID = w.idGen.Generate()
	w.viewerID = viewerID
	w.profileID = profileID
	if prefill != nil {
		item := *prefill
		w.offered = &item
	}
	w.state = StateSelecting
	return nil
}

// SelectOffered sets (or replaces) the viewer's side of the draft. With a
// wanted item already chosen the draft moves to Proposing; replacing a
// selection while Proposing stays in Proposing.
func (w *Workflow) SelectOffered(item entities.OwnedItem) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateClosed:
		return errors.FailedPrecondition("no draft open; call Begin first")
	case StateSubmitting:
		return errors.FailedPrecondition("a submission is in flight")
	}

	w.offered = &item
	if w.wanted != nil {
		w.state = StateProposing
	}
	return nil
}

// SelectWanted sets (or replaces) the profile owner's side of the draft.
func (w *Workflow) SelectWanted(item entities.OwnedItem) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateClosed:
		return errors.FailedPrecondition("no draft open; call Begin first")
	case StateSubmitting:
		return errors.FailedPrecondition("a submission is in flight")
	}

	w.wanted = &item
	if w.offered != nil {
		w.state = StateProposing
	}
	return nil
}

// Cancel discards the draft, both selections included. Covers the explicit
// cancel button and the outside-click dismissal.
func (w *Workflow) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

// Submit sends the draft to the remote API. Only reachable from Proposing;
// while the submission is in flight every further Submit is rejected. On
// success the draft clears and the refresh hook fires; on failure the draft
// stays in Proposing so the user can retry or adjust.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	switch w.state {
	case StateSubmitting:
		w.mu.Unlock()
		return errors.FailedPrecondition("submission already in flight")
	case StateProposing:
		// proceed
	default:
		w.mu.Unlock()
		return errors.FailedPreconditionf("cannot submit from state %q", w.state)
	}

	w.state = StateSubmitting
	draftID := w.draftID
	input := &gokemon.CreateTradeRequestInput{
		OfferedItemID: w.offered.ID,
		FriendID:      w.profileID,
		WantedItemID:  w.wanted.ID,
	}
	w.mu.Unlock()

	err := w.client.CreateTradeRequest(ctx, input)

	w.mu.Lock()
	if w.draftID != draftID {
		// The draft was cancelled or superseded while the request was in
		// flight; whatever happened remotely, this response no longer has a
		// draft to act on.
		w.mu.Unlock()
		return nil
	}

	if err != nil {
		w.state = StateProposing
		w.mu.Unlock()
		return errors.Wrap(err, "submitting trade proposal")
	}

	slog.Info("trade proposal submitted",
		"offered_item_id", input.OfferedItemID,
		"friend_id", input.FriendID,
		"wanted_item_id", input.WantedItemID,
	)

	w.reset()
	w.mu.Unlock()

	if w.onSubmitted != nil {
		w.onSubmitted()
	}
	return nil
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Draft returns copies of the current selections; either side may be nil.
func (w *Workflow) Draft() (offered, wanted *entities.OwnedItem) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.offered != nil {
		item := *w.offered
		offered = &item
	}
	if w.wanted != nil {
		item := *w.wanted
		wanted = &item
	}
	return offered, wanted
}

// reset must be called with the lock held.
func (w *Workflow) reset() {
	w.state = StateClosed
	w.draftID = ""
	w.viewerID = 0
	w.profileID = 0
	w.offered = nil
	w.wanted = nil
}
