// Package catalog orchestrates the session snapshot and the catalog view:
// it fetches account data from the remote API, rebuilds the ownership
// indexes from every fresh snapshot, and assembles filtered catalog entries
// for display. All consumers read derived state through this orchestrator so
// no view ever computes status against a stale index.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock susie.mx/gokemon-client/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"sync"

	"susie.mx/gokemon-client/internal/clients/gokemon"
	"susie.mx/gokemon-client/internal/collection"
	"susie.mx/gokemon-client/internal/entities"
	"susie.mx/gokemon-client/internal/errors"
	"susie.mx/gokemon-client/internal/repositories/preferences"
)

// Service defines the interface for catalog and session operations
type Service interface {
	// RefreshSession fetches the viewer and profile accounts and rebuilds
	// the ownership indexes from the fresh snapshot.
	RefreshSession(ctx context.Context, input *RefreshSessionInput) (*RefreshSessionOutput, error)

	// View assembles the filtered catalog rows from the current snapshot.
	View(ctx context.Context, input *ViewInput) (*ViewOutput, error)

	// ConfirmPending confirms a pending selection by index, optimistically
	// appending the chosen item before the next full refresh.
	ConfirmPending(ctx context.Context, input *ConfirmPendingInput) (*ConfirmPendingOutput, error)

	// SetPreferredForm records which form represents a species for the viewer.
	SetPreferredForm(ctx context.Context, input *SetPreferredFormInput) (*SetPreferredFormOutput, error)

	// SavedFilter loads the viewer's persisted catalog filter.
	SavedFilter(ctx context.Context, input *SavedFilterInput) (*SavedFilterOutput, error)

	// SaveFilter persists the viewer's catalog filter choices.
	SaveFilter(ctx context.Context, input *SaveFilterInput) (*SaveFilterOutput, error)

	// ResetFilter drops the viewer's persisted filter, restoring defaults.
	ResetFilter(ctx context.Context, input *ResetFilterInput) (*ResetFilterOutput, error)

	// Session returns the current snapshot; nil before the first refresh.
	Session() *entities.Session

	// PendingEmpty reports whether the viewer's pending list is empty. Wired
	// into the countdown coordinator as its probe.
	PendingEmpty() bool

	// NextSelectionAt returns the viewer's next-selection timestamp in ms
	// since epoch, zero when unknown.
	NextSelectionAt() int64
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Client          gokemon.Client
	PreferencesRepo preferences.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.PreferencesRepo == nil {
		vb.RequiredField("PreferencesRepo")
	}

	return vb.Build()
}

// snapshot bundles everything derived from one session fetch. It is replaced
// wholesale on refresh, never mutated in place, so holders of an old
// snapshot keep reading consistent data.
type snapshot struct {
	session      *entities.Session
	viewerIndex  collection.Index // nil when logged out
	profileIndex collection.Index
}

type orchestrator struct {
	client gokemon.Client
	prefs  preferences.Repository

	mu      sync.Mutex
	catalog []entities.Species
	current *snapshot
	// refreshSeq orders refreshes; a completed fetch only applies if no
	// newer refresh started while it was in flight.
	refreshSeq uint64
}

// NewOrchestrator creates a catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.Client,
		prefs:  cfg.PreferencesRepo,
	}, nil
}

// RefreshSession fetches the viewer and profile and rebuilds the indexes
func (o *orchestrator) RefreshSession(ctx context.Context, input *RefreshSessionInput) (*RefreshSessionOutput, error) {
	o.mu.Lock()
	o.refreshSeq++
	seq := o.refreshSeq
	haveCatalog := o.catalog != nil
	o.mu.Unlock()

	if !haveCatalog {
		catalog, err := o.client.GetCatalog(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "fetching catalog")
		}
		o.mu.Lock()
		if o.catalog == nil {
			o.catalog = catalog
		}
		o.mu.Unlock()
	}

	viewer, err := o.client.GetViewer(ctx)
	if err != nil && !errors.IsUnauthenticated(err) {
		return nil, errors.Wrap(err, "fetching viewer")
	}

	var profile *entities.Account
	switch {
	case input.ProfileID != 0:
		profile, err = o.client.GetAccount(ctx, input.ProfileID)
		if err != nil {
			return nil, errors.Wrapf(err, "fetching profile %d", input.ProfileID)
		}
	case viewer != nil:
		profile = viewer
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if seq != o.refreshSeq {
		// A newer refresh started while this one was in flight; its result
		// will arrive with fresher data. Hand back the current snapshot and
		// drop ours.
		if o.current == nil {
			return nil, errors.FailedPrecondition("refresh superseded before first snapshot")
		}
		return &RefreshSessionOutput{Session: o.current.session}, nil
	}

	session := &entities.Session{
		Viewer:     viewer,
		Profile:    profile,
		Generation: seq,
	}

	next := &snapshot{session: session}
	if viewer != nil {
		next.viewerIndex = collection.BuildIndex(viewer.OwnedItems)
	}
	if profile != nil {
		next.profileIndex = collection.BuildIndex(profile.OwnedItems)
	} else {
		next.profileIndex = collection.BuildIndex(nil)
	}
	o.current = next

	slog.Info("session refreshed",
		"generation", seq,
		"has_viewer", viewer != nil,
		"profile_id", input.ProfileID,
	)

	return &RefreshSessionOutput{Session: session}, nil
}

// View assembles the filtered catalog rows from the current snapshot
func (o *orchestrator) View(ctx context.Context, input *ViewInput) (*ViewOutput, error) {
	o.mu.Lock()
	catalog := o.catalog
	current := o.current
	o.mu.Unlock()

	if catalog == nil || current == nil {
		return nil, errors.FailedPrecondition("no session snapshot; call RefreshSession first")
	}

	filter := collection.Filter{}
	if input.Filter != nil {
		filter = *input.Filter
	} else if current.session.Viewer != nil {
		saved, err := o.SavedFilter(ctx, &SavedFilterInput{})
		if err != nil {
			// Preferences are a convenience; fall back to defaults rather
			// than failing the whole view.
			slog.Warn("loading saved filter failed", "error", err)
		} else {
			filter = saved.Filter
		}
	}

	view := collection.View{
		ViewerIndex:  current.viewerIndex,
		ProfileIndex: current.profileIndex,
		SelfView:     current.session.SelfView(),
	}

	var preferredForms map[int64]int
	if current.session.Profile != nil {
		preferredForms = current.session.Profile.PreferredForms
	}

	filtered := filter.Apply(catalog, view)
	entries := make([]Entry, 0, len(filtered))
	for _, sp := range filtered {
		entry := Entry{Species: sp}

		if rep, ok := collection.Representative(sp.ID, preferredForms, current.profileIndex); ok {
			item := rep
			entry.Representative = &item
			if current.viewerIndex != nil {
				entry.Status = collection.ResolveStatus(rep, current.viewerIndex)
				entry.Badge = entry.Status.Badge()
			}
		}
		entries = append(entries, entry)
	}

	owned := 0
	for _, sp := range catalog {
		if current.profileIndex.OwnsSpecies(sp.ID) {
			owned++
		}
	}

	return &ViewOutput{
		Entries:      entries,
		TotalSpecies: len(catalog),
		OwnedSpecies: owned,
	}, nil
}

// ConfirmPending confirms a pending selection by index with optimistic append
func (o *orchestrator) ConfirmPending(ctx context.Context, input *ConfirmPendingInput) (*ConfirmPendingOutput, error) {
	o.mu.Lock()
	current := o.current
	o.mu.Unlock()

	if current == nil || current.session.Viewer == nil {
		return nil, errors.Unauthenticated("confirming a selection requires a logged-in viewer")
	}
	if input.Index < 0 || input.Index >= len(current.session.Viewer.PendingItems) {
		return nil, errors.InvalidArgumentf("pending index %d out of range", input.Index)
	}

	item, err := o.client.ConfirmPendingSelection(ctx, input.Index)
	if err != nil {
		return nil, errors.Wrap(err, "confirming pending selection")
	}

	// Optimistic append: show the new item immediately and clear the pending
	// list so there is no visible flash before the full refresh lands. The
	// next RefreshSession replaces this snapshot with server truth.
	o.mu.Lock()
	if o.current == current {
		viewer := *current.session.Viewer
		viewer.OwnedItems = append(append([]entities.OwnedItem{}, viewer.OwnedItems...), *item)
		viewer.PendingItems = nil

		session := *current.session
		session.Viewer = &viewer
		if current.session.SelfView() {
			session.Profile = &viewer
		}

		next := &snapshot{
			session:      &session,
			viewerIndex:  collection.BuildIndex(viewer.OwnedItems),
			profileIndex: current.profileIndex,
		}
		if current.session.SelfView() {
			next.profileIndex = next.viewerIndex
		}
		o.current = next
	}
	o.mu.Unlock()

	slog.Info("pending selection confirmed", "index", input.Index, "item_id", item.ID)

	return &ConfirmPendingOutput{Item: item}, nil
}

// SetPreferredForm records the viewer's preferred form for a species
func (o *orchestrator) SetPreferredForm(ctx context.Context, input *SetPreferredFormInput) (*SetPreferredFormOutput, error) {
	if input.SpeciesID == 0 {
		return nil, errors.InvalidArgument("species ID is required")
	}
	if input.FormIndex < 0 {
		return nil, errors.InvalidArgument("form index must be non-negative")
	}

	if err := o.client.SetPreferredForm(ctx, input.SpeciesID, input.FormIndex); err != nil {
		return nil, errors.Wrapf(err, "setting preferred form for species %d", input.SpeciesID)
	}
	return &SetPreferredFormOutput{}, nil
}

// SavedFilter loads the viewer's persisted catalog filter
func (o *orchestrator) SavedFilter(ctx context.Context, _ *SavedFilterInput) (*SavedFilterOutput, error) {
	viewerID := o.viewerID()
	if viewerID == 0 {
		return &SavedFilterOutput{}, nil
	}

	out, err := o.prefs.Get(ctx, preferences.GetInput{AccountID: viewerID})
	if err != nil {
		return nil, errors.Wrap(err, "loading filter preferences")
	}

	return &SavedFilterOutput{Filter: filterFromValues(out.Values)}, nil
}

// SaveFilter persists the viewer's catalog filter choices
func (o *orchestrator) SaveFilter(ctx context.Context, input *SaveFilterInput) (*SaveFilterOutput, error) {
	viewerID := o.viewerID()
	if viewerID == 0 {
		return nil, errors.Unauthenticated("saving filters requires a logged-in viewer")
	}

	for name, value := range filterToValues(input.Filter) {
		_, err := o.prefs.Set(ctx, preferences.SetInput{
			AccountID: viewerID,
			Name:      name,
			Value:     value,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "saving filter %q", name)
		}
	}
	return &SaveFilterOutput{}, nil
}

// ResetFilter drops the viewer's persisted filter, restoring defaults
func (o *orchestrator) ResetFilter(ctx context.Context, _ *ResetFilterInput) (*ResetFilterOutput, error) {
	viewerID := o.viewerID()
	if viewerID == 0 {
		return nil, errors.Unauthenticated("resetting filters requires a logged-in viewer")
	}

	out, err := o.prefs.Clear(ctx, preferences.ClearInput{AccountID: viewerID})
	if err != nil {
		return nil, errors.Wrap(err, "clearing filter preferences")
	}

	slog.Info("filter preferences cleared", "account_id", viewerID, "deleted", out.Deleted)
	return &ResetFilterOutput{}, nil
}

// Session returns the current snapshot; nil before the first refresh
func (o *orchestrator) Session() *entities.Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil {
		return nil
	}
	return o.current.session
}

// PendingEmpty reports whether the viewer's pending list is empty
func (o *orchestrator) PendingEmpty() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil || o.current.session.Viewer == nil {
		return true
	}
	return len(o.current.session.Viewer.PendingItems) == 0
}

// NextSelectionAt returns the viewer's next-selection timestamp
func (o *orchestrator) NextSelectionAt() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil || o.current.session.Viewer == nil {
		return 0
	}
	return o.current.session.Viewer.NextSelectionAt
}

func (o *orchestrator) viewerID() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil || o.current.session.Viewer == nil {
		return 0
	}
	return o.current.session.Viewer.ID
}

// filterToValues flattens a filter into the enumerated strings the
// preference store holds. The text query is deliberately not persisted.
func filterToValues(f collection.Filter) map[string]string {
	return map[string]string{
		preferences.FilterViewerOwnership:  string(f.ViewerOwnership),
		preferences.FilterProfileOwnership: string(f.ProfileOwnership),
		preferences.FilterShininess:        string(f.Shininess),
		preferences.FilterForm:             string(f.Form),
		preferences.FilterRarity:           string(f.Rarity),
	}
}

func filterFromValues(values map[string]string) collection.Filter {
	return collection.Filter{
		ViewerOwnership:  collection.OwnershipChoice(values[preferences.FilterViewerOwnership]),
		ProfileOwnership: collection.OwnershipChoice(values[preferences.FilterProfileOwnership]),
		Shininess:        collection.ShininessChoice(values[preferences.FilterShininess]),
		Form:             collection.FormChoice(values[preferences.FilterForm]),
		Rarity:           collection.RarityChoice(values[preferences.FilterRarity]),
	}
}
