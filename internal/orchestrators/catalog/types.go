package catalog

import (
	"susie.mx/gokemon-client/internal/collection"
	"susie.mx/gokemon-client/internal/entities"
)

// RefreshSessionInput contains parameters for refreshing the session snapshot
type RefreshSessionInput struct {
	// ProfileID is the account whose profile is being viewed. Zero means no
	// profile page is open (e.g. the home screen).
	ProfileID int64
}

// RefreshSessionOutput contains the refreshed session
type RefreshSessionOutput struct {
	Session *entities.Session
}

// ViewInput contains parameters for assembling the catalog view
type ViewInput struct {
	// Filter overrides the saved filter when non-nil.
	Filter *collection.Filter
}

// ViewOutput contains the assembled catalog view
type ViewOutput struct {
	Entries []Entry
	// TotalSpecies is the full catalog size, for the "owned / total" header.
	TotalSpecies int
	// OwnedSpecies counts distinct species the profile owner has.
	OwnedSpecies int
}

// Entry is one species row of the catalog view.
type Entry struct {
	Species entities.Species
	// Status is the viewer's relationship to the representative item; empty
	// when no viewer is logged in.
	Status collection.Status
	// Badge is the UI callout derived from Status ("NEW!", "NEW FORM!", ...).
	Badge string
	// Representative is the profile owner's instance shown for this species,
	// nil when the profile owner has none.
	Representative *entities.OwnedItem
}

// ConfirmPendingInput contains parameters for confirming a pending selection
type ConfirmPendingInput struct {
	// Index into the viewer's pending list.
	Index int
}

// ConfirmPendingOutput contains the optimistically appended item
type ConfirmPendingOutput struct {
	Item *entities.OwnedItem
}

// SetPreferredFormInput contains parameters for a preferred-form update
type SetPreferredFormInput struct {
	SpeciesID int64
	FormIndex int
}

// SetPreferredFormOutput contains the result of a preferred-form update
type SetPreferredFormOutput struct{}

// SavedFilterInput contains parameters for loading the saved filter
type SavedFilterInput struct{}

// SavedFilterOutput contains the viewer's saved catalog filter
type SavedFilterOutput struct {
	Filter collection.Filter
}

// SaveFilterInput contains the filter values to persist
type SaveFilterInput struct {
	Filter collection.Filter
}

// SaveFilterOutput contains the result of persisting the filter
type SaveFilterOutput struct{}

// ResetFilterInput contains parameters for dropping the saved filter
type ResetFilterInput struct{}

// ResetFilterOutput contains the result of dropping the saved filter
type ResetFilterOutput struct{}
