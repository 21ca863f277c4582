// Package preferences stores the viewer's last-chosen catalog filter values
// so the catalog reopens the way they left it. Values are small enumerated
// strings keyed by filter name; the store is a per-browser convenience, not
// authoritative state.
package preferences

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=preferencesmock susie.mx/gokemon-client/internal/repositories/preferences Repository

// Known filter names. Values are the enumerated strings defined by the
// collection package's filter choices.
const (
	FilterViewerOwnership  = "viewer_ownership"
	FilterProfileOwnership = "profile_ownership"
	FilterShininess        = "shininess"
	FilterForm             = "form"
	FilterRarity           = "rarity"
)

// GetInput contains parameters for loading an account's filter preferences
type GetInput struct {
	AccountID int64
}

// GetOutput contains an account's stored filter preferences. Values holds
// only the filters the account has ever changed; missing names mean the
// default.
type GetOutput struct {
	Values map[string]string
}

// SetInput contains parameters for storing one filter preference
type SetInput struct {
	AccountID int64
	Name      string
	Value     string
}

// SetOutput contains the result of storing a filter preference
type SetOutput struct{}

// ClearInput contains parameters for dropping an account's preferences
type ClearInput struct {
	AccountID int64
}

// ClearOutput contains the result of dropping an account's preferences
type ClearOutput struct {
	Deleted int64
}

// Repository defines the interface for filter preference storage
type Repository interface {
	// Get loads every stored filter preference for an account
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores a single filter preference
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Clear drops all stored preferences for an account
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
