// Package entities contains the core domain types for the Gokemon client.
// All durable state behind these types is owned by the remote API; the
// client only fetches, derives, and displays.
package entities

// Species is a catalog creature definition, independent of any account's
// ownership. Immutable once fetched from the catalog.
type Species struct {
	ID          int64
	Name        string
	IsLegendary bool
	IsMythical  bool
	// Forms is ordered; index 0 is the default form. A FormIndex is only
	// meaningful relative to this slice, never globally.
	Forms []Form
}

// Rarity returns the species' rarity tier. Legendary and mythical are
// mutually exclusive upstream; legendary wins if the catalog ever sends both.
func (s Species) Rarity() Rarity {
	switch {
	case s.IsLegendary:
		return RarityLegendary
	case s.IsMythical:
		return RarityMythical
	default:
		return RarityRegular
	}
}

// Rarity is a species rarity tier.
type Rarity string

// Rarity tiers
const (
	RarityRegular   Rarity = "regular"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
)

// Form is a named visual/type variant of a species, identified by its
// position in the owning species' form list.
type Form struct {
	Name    string
	Types   []TypeTag
	Sprites SpriteSet
}

// TypeTag is an elemental type label on a form. Forms carry one or two.
type TypeTag struct {
	Name string
}

// SpriteSet holds the sprite URLs for a form. Female and shiny variants may
// be empty when the species has no gender difference or no shiny art.
type SpriteSet struct {
	FrontDefault     string
	FrontFemale      string
	FrontShiny       string
	FrontShinyFemale string
}

// OwnedItem is one instance of a species+form+shininess combination held by
// an account. Duplicates of the same triple are legal and meaningful.
// Instances are never mutated locally; they are created and removed only by
// the remote API.
type OwnedItem struct {
	ID        int64
	SpeciesID int64
	FormIndex int
	IsShiny   bool
}
