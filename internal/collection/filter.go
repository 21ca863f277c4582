package collection

import (
	"strconv"
	"strings"

	"susie.mx/gokemon-client/internal/entities"
)

// OwnershipChoice filters species by whether an account owns them.
type OwnershipChoice string

// Ownership choices
const (
	OwnershipAll     OwnershipChoice = "all"
	OwnershipOwned   OwnershipChoice = "owned"
	OwnershipUnowned OwnershipChoice = "unowned"
)

// ShininessChoice filters species by the shininess of their owned instances.
type ShininessChoice string

// Shininess choices
const (
	ShininessAll     ShininessChoice = "all"
	ShininessRegular ShininessChoice = "regular"
	ShininessShiny   ShininessChoice = "shiny"
)

// FormChoice filters species by the form of their owned instances.
type FormChoice string

// Form choices
const (
	FormAll        FormChoice = "all"
	FormDefault    FormChoice = "default"
	FormNonDefault FormChoice = "non-default"
)

// RarityChoice filters species by rarity tier.
type RarityChoice string

// Rarity choices
const (
	RarityAll           RarityChoice = "all"
	RarityOnlyRegular   RarityChoice = "regular"
	RarityOnlyLegendary RarityChoice = "legendary"
	RarityOnlyMythical  RarityChoice = "mythical"
)

// Filter bundles the independently toggleable catalog predicates. The zero
// value (empty strings normalize to "all") passes every species.
type Filter struct {
	// ViewerOwnership filters against the logged-in viewer's collection.
	// Suppressed when there is no viewer or the viewer is looking at their
	// own profile.
	ViewerOwnership OwnershipChoice
	// ProfileOwnership filters against the collection of the profile being
	// viewed.
	ProfileOwnership OwnershipChoice
	Shininess        ShininessChoice
	Form             FormChoice
	Rarity           RarityChoice
	Query            string
}

// View is the ownership context a Filter evaluates against.
type View struct {
	// ViewerIndex is nil when no one is logged in.
	ViewerIndex Index
	// ProfileIndex is built from the viewed profile's owned list.
	ProfileIndex Index
	// SelfView is true when the viewer is the profile owner.
	SelfView bool
}

// Apply returns the species that pass every predicate. Predicates are ANDed
// and side-effect free; the text query runs last since it is usually the
// cheapest discriminator. The input slice is never modified.
func (f Filter) Apply(all []entities.Species, view View) []entities.Species {
	out := make([]entities.Species, 0, len(all))
	for _, sp := range all {
		if !f.matches(sp, view) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

func (f Filter) matches(sp entities.Species, view View) bool {
	if !f.matchesViewerOwnership(sp, view) {
		return false
	}
	if !matchesOwnership(f.ProfileOwnership, sp, view.ProfileIndex) {
		return false
	}
	if !f.matchesShininess(sp, view.ProfileIndex) {
		return false
	}
	if !f.matchesForm(sp, view.ProfileIndex) {
		return false
	}
	if !f.matchesRarity(sp) {
		return false
	}
	return MatchesQuery(sp.Name+strconv.FormatInt(sp.ID, 10), f.Query)
}

func (f Filter) matchesViewerOwnership(sp entities.Species, view View) bool {
	// Self-view never filters against itself, and an anonymous viewer has
	// nothing to filter by.
	if view.ViewerIndex == nil || view.SelfView {
		return true
	}
	return matchesOwnership(f.ViewerOwnership, sp, view.ViewerIndex)
}

func matchesOwnership(choice OwnershipChoice, sp entities.Species, ix Index) bool {
	switch choice {
	case OwnershipOwned:
		return ix.OwnsSpecies(sp.ID)
	case OwnershipUnowned:
		return !ix.OwnsSpecies(sp.ID)
	default:
		return true
	}
}

// Shininess is an existence check across every owned form of the species,
// not a per-form check.
func (f Filter) matchesShininess(sp entities.Species, ix Index) bool {
	switch f.Shininess {
	case ShininessRegular:
		return ix.OwnsAnyRegular(sp.ID)
	case ShininessShiny:
		return ix.OwnsAnyShiny(sp.ID)
	default:
		return true
	}
}

func (f Filter) matchesForm(sp entities.Species, ix Index) bool {
	switch f.Form {
	case FormDefault:
		return ix.OwnsForm(sp.ID, DefaultFormIndex)
	case FormNonDefault:
		return ix.OwnsAnyNonDefaultForm(sp.ID)
	default:
		return true
	}
}

func (f Filter) matchesRarity(sp entities.Species) bool {
	switch f.Rarity {
	case RarityOnlyRegular:
		return sp.Rarity() == entities.RarityRegular
	case RarityOnlyLegendary:
		return sp.Rarity() == entities.RarityLegendary
	case RarityOnlyMythical:
		return sp.Rarity() == entities.RarityMythical
	default:
		return true
	}
}

// MatchesQuery reports whether s contains query, case-insensitively. The
// empty query matches everything.
func MatchesQuery(s, query string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}
