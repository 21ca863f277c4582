package collection

import (
	"susie.mx/gokemon-client/internal/entities"
)

// Status classifies how a candidate item relates to an ownership index. The
// five values are mutually exclusive; ResolveStatus always picks exactly one.
type Status string

// Ownership statuses, ordered from exact match to broadest miss.
const (
	StatusOwned          Status = "owned"
	StatusDontOwnShiny   Status = "dont-own-shiny"
	StatusDontOwnRegular Status = "dont-own-regular"
	StatusDontOwnForm    Status = "dont-own-form"
	StatusDontOwnSpecies Status = "dont-own-species"
)

// Badge returns the UI callout for a status, empty for owned items.
func (s Status) Badge() string {
	switch s {
	case StatusDontOwnSpecies:
		return "NEW!"
	case StatusDontOwnForm:
		return "NEW FORM!"
	case StatusDontOwnShiny:
		return "NEW SHINY!"
	case StatusDontOwnRegular:
		return "NEW REGULAR!"
	default:
		return ""
	}
}

// ResolveStatus classifies the viewer's relationship to an item against an
// index built from the viewer's owned list. The precedence is load-bearing:
// a fully unowned species must report dont-own-species, not a narrower and
// misleading miss, so checks run species, then form, then shininess.
func ResolveStatus(item entities.OwnedItem, ix Index) Status {
	forms, ok := ix.Species(item.SpeciesID)
	if !ok {
		return StatusDontOwnSpecies
	}

	bucket, ok := forms[item.FormIndex]
	if !ok {
		return StatusDontOwnForm
	}

	if item.IsShiny && len(bucket.Shiny) == 0 {
		return StatusDontOwnShiny
	}
	if !item.IsShiny && len(bucket.Regular) == 0 {
		return StatusDontOwnRegular
	}
	return StatusOwned
}
