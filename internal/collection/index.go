// Package collection implements the derived-ownership core: the ownership
// index built from an account's flat owned-item list, the five-way ownership
// status resolver, and the catalog filter. Everything here is pure; the
// orchestrator rebuilds the index from each fresh session snapshot and
// consumers treat it as an immutable value.
package collection

import (
	"susie.mx/gokemon-client/internal/entities"
)

// FormBucket holds the owned instances of one (species, form) pair, split by
// shininess. A bucket existing with an empty side is meaningful: the form is
// owned, just not in that shininess.
type FormBucket struct {
	Shiny   []entities.OwnedItem
	Regular []entities.OwnedItem
}

// Index maps species id to form index to the owned instances of that pair.
// An entry exists only if at least one owned item of that species+form was
// present in the source list.
type Index map[int64]map[int]*FormBucket

// BuildIndex derives an Index from a flat owned-item list. Each call returns
// a fresh structure; rebuilding never mutates a previously returned Index,
// so view layers may keep reading an old one while a refresh computes the
// next. An empty or nil input yields an empty, usable Index.
func BuildIndex(items []entities.OwnedItem) Index {
	index := make(Index, len(items))
	for _, item := range items {
		forms, ok := index[item.SpeciesID]
		if !ok {
			forms = make(map[int]*FormBucket)
			index[item.SpeciesID] = forms
		}

		bucket, ok := forms[item.FormIndex]
		if !ok {
			bucket = &FormBucket{}
			forms[item.FormIndex] = bucket
		}

		if item.IsShiny {
			bucket.Shiny = append(bucket.Shiny, item)
		} else {
			bucket.Regular = append(bucket.Regular, item)
		}
	}
	return index
}

// Species returns the form map for a species id. The second return
// distinguishes an unowned species from one with an empty map.
func (ix Index) Species(speciesID int64) (map[int]*FormBucket, bool) {
	forms, ok := ix[speciesID]
	return forms, ok
}

// Lookup returns the bucket for a (species, form) pair. A false second
// return means the pair is entirely unowned, which is distinct from a
// present bucket with one empty side.
func (ix Index) Lookup(speciesID int64, formIndex int) (*FormBucket, bool) {
	forms, ok := ix[speciesID]
	if !ok {
		return nil, false
	}
	bucket, ok := forms[formIndex]
	return bucket, ok
}

// OwnsSpecies reports whether any instance of the species is owned.
func (ix Index) OwnsSpecies(speciesID int64) bool {
	_, ok := ix[speciesID]
	return ok
}

// OwnsAnyRegular reports whether any non-shiny instance of the species is
// owned, across all forms.
func (ix Index) OwnsAnyRegular(speciesID int64) bool {
	for _, bucket := range ix[speciesID] {
		if len(bucket.Regular) > 0 {
			return true
		}
	}
	return false
}

// OwnsAnyShiny reports whether any shiny instance of the species is owned,
// across all forms.
func (ix Index) OwnsAnyShiny(speciesID int64) bool {
	for _, bucket := range ix[speciesID] {
		if len(bucket.Shiny) > 0 {
			return true
		}
	}
	return false
}

// OwnsForm reports whether any instance of the species with the given form
// index is owned, in either shininess.
func (ix Index) OwnsForm(speciesID int64, formIndex int) bool {
	_, ok := ix.Lookup(speciesID, formIndex)
	return ok
}

// OwnsAnyNonDefaultForm reports whether any owned instance of the species
// has a form index other than the default.
func (ix Index) OwnsAnyNonDefaultForm(speciesID int64) bool {
	for formIndex := range ix[speciesID] {
		if formIndex != DefaultFormIndex {
			return true
		}
	}
	return false
}

// DefaultFormIndex is the position of a species' default form.
const DefaultFormIndex = 0
