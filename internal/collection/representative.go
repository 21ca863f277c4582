package collection

import (
	"susie.mx/gokemon-client/internal/entities"
)

// Representative picks the owned instance that stands in for a species in
// the collapsed (non-expanded) catalog view when multiple forms or variants
// are owned. The account's preferred form wins when any instance of it is
// owned; otherwise the lowest owned form index is shown. Within a form a
// regular instance is preferred, shiny only when no regular exists.
// Returns false when the species is entirely unowned.
func Representative(speciesID int64, preferredForms map[int64]int, ix Index) (entities.OwnedItem, bool) {
	forms, ok := ix.Species(speciesID)
	if !ok {
		return entities.OwnedItem{}, false
	}

	if preferred, ok := preferredForms[speciesID]; ok {
		if bucket, ok := forms[preferred]; ok {
			return pickFromBucket(bucket), true
		}
	}

	lowest := -1
	for formIndex := range forms {
		if lowest == -1 || formIndex < lowest {
			lowest = formIndex
		}
	}
	return pickFromBucket(forms[lowest]), true
}

func pickFromBucket(bucket *FormBucket) entities.OwnedItem {
	if len(bucket.Regular) > 0 {
		return bucket.Regular[0]
	}
	return bucket.Shiny[0]
}
