package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"susie.mx/gokemon-client/internal/collection"
	"susie.mx/gokemon-client/internal/entities"
)

func TestResolveStatus_Precedence(t *testing.T) {
	// Index owns exactly species 1, form 0, regular.
	index := collection.BuildIndex([]entities.OwnedItem{
		{ID: 1, SpeciesID: 1, FormIndex: 0, IsShiny: false},
	})

	tests := []struct {
		name string
		item entities.OwnedItem
		want collection.Status
	}{
		{
			name: "exact match is owned",
			item: entities.OwnedItem{SpeciesID: 1, FormIndex: 0, IsShiny: false},
			want: collection.StatusOwned,
		},
		{
			name: "owned form but not shiny",
			item: entities.OwnedItem{SpeciesID: 1, FormIndex: 0, IsShiny: true},
			want: collection.StatusDontOwnShiny,
		},
		{
			name: "unowned form of owned species",
			item: entities.OwnedItem{SpeciesID: 1, FormIndex: 1, IsShiny: false},
			want: collection.StatusDontOwnForm,
		},
		{
			name: "unowned form outranks shininess",
			item: entities.OwnedItem{SpeciesID: 1, FormIndex: 1, IsShiny: true},
			want: collection.StatusDontOwnForm,
		},
		{
			name: "unowned species outranks everything",
			item: entities.OwnedItem{SpeciesID: 2, FormIndex: 0, IsShiny: false},
			want: collection.StatusDontOwnSpecies,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collection.ResolveStatus(tt.item, index))
		})
	}
}

func TestResolveStatus_DontOwnRegular(t *testing.T) {
	index := collection.BuildIndex([]entities.OwnedItem{
		{ID: 1, SpeciesID: 6, FormIndex: 0, IsShiny: true},
	})

	status := collection.ResolveStatus(entities.OwnedItem{SpeciesID: 6, FormIndex: 0, IsShiny: false}, index)
	assert.Equal(t, collection.StatusDontOwnRegular, status)
}

func TestResolveStatus_Reflexive(t *testing.T) {
	// Every item in the source list must resolve as owned against the index
	// built from it.
	items := []entities.OwnedItem{
		{ID: 1, SpeciesID: 1, FormIndex: 0, IsShiny: false},
		{ID: 2, SpeciesID: 1, FormIndex: 2, IsShiny: true},
		{ID: 3, SpeciesID: 150, FormIndex: 0, IsShiny: true},
		{ID: 4, SpeciesID: 151, FormIndex: 1, IsShiny: false},
		{ID: 5, SpeciesID: 151, FormIndex: 1, IsShiny: false},
	}
	index := collection.BuildIndex(items)

	for _, item := range items {
		assert.Equal(t, collection.StatusOwned, collection.ResolveStatus(item, index), "item %d", item.ID)
	}
}

func TestResolveStatus_EmptyIndex(t *testing.T) {
	index := collection.BuildIndex(nil)
	status := collection.ResolveStatus(entities.OwnedItem{SpeciesID: 1}, index)
	assert.Equal(t, collection.StatusDontOwnSpecies, status)
}

func TestStatus_Badge(t *testing.T) {
	assert.Equal(t, "NEW!", collection.StatusDontOwnSpecies.Badge())
	assert.Equal(t, "NEW FORM!", collection.StatusDontOwnForm.Badge())
	assert.Equal(t, "NEW SHINY!", collection.StatusDontOwnShiny.Badge())
	assert.Equal(t, "NEW REGULAR!", collection.StatusDontOwnRegular.Badge())
	assert.Empty(t, collection.StatusOwned.Badge())
}
