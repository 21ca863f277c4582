package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"susie.mx/gokemon-client/internal/collection"
	"susie.mx/gokemon-client/internal/entities"
)

func TestBuildIndex_Empty(t *testing.T) {
	index := collection.BuildIndex(nil)
	require.NotNil(t, index)
	assert.Empty(t, index)
	assert.False(t, index.OwnsSpecies(1))

	_, ok := index.Lookup(1, 0)
	assert.False(t, ok)
}

func TestBuildIndex_BucketsByShininess(t *testing.T) {
	items := []entities.OwnedItem{
		{ID: 1, SpeciesID: 7, FormIndex: 0, IsShiny: false},
		{ID: 2, SpeciesID: 7, FormIndex: 0, IsShiny: false},
		{ID: 3, SpeciesID: 7, FormIndex: 0, IsShiny: true},
		{ID: 4, SpeciesID: 7, FormIndex: 1, IsShiny: true},
		{ID: 5, SpeciesID: 25, FormIndex: 0, IsShiny: false},
	}

	index := collection.BuildIndex(items)

	bucket, ok := index.Lookup(7, 0)
	require.True(t, ok)
	assert.Len(t, bucket.Regular, 2, "duplicates stay distinct instances")
	assert.Len(t, bucket.Shiny, 1)

	// Shiny-only form: bucket exists, regular side is empty rather than absent.
	bucket, ok = index.Lookup(7, 1)
	require.True(t, ok)
	assert.Empty(t, bucket.Regular)
	assert.Len(t, bucket.Shiny, 1)

	_, ok = index.Lookup(7, 2)
	assert.False(t, ok, "unowned form has no bucket at all")

	assert.True(t, index.OwnsSpecies(25))
	assert.False(t, index.OwnsSpecies(26))
}

func TestBuildIndex_RebuildDoesNotMutatePrevious(t *testing.T) {
	items := []entities.OwnedItem{
		{ID: 1, SpeciesID: 7, FormIndex: 0, IsShiny: false},
	}

	first := collection.BuildIndex(items)

	items = append(items, entities.OwnedItem{ID: 2, SpeciesID: 7, FormIndex: 0, IsShiny: true})
	second := collection.BuildIndex(items)

	firstBucket, ok := first.Lookup(7, 0)
	require.True(t, ok)
	assert.Empty(t, firstBucket.Shiny, "earlier index must not see the new item")

	secondBucket, ok := second.Lookup(7, 0)
	require.True(t, ok)
	assert.Len(t, secondBucket.Shiny, 1)
}

func TestIndex_ExistenceHelpers(t *testing.T) {
	index := collection.BuildIndex([]entities.OwnedItem{
		{ID: 1, SpeciesID: 7, FormIndex: 1, IsShiny: true},
		{ID: 2, SpeciesID: 25, FormIndex: 0, IsShiny: false},
	})

	assert.True(t, index.OwnsAnyShiny(7))
	assert.False(t, index.OwnsAnyRegular(7))
	assert.True(t, index.OwnsAnyNonDefaultForm(7))
	assert.False(t, index.OwnsForm(7, collection.DefaultFormIndex))

	assert.True(t, index.OwnsAnyRegular(25))
	assert.False(t, index.OwnsAnyShiny(25))
	assert.False(t, index.OwnsAnyNonDefaultForm(25))
	assert.True(t, index.OwnsForm(25, collection.DefaultFormIndex))
}
