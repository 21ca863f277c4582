package preferences_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"susie.mx/gokemon-client/internal/errors"
	"susie.mx/gokemon-client/internal/repositories/preferences"
	"susie.mx/gokemon-client/internal/testutils"
)

func newTestRepository(t *testing.T) preferences.Repository {
	t.Helper()

	client, _ := testutils.CreateTestRedisClient(t)
	repo, err := preferences.NewRedisRepository(&preferences.Config{Client: client})
	require.NoError(t, err)
	return repo
}

func TestNewRedisRepository_RequiresClient(t *testing.T) {
	_, err := preferences.NewRedisRepository(&preferences.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRedisRepository_SetGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Set(ctx, preferences.SetInput{
		AccountID: 3,
		Name:      preferences.FilterShininess,
		Value:     "shiny",
	})
	require.NoError(t, err)

	_, err = repo.Set(ctx, preferences.SetInput{
		AccountID: 3,
		Name:      preferences.FilterRarity,
		Value:     "legendary",
	})
	require.NoError(t, err)

	out, err := repo.Get(ctx, preferences.GetInput{AccountID: 3})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		preferences.FilterShininess: "shiny",
		preferences.FilterRarity:    "legendary",
	}, out.Values)
}

func TestRedisRepository_GetUnknownAccountIsEmpty(t *testing.T) {
	repo := newTestRepository(t)

	out, err := repo.Get(context.Background(), preferences.GetInput{AccountID: 42})
	require.NoError(t, err)
	assert.Empty(t, out.Values)
}

func TestRedisRepository_SetOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, value := range []string{"owned", "unowned"} {
		_, err := repo.Set(ctx, preferences.SetInput{
			AccountID: 3,
			Name:      preferences.FilterViewerOwnership,
			Value:     value,
		})
		require.NoError(t, err)
	}

	out, err := repo.Get(ctx, preferences.GetInput{AccountID: 3})
	require.NoError(t, err)
	assert.Equal(t, "unowned", out.Values[preferences.FilterViewerOwnership])
}

func TestRedisRepository_Clear(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Set(ctx, preferences.SetInput{
		AccountID: 3,
		Name:      preferences.FilterForm,
		Value:     "default",
	})
	require.NoError(t, err)

	cleared, err := repo.Clear(ctx, preferences.ClearInput{AccountID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared.Deleted)

	out, err := repo.Get(ctx, preferences.GetInput{AccountID: 3})
	require.NoError(t, err)
	assert.Empty(t, out.Values)
}

func TestRedisRepository_Validation(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, preferences.GetInput{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = repo.Set(ctx, preferences.SetInput{AccountID: 3})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = repo.Clear(ctx, preferences.ClearInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
