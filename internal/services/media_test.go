package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spread/internal/models"
)

func TestSaveMovieKeyedByExternalID(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")

	u, err := f.SaveMovie(ctx, ada.ID, models.MediaRef{Key: "tt0133093", Title: "The Matrix"})
	require.NoError(t, err)
	require.Len(t, u.MovieList, 1)

	// Saving the same key again replaces, never duplicates.
	u, err = f.SaveMovie(ctx, ada.ID, models.MediaRef{Key: "tt0133093", Title: "The Matrix (1999)"})
	require.NoError(t, err)
	require.Len(t, u.MovieList, 1)
	assert.Equal(t, "The Matrix (1999)", u.MovieList[0].Title)
}

func TestSaveMovieRequiresKey(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ada := seedUser(t, s, "ada")
	_, err := f.SaveMovie(context.Background(), ada.ID, models.MediaRef{Title: "no key"})
	assert.True(t, IsCode(err, CodeValidationFailed))
}

func TestMovieAndShowListsAreIndependent(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")

	_, err := f.SaveMovie(ctx, ada.ID, models.MediaRef{Key: "m1", Title: "movie"})
	require.NoError(t, err)
	u, err := f.SaveShow(ctx, ada.ID, models.MediaRef{Key: "m1", Title: "show"})
	require.NoError(t, err)

	assert.Len(t, u.MovieList, 1)
	assert.Len(t, u.ShowList, 1)

	u, err = f.RemoveMovie(ctx, ada.ID, "m1")
	require.NoError(t, err)
	assert.Empty(t, u.MovieList)
	assert.Len(t, u.ShowList, 1)
}

func TestRemoveAbsentMediaIsNoop(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ada := seedUser(t, s, "ada")
	u, err := f.RemoveMovie(context.Background(), ada.ID, "never-saved")
	require.NoError(t, err)
	assert.Empty(t, u.MovieList)
}
