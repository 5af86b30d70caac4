package services

import (
	"context"
	"strings"

	"spread/internal/models"
	"spread/internal/setops"
)

// Saved-media lists are sets keyed by the external media identifier:
// saving the same title twice keeps one entry, the store only ever
// holds references, never media content.

func (f *Facade) SaveMovie(ctx context.Context, userID uint, ref models.MediaRef) (*models.User, error) {
	return f.saveMedia(ctx, userID, ref, false)
}

func (f *Facade) SaveShow(ctx context.Context, userID uint, ref models.MediaRef) (*models.User, error) {
	return f.saveMedia(ctx, userID, ref, true)
}

func (f *Facade) saveMedia(ctx context.Context, userID uint, ref models.MediaRef, show bool) (*models.User, error) {
	if strings.TrimSpace(ref.Key) == "" {
		return nil, validationFailed("media key is required", map[string]string{"key": "required"})
	}
	e, err := f.store.Update(ctx, models.KindUser, userID, func(e models.Entity) error {
		u := e.(*models.User)
		if show {
			u.ShowList, _ = setops.Upsert(u.ShowList, ref)
		} else {
			u.MovieList, _ = setops.Upsert(u.MovieList, ref)
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.User), nil
}

func (f *Facade) RemoveMovie(ctx context.Context, userID uint, key string) (*models.User, error) {
	return f.removeMedia(ctx, userID, key, false)
}

func (f *Facade) RemoveShow(ctx context.Context, userID uint, key string) (*models.User, error) {
	return f.removeMedia(ctx, userID, key, true)
}

func (f *Facade) removeMedia(ctx context.Context, userID uint, key string, show bool) (*models.User, error) {
	e, err := f.store.Update(ctx, models.KindUser, userID, func(e models.Entity) error {
		u := e.(*models.User)
		if show {
			u.ShowList, _ = setops.Remove(u.ShowList, key)
		} else {
			u.MovieList, _ = setops.Remove(u.MovieList, key)
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return e.(*models.User), nil
}
