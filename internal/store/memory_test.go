package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spread/internal/models"
)

func TestMemStoreCreateAssignsIDs(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	a := &models.User{FName: "Ada", Email: "ada@example.com"}
	b := &models.User{FName: "Bo", Email: "bo@example.com"}
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Create(ctx, b))

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestMemStoreGetReturnsClone(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	u := &models.User{FName: "Ada", Friends: models.RefSet{5}}
	require.NoError(t, s.Create(ctx, u))

	e, err := s.Get(ctx, models.KindUser, u.ID)
	require.NoError(t, err)
	got := e.(*models.User)
	got.Friends, _ = got.Friends.Add(9)

	again, err := s.Get(ctx, models.KindUser, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RefSet{5}, again.(*models.User).Friends)
}

func TestMemStoreGetMissing(t *testing.T) {
	s := NewMemStore()
	_, err := s.Get(context.Background(), models.KindUser, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreUpdateFailedMutateLeavesDocIntact(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	u := &models.User{FName: "Ada"}
	require.NoError(t, s.Create(ctx, u))

	boom := errors.New("boom")
	_, err := s.Update(ctx, models.KindUser, u.ID, func(e models.Entity) error {
		e.(*models.User).FName = "mutated"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	e, err := s.Get(ctx, models.KindUser, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", e.(*models.User).FName)
}

func TestMemStoreUpdateTouches(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	u := &models.User{FName: "Ada"}
	require.NoError(t, s.Create(ctx, u))

	now = now.Add(time.Hour)
	e, err := s.Update(ctx, models.KindUser, u.ID, func(e models.Entity) error {
		e.(*models.User).Bio = "updated"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, now, e.(*models.User).UpdatedAt)
	assert.True(t, e.(*models.User).CreatedAt.Before(now))
}

func TestMemStoreListByRef(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.Post{AuthorID: 1, Body: "first"}))
	require.NoError(t, s.Create(ctx, &models.Post{AuthorID: 2, Body: "other"}))
	require.NoError(t, s.Create(ctx, &models.Post{AuthorID: 1, Body: "second"}))

	posts, err := s.ListByRef(ctx, models.KindPost, models.RefAuthor, 1)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].(*models.Post).Body)
	assert.Equal(t, "second", posts[1].(*models.Post).Body)
}

func TestMemStoreListRefSetHolders(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.User{FName: "a", Friends: models.RefSet{7}}))
	require.NoError(t, s.Create(ctx, &models.User{FName: "b"}))
	require.NoError(t, s.Create(ctx, &models.User{FName: "c", Friends: models.RefSet{1, 7}}))

	holders, err := s.ListRefSetHolders(ctx, models.KindUser, models.SetFriends, 7)
	require.NoError(t, err)
	require.Len(t, holders, 2)
	assert.Equal(t, "a", holders[0].(*models.User).FName)
	assert.Equal(t, "c", holders[1].(*models.User).FName)
}

func TestMemStoreFindUserByEmail(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.User{FName: "Ada", Email: "ada@example.com"}))

	u, err := s.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.FName)

	_, err = s.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreDelete(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	u := &models.User{FName: "Ada"}
	require.NoError(t, s.Create(ctx, u))
	require.NoError(t, s.Delete(ctx, models.KindUser, u.ID))

	_, err := s.Get(ctx, models.KindUser, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, models.KindUser, u.ID), ErrNotFound)
}
