package setops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spread/internal/models"
	"spread/internal/store"
)

func TestAddIfAbsentIsIdempotent(t *testing.T) {
	s := store.NewMemStore()
	ctx := context.Background()
	u := &models.User{FName: "Ada"}
	require.NoError(t, s.Create(ctx, u))

	up := NewUpdater(s)

	changed, err := up.AddIfAbsent(ctx, models.KindUser, u.ID, models.SetFriends, 7)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = up.AddIfAbsent(ctx, models.KindUser, u.ID, models.SetFriends, 7)
	require.NoError(t, err)
	assert.False(t, changed)

	e, err := s.Get(ctx, models.KindUser, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RefSet{7}, e.(*models.User).Friends)
}

func TestRemoveIfPresentAbsentIsNoop(t *testing.T) {
	s := store.NewMemStore()
	ctx := context.Background()
	u := &models.User{FName: "Ada", Friends: models.RefSet{3}}
	require.NoError(t, s.Create(ctx, u))

	up := NewUpdater(s)

	changed, err := up.RemoveIfPresent(ctx, models.KindUser, u.ID, models.SetFriends, 3)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = up.RemoveIfPresent(ctx, models.KindUser, u.ID, models.SetFriends, 3)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestAddIfAbsentUnknownField(t *testing.T) {
	s := store.NewMemStore()
	ctx := context.Background()
	u := &models.User{FName: "Ada"}
	require.NoError(t, s.Create(ctx, u))

	up := NewUpdater(s)
	_, err := up.AddIfAbsent(ctx, models.KindUser, u.ID, models.SetEmployees, 1)
	assert.Error(t, err)
}

func TestAddIfAbsentMissingOwner(t *testing.T) {
	s := store.NewMemStore()
	up := NewUpdater(s)
	_, err := up.AddIfAbsent(context.Background(), models.KindUser, 99, models.SetFriends, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpsertReplacesBySubIdentity(t *testing.T) {
	items := []models.TodoItem{
		{ID: "a", Name: "one"},
		{ID: "b", Name: "two"},
	}

	items, replaced := Upsert(items, models.TodoItem{ID: "b", Name: "two again"})
	assert.True(t, replaced)
	require.Len(t, items, 2)
	assert.Equal(t, "two again", items[1].Name)

	items, replaced = Upsert(items, models.TodoItem{ID: "c", Name: "three"})
	assert.False(t, replaced)
	assert.Len(t, items, 3)
}

func TestFindReturnsMutablePointer(t *testing.T) {
	items := []models.TodoItem{{ID: "a"}, {ID: "b"}}

	item, ok := Find(items, "b")
	require.True(t, ok)
	item.Complete = true
	assert.True(t, items[1].Complete)

	_, ok = Find(items, "zzz")
	assert.False(t, ok)
}

func TestRemoveAbsentChildIsNoop(t *testing.T) {
	items := []models.TodoItem{{ID: "a"}, {ID: "b"}}

	items, changed := Remove(items, "a")
	assert.True(t, changed)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	items, changed = Remove(items, "a")
	assert.False(t, changed)
	assert.Len(t, items, 1)
}
