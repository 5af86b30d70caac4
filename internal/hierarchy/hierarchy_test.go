package hierarchy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spread/internal/models"
	"spread/internal/refs"
	"spread/internal/store"
)

func newManager(t *testing.T) (*Manager, *store.MemStore) {
	t.Helper()
	s := store.NewMemStore()
	return NewManager(s, refs.NewResolver(s)), s
}

func TestDeleteNotebookCascades(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()

	nb := &models.Notebook{OwnerID: 1, Name: "work"}
	require.NoError(t, s.Create(ctx, nb))
	sec := &models.NotebookSection{NotebookID: nb.ID, Title: "ideas"}
	require.NoError(t, s.Create(ctx, sec))
	note := &models.Note{NotebookID: nb.ID, SectionID: sec.ID, Title: "n1"}
	require.NoError(t, s.Create(ctx, note))

	// An unrelated notebook tree must survive untouched.
	other := &models.Notebook{OwnerID: 1, Name: "home"}
	require.NoError(t, s.Create(ctx, other))
	otherSec := &models.NotebookSection{NotebookID: other.ID, Title: "chores"}
	require.NoError(t, s.Create(ctx, otherSec))

	require.NoError(t, m.DeleteNotebook(ctx, nb.ID))

	for _, probe := range []struct {
		kind models.Kind
		id   uint
	}{
		{models.KindNotebook, nb.ID},
		{models.KindSection, sec.ID},
		{models.KindNote, note.ID},
	} {
		_, err := s.Get(ctx, probe.kind, probe.id)
		assert.ErrorIs(t, err, store.ErrNotFound)
	}

	_, err := s.Get(ctx, models.KindNotebook, other.ID)
	assert.NoError(t, err)
	_, err = s.Get(ctx, models.KindSection, otherSec.ID)
	assert.NoError(t, err)
}

func TestDeleteSectionLeavesNotebook(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()

	nb := &models.Notebook{OwnerID: 1, Name: "work"}
	require.NoError(t, s.Create(ctx, nb))
	sec := &models.NotebookSection{NotebookID: nb.ID, Title: "ideas"}
	require.NoError(t, s.Create(ctx, sec))
	sibling := &models.NotebookSection{NotebookID: nb.ID, Title: "done"}
	require.NoError(t, s.Create(ctx, sibling))
	note := &models.Note{NotebookID: nb.ID, SectionID: sec.ID, Title: "n1"}
	require.NoError(t, s.Create(ctx, note))

	require.NoError(t, m.DeleteSection(ctx, sec.ID))

	_, err := s.Get(ctx, models.KindNote, note.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Get(ctx, models.KindNotebook, nb.ID)
	assert.NoError(t, err)
	_, err = s.Get(ctx, models.KindSection, sibling.ID)
	assert.NoError(t, err)
}

func TestDeletePostCascadesComments(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()

	post := &models.Post{AuthorID: 1, Body: "hello"}
	require.NoError(t, s.Create(ctx, post))
	c1 := &models.Comment{PostID: post.ID, AuthorID: 2, Body: "hi"}
	c2 := &models.Comment{PostID: post.ID, AuthorID: 3, Body: "hey"}
	require.NoError(t, s.Create(ctx, c1))
	require.NoError(t, s.Create(ctx, c2))

	require.NoError(t, m.DeletePost(ctx, post.ID))

	_, err := s.Get(ctx, models.KindComment, c1.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Get(ctx, models.KindComment, c2.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteUserOrphansContentByDefault(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()

	u := &models.User{FName: "Ada"}
	require.NoError(t, s.Create(ctx, u))
	post := &models.Post{AuthorID: u.ID, Body: "keep me"}
	require.NoError(t, s.Create(ctx, post))

	require.NoError(t, m.DeleteUser(ctx, u.ID, false))

	_, err := s.Get(ctx, models.KindUser, u.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Get(ctx, models.KindPost, post.ID)
	assert.NoError(t, err)
}

func TestDeleteUserCascadesContentWhenAsked(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()

	u := &models.User{FName: "Ada"}
	require.NoError(t, s.Create(ctx, u))
	post := &models.Post{AuthorID: u.ID, Body: "gone"}
	require.NoError(t, s.Create(ctx, post))
	comment := &models.Comment{PostID: post.ID, AuthorID: u.ID, Body: "also gone"}
	require.NoError(t, s.Create(ctx, comment))

	require.NoError(t, m.DeleteUser(ctx, u.ID, true))

	_, err := s.Get(ctx, models.KindPost, post.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Get(ctx, models.KindComment, comment.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteUserAlwaysScrubsFriendSets(t *testing.T) {
	m, s := newManager(t)
	ctx := context.Background()

	u := &models.User{FName: "Ada"}
	require.NoError(t, s.Create(ctx, u))
	friend := &models.User{FName: "Bo", Friends: models.RefSet{u.ID}}
	require.NoError(t, s.Create(ctx, friend))
	stranger := &models.User{FName: "Cy", Friends: models.RefSet{friend.ID}}
	require.NoError(t, s.Create(ctx, stranger))

	require.NoError(t, m.DeleteUser(ctx, u.ID, false))

	e, err := s.Get(ctx, models.KindUser, friend.ID)
	require.NoError(t, err)
	assert.False(t, e.(*models.User).Friends.Has(u.ID))

	e, err = s.Get(ctx, models.KindUser, stranger.ID)
	require.NoError(t, err)
	assert.True(t, e.(*models.User).Friends.Has(friend.ID))
}

func TestDeleteMissingNotebook(t *testing.T) {
	m, _ := newManager(t)
	var missing *refs.MissingReferenceError
	err := m.DeleteNotebook(context.Background(), 99)
	assert.ErrorAs(t, err, &missing)
}
