package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spread/internal/models"
	"spread/internal/store"
)

func TestBefriendIsSymmetric(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()

	ada := seedUser(t, s, "ada")
	bo := seedUser(t, s, "bo")

	changed, err := f.Befriend(ctx, ada.ID, bo.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	a, _ := s.Get(ctx, models.KindUser, ada.ID)
	b, _ := s.Get(ctx, models.KindUser, bo.ID)
	assert.True(t, a.(*models.User).Friends.Has(bo.ID))
	assert.True(t, b.(*models.User).Friends.Has(ada.ID))
}

func TestBefriendTwiceIsNoop(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()

	ada := seedUser(t, s, "ada")
	bo := seedUser(t, s, "bo")

	_, err := f.Befriend(ctx, ada.ID, bo.ID)
	require.NoError(t, err)
	changed, err := f.Befriend(ctx, ada.ID, bo.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	a, _ := s.Get(ctx, models.KindUser, ada.ID)
	assert.Equal(t, models.RefSet{bo.ID}, a.(*models.User).Friends)
}

func TestBefriendSelf(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ada := seedUser(t, s, "ada")
	_, err := f.Befriend(context.Background(), ada.ID, ada.ID)
	assert.True(t, IsCode(err, CodeValidationFailed))
}

func TestBefriendUnknownUserWritesNothing(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")

	_, err := f.Befriend(ctx, ada.ID, 404)
	assert.True(t, IsCode(err, CodeMissingReference))

	a, _ := s.Get(ctx, models.KindUser, ada.ID)
	assert.Empty(t, a.(*models.User).Friends)
}

func TestUnfriendBothSides(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()

	ada := seedUser(t, s, "ada")
	bo := seedUser(t, s, "bo")
	_, err := f.Befriend(ctx, ada.ID, bo.ID)
	require.NoError(t, err)

	changed, err := f.Unfriend(ctx, ada.ID, bo.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	a, _ := s.Get(ctx, models.KindUser, ada.ID)
	b, _ := s.Get(ctx, models.KindUser, bo.ID)
	assert.Empty(t, a.(*models.User).Friends)
	assert.Empty(t, b.(*models.User).Friends)

	changed, err = f.Unfriend(ctx, ada.ID, bo.ID)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestUnfriendVanishedCounterpart(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()

	ada := seedUser(t, s, "ada")
	// A stale reference to a user that no longer exists.
	_, err := s.Update(ctx, models.KindUser, ada.ID, func(e models.Entity) error {
		u := e.(*models.User)
		u.Friends, _ = u.Friends.Add(404)
		return nil
	})
	require.NoError(t, err)

	changed, err := f.Unfriend(ctx, ada.ID, 404)
	require.NoError(t, err)
	assert.True(t, changed)

	a, _ := s.Get(ctx, models.KindUser, ada.ID)
	assert.Empty(t, a.(*models.User).Friends)
}

func TestCreatePostValidates(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")

	_, err := f.CreatePost(ctx, ada.ID, "   ")
	assert.True(t, IsCode(err, CodeValidationFailed))

	_, err = f.CreatePost(ctx, 404, "hello")
	assert.True(t, IsCode(err, CodeMissingReference))

	post, err := f.CreatePost(ctx, ada.ID, "hello")
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
}

func TestCommentRequiresExistingPost(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")

	_, err := f.CreateComment(ctx, ada.ID, 404, "hi")
	assert.True(t, IsCode(err, CodeMissingReference))

	post, err := f.CreatePost(ctx, ada.ID, "hello")
	require.NoError(t, err)
	comment, err := f.CreateComment(ctx, ada.ID, post.ID, "hi")
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
}

func TestGetPostIncludesCommentsAndCount(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")

	post, err := f.CreatePost(ctx, ada.ID, "hello")
	require.NoError(t, err)
	_, err = f.CreateComment(ctx, ada.ID, post.ID, "first")
	require.NoError(t, err)
	_, err = f.CreateComment(ctx, ada.ID, post.ID, "second")
	require.NoError(t, err)

	view, err := f.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Post.CommentCount)
	require.Len(t, view.Comments, 2)
	assert.Equal(t, "first", view.Comments[0].Body)
	assert.Equal(t, ada.ID, view.Author.ID)
}

func TestDeletePostRequiresOwnership(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")
	bo := seedUser(t, s, "bo")

	post, err := f.CreatePost(ctx, ada.ID, "mine")
	require.NoError(t, err)

	err = f.DeletePost(ctx, bo.ID, post.ID)
	assert.True(t, IsCode(err, CodeForbidden))

	require.NoError(t, f.DeletePost(ctx, ada.ID, post.ID))
	_, err = s.Get(ctx, models.KindPost, post.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteCommentRequiresOwnership(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")
	bo := seedUser(t, s, "bo")

	post, err := f.CreatePost(ctx, ada.ID, "hello")
	require.NoError(t, err)
	comment, err := f.CreateComment(ctx, bo.ID, post.ID, "hi")
	require.NoError(t, err)

	err = f.DeleteComment(ctx, ada.ID, comment.ID)
	assert.True(t, IsCode(err, CodeForbidden))
	require.NoError(t, f.DeleteComment(ctx, bo.ID, comment.ID))
}

func TestRepostAddsToRecipientSet(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ctx := context.Background()
	ada := seedUser(t, s, "ada")
	bo := seedUser(t, s, "bo")

	rp, err := f.Repost(ctx, ada.ID, bo.ID, "look", true)
	require.NoError(t, err)

	b, _ := s.Get(ctx, models.KindUser, bo.ID)
	assert.True(t, b.(*models.User).Reposts.Has(rp.ID))
}

func TestRepostToSelf(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	ada := seedUser(t, s, "ada")
	_, err := f.Repost(context.Background(), ada.ID, ada.ID, "look", true)
	assert.True(t, IsCode(err, CodeValidationFailed))
}
