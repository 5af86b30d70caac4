package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"spread/internal/models"
	"spread/internal/store"
)

// Befriend makes the relation between two users bidirectional: both
// friend sets gain the other user. Both references are validated
// before either set is touched, and repeated calls are no-ops.
func (f *Facade) Befriend(ctx context.Context, userID, friendID uint) (changed bool, err error) {
	if userID == friendID {
		return false, validationFailed("cannot befriend yourself", nil)
	}
	if _, err := f.user(ctx, userID); err != nil {
		return false, translate(err)
	}
	if _, err := f.user(ctx, friendID); err != nil {
		return false, translate(err)
	}

	a, err := f.sets.AddIfAbsent(ctx, models.KindUser, userID, models.SetFriends, friendID)
	if err != nil {
		return false, translate(err)
	}
	b, err := f.sets.AddIfAbsent(ctx, models.KindUser, friendID, models.SetFriends, userID)
	if err != nil {
		return false, translate(err)
	}
	return a || b, nil
}

// Unfriend removes the relation from both sides. The reverse leg
// tolerates a vanished counterpart so the caller's own set always ends
// up clean.
func (f *Facade) Unfriend(ctx context.Context, userID, friendID uint) (changed bool, err error) {
	if _, err := f.user(ctx, userID); err != nil {
		return false, translate(err)
	}

	a, err := f.sets.RemoveIfPresent(ctx, models.KindUser, userID, models.SetFriends, friendID)
	if err != nil {
		return false, translate(err)
	}
	b, err := f.sets.RemoveIfPresent(ctx, models.KindUser, friendID, models.SetFriends, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, translate(err)
	}
	return a || b, nil
}

func (f *Facade) CreatePost(ctx context.Context, authorID uint, body string) (*models.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, validationFailed("post body is required", map[string]string{"body": "required"})
	}
	if _, err := f.user(ctx, authorID); err != nil {
		return nil, translate(err)
	}
	post := &models.Post{AuthorID: authorID, Body: body}
	if err := f.store.Create(ctx, post); err != nil {
		return nil, translate(err)
	}
	return post, nil
}

// PostView is a post with its author and comments in creation order.
type PostView struct {
	Post     *models.Post      `json:"post"`
	Author   *models.User      `json:"author"`
	Comments []*models.Comment `json:"comments"`
}

func (f *Facade) GetPost(ctx context.Context, postID uint) (*PostView, error) {
	e, err := f.resolver.Resolve(ctx, models.KindPost, postID)
	if err != nil {
		return nil, translate(err)
	}
	post := e.(*models.Post)

	author, err := f.user(ctx, post.AuthorID)
	if err != nil && !IsCode(translate(err), CodeMissingReference) {
		return nil, translate(err)
	}

	comments, err := f.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.CommentCount = len(comments)
	return &PostView{Post: post, Author: author, Comments: comments}, nil
}

// ListPostsByAuthor returns the author's posts newest first, the feed
// order.
func (f *Facade) ListPostsByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	entities, err := f.store.ListByRef(ctx, models.KindPost, models.RefAuthor, authorID)
	if err != nil {
		return nil, translate(err)
	}
	posts := make([]*models.Post, len(entities))
	for i, e := range entities {
		posts[i] = e.(*models.Post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

// DeletePost removes the actor's own post and cascades over its
// comments.
func (f *Facade) DeletePost(ctx context.Context, actorID, postID uint) error {
	e, err := f.resolver.Resolve(ctx, models.KindPost, postID)
	if err != nil {
		return translate(err)
	}
	if e.(*models.Post).AuthorID != actorID {
		return forbidden("post %d does not belong to user %d", postID, actorID)
	}
	return translate(f.hier.DeletePost(ctx, postID))
}

func (f *Facade) CreateComment(ctx context.Context, actorID, postID uint, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, validationFailed("comment body is required", map[string]string{"body": "required"})
	}
	// Validate the whole chain before writing anything.
	if _, err := f.user(ctx, actorID); err != nil {
		return nil, translate(err)
	}
	if _, err := f.resolver.Resolve(ctx, models.KindPost, postID); err != nil {
		return nil, translate(err)
	}
	comment := &models.Comment{PostID: postID, AuthorID: actorID, Body: body}
	if err := f.store.Create(ctx, comment); err != nil {
		return nil, translate(err)
	}
	return comment, nil
}

// ListComments returns a post's comments ordered by creation.
func (f *Facade) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	entities, err := f.store.ListByRef(ctx, models.KindComment, models.RefPost, postID)
	if err != nil {
		return nil, translate(err)
	}
	comments := make([]*models.Comment, len(entities))
	for i, e := range entities {
		comments[i] = e.(*models.Comment)
	}
	return comments, nil
}

func (f *Facade) DeleteComment(ctx context.Context, actorID, commentID uint) error {
	e, err := f.resolver.Resolve(ctx, models.KindComment, commentID)
	if err != nil {
		return translate(err)
	}
	if e.(*models.Comment).AuthorID != actorID {
		return forbidden("comment %d does not belong to user %d", commentID, actorID)
	}
	return translate(f.store.Delete(ctx, models.KindComment, commentID))
}

// Repost sends content from one user to another: a Repost entity plus
// an idempotent add into the recipient's inbound set.
func (f *Facade) Repost(ctx context.Context, fromID, toID uint, body string, visible bool) (*models.Repost, error) {
	if fromID == toID {
		return nil, validationFailed("cannot repost to yourself", nil)
	}
	if _, err := f.user(ctx, fromID); err != nil {
		return nil, translate(err)
	}
	if _, err := f.user(ctx, toID); err != nil {
		return nil, translate(err)
	}

	repost := &models.Repost{FromID: fromID, ToID: toID, Body: body, Visible: visible}
	if err := f.store.Create(ctx, repost); err != nil {
		return nil, translate(err)
	}
	if _, err := f.sets.AddIfAbsent(ctx, models.KindUser, toID, models.SetReposts, repost.ID); err != nil {
		return nil, translate(err)
	}
	return repost, nil
}
