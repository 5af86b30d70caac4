// Package hierarchy maintains the fixed containment chains
// (Notebook -> Section -> Note, Post -> Comment, TodoList -> TodoItem)
// and their cascade policies. A parent reference is immutable after
// creation; there is no re-parenting.
//
// Cascade policy, applied uniformly:
//   - Deleting a notebook deletes its sections and their notes; neither
//     has independent existence outside the notebook.
//   - Deleting a post deletes its comments.
//   - Deleting a todo list removes its items implicitly; they are
//     embedded, not separately stored.
//   - Deleting a user does NOT delete their posts or comments unless
//     content cascade is explicitly requested; orphaned social content
//     is a deliberate retention policy. The user is always scrubbed
//     out of every other user's friend set.
package hierarchy

import (
	"context"

	"spread/internal/models"
	"spread/internal/refs"
	"spread/internal/store"
)

type Manager struct {
	store    store.Store
	resolver *refs.Resolver
}

func NewManager(s store.Store, r *refs.Resolver) *Manager {
	return &Manager{store: s, resolver: r}
}

// DeleteNotebook removes the notebook and cascades over its sections
// and their notes. Children are collected up front and deleted
// bottom-up, so a failure part-way never leaves a note without its
// section or a section without its notebook.
func (m *Manager) DeleteNotebook(ctx context.Context, notebookID uint) error {
	if _, err := m.resolver.Resolve(ctx, models.KindNotebook, notebookID); err != nil {
		return err
	}
	sections, err := m.store.ListByRef(ctx, models.KindSection, models.RefNotebook, notebookID)
	if err != nil {
		return err
	}
	for _, sec := range sections {
		if err := m.deleteSectionNotes(ctx, sec.EntityID()); err != nil {
			return err
		}
	}
	for _, sec := range sections {
		if err := m.store.Delete(ctx, models.KindSection, sec.EntityID()); err != nil {
			return err
		}
	}
	return m.store.Delete(ctx, models.KindNotebook, notebookID)
}

// DeleteSection removes one section and its notes, leaving the parent
// notebook and sibling sections untouched.
func (m *Manager) DeleteSection(ctx context.Context, sectionID uint) error {
	if _, err := m.resolver.Resolve(ctx, models.KindSection, sectionID); err != nil {
		return err
	}
	if err := m.deleteSectionNotes(ctx, sectionID); err != nil {
		return err
	}
	return m.store.Delete(ctx, models.KindSection, sectionID)
}

func (m *Manager) deleteSectionNotes(ctx context.Context, sectionID uint) error {
	notes, err := m.store.ListByRef(ctx, models.KindNote, models.RefSection, sectionID)
	if err != nil {
		return err
	}
	for _, n := range notes {
		if err := m.store.Delete(ctx, models.KindNote, n.EntityID()); err != nil {
			return err
		}
	}
	return nil
}

// DeletePost removes the post and cascades over its comments.
func (m *Manager) DeletePost(ctx context.Context, postID uint) error {
	if _, err := m.resolver.Resolve(ctx, models.KindPost, postID); err != nil {
		return err
	}
	comments, err := m.store.ListByRef(ctx, models.KindComment, models.RefPost, postID)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if err := m.store.Delete(ctx, models.KindComment, c.EntityID()); err != nil {
			return err
		}
	}
	return m.store.Delete(ctx, models.KindPost, postID)
}

// DeleteUser removes the user. Posts and comments are orphaned unless
// cascadeContent is set; the friend-set scrub always runs so no
// surviving user references the deleted one.
func (m *Manager) DeleteUser(ctx context.Context, userID uint, cascadeContent bool) error {
	if _, err := m.resolver.Resolve(ctx, models.KindUser, userID); err != nil {
		return err
	}

	if cascadeContent {
		posts, err := m.store.ListByRef(ctx, models.KindPost, models.RefAuthor, userID)
		if err != nil {
			return err
		}
		for _, p := range posts {
			if err := m.DeletePost(ctx, p.EntityID()); err != nil {
				return err
			}
		}
		comments, err := m.store.ListByRef(ctx, models.KindComment, models.RefAuthor, userID)
		if err != nil {
			return err
		}
		for _, c := range comments {
			if err := m.store.Delete(ctx, models.KindComment, c.EntityID()); err != nil {
				return err
			}
		}
	}

	holders, err := m.store.ListRefSetHolders(ctx, models.KindUser, models.SetFriends, userID)
	if err != nil {
		return err
	}
	for _, h := range holders {
		_, err := m.store.Update(ctx, models.KindUser, h.EntityID(), func(e models.Entity) error {
			u := e.(*models.User)
			u.Friends, _ = u.Friends.Remove(userID)
			return nil
		})
		if err != nil {
			return err
		}
	}

	return m.store.Delete(ctx, models.KindUser, userID)
}
