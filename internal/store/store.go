// Package store owns entity persistence: identity assignment,
// timestamps, and per-document atomic read-modify-write. The
// consistency layer above it never caches entity state between
// intents; every intent re-reads through the store.
package store

import (
	"context"
	"errors"

	"spread/internal/models"
)

var (
	// ErrNotFound reports that an entity with the given kind and id
	// does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrUnavailable wraps transient persistence failures. Callers may
	// retry; the store never retries internally.
	ErrUnavailable = errors.New("store: unavailable")
)

// Store is the persistence contract of the consistency layer. Update
// runs its mutate callback inside a per-document atomic
// read-modify-write: the callback sees current state and no concurrent
// writer can interleave between the read and the save. An error from
// the callback aborts the write and is returned unchanged.
type Store interface {
	Create(ctx context.Context, e models.Entity) error
	Get(ctx context.Context, kind models.Kind, id uint) (models.Entity, error)
	Update(ctx context.Context, kind models.Kind, id uint, mutate func(models.Entity) error) (models.Entity, error)
	Delete(ctx context.Context, kind models.Kind, id uint) error

	// ListByRef returns all entities of kind whose given reference
	// field points at id, ordered by id ascending.
	ListByRef(ctx context.Context, kind models.Kind, field models.RefField, id uint) ([]models.Entity, error)
	// ListRefSetHolders returns all entities of kind whose named
	// reference set contains targetID.
	ListRefSetHolders(ctx context.Context, kind models.Kind, field models.SetField, targetID uint) ([]models.Entity, error)

	// FindUserByEmail is the one typed lookup the identity boundary
	// needs; email is unique across users.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// prototypes instantiates an empty entity per kind. Shared by every
// Store implementation.
var prototypes = map[models.Kind]func() models.Entity{
	models.KindUser:     func() models.Entity { return &models.User{} },
	models.KindCompany:  func() models.Entity { return &models.Company{} },
	models.KindPost:     func() models.Entity { return &models.Post{} },
	models.KindComment:  func() models.Entity { return &models.Comment{} },
	models.KindPoll:     func() models.Entity { return &models.Poll{} },
	models.KindResume:   func() models.Entity { return &models.Resume{} },
	models.KindTodoList: func() models.Entity { return &models.TodoList{} },
	models.KindNotebook: func() models.Entity { return &models.Notebook{} },
	models.KindSection:  func() models.Entity { return &models.NotebookSection{} },
	models.KindNote:     func() models.Entity { return &models.Note{} },
	models.KindRepost:   func() models.Entity { return &models.Repost{} },
}

func prototype(kind models.Kind) (models.Entity, error) {
	fn, ok := prototypes[kind]
	if !ok {
		return nil, errors.New("store: unknown kind " + string(kind))
	}
	return fn(), nil
}
