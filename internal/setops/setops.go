// Package setops applies idempotent set-semantics updates: add-if-absent
// and remove-if-present on reference sets, and identity-addressed
// mutation of embedded child lists. Calling any operation twice with
// identical arguments must leave the same state as calling it once.
package setops

import (
	"context"
	"fmt"

	"spread/internal/models"
	"spread/internal/store"
)

// Updater performs reference-set operations through the store's atomic
// read-modify-write, so concurrent requests against the same owner
// field serialize instead of losing updates.
type Updater struct {
	store store.Store
}

func NewUpdater(s store.Store) *Updater {
	return &Updater{store: s}
}

// AddIfAbsent puts targetID into the named set of the owner entity.
// The second call with the same arguments is a no-op reported by
// changed == false, never an error.
func (u *Updater) AddIfAbsent(ctx context.Context, kind models.Kind, ownerID uint, field models.SetField, targetID uint) (changed bool, err error) {
	_, err = u.store.Update(ctx, kind, ownerID, func(e models.Entity) error {
		set, err := refSet(e, field)
		if err != nil {
			return err
		}
		*set, changed = set.Add(targetID)
		return nil
	})
	return changed, err
}

// RemoveIfPresent takes targetID out of the named set. Removing an
// absent member is a no-op.
func (u *Updater) RemoveIfPresent(ctx context.Context, kind models.Kind, ownerID uint, field models.SetField, targetID uint) (changed bool, err error) {
	_, err = u.store.Update(ctx, kind, ownerID, func(e models.Entity) error {
		set, err := refSet(e, field)
		if err != nil {
			return err
		}
		*set, changed = set.Remove(targetID)
		return nil
	})
	return changed, err
}

func refSet(e models.Entity, field models.SetField) (*models.RefSet, error) {
	holder, ok := e.(models.SetHolder)
	if !ok {
		return nil, fmt.Errorf("setops: %s holds no reference sets", e.EntityKind())
	}
	set := holder.RefSetField(field)
	if set == nil {
		return nil, fmt.Errorf("setops: %s has no set %q", e.EntityKind(), field)
	}
	return set, nil
}

// Identified is implemented by embedded child records that carry their
// own stable sub-identity.
type Identified interface {
	SubID() string
}

// Find returns a pointer to the child with the given sub-identity, so
// the caller can mutate it in place inside a store Update callback.
func Find[T Identified](items []T, id string) (*T, bool) {
	for i := range items {
		if items[i].SubID() == id {
			return &items[i], true
		}
	}
	return nil, false
}

// Upsert replaces the child carrying the same sub-identity, or appends
// it when absent. The second result reports whether an existing child
// was replaced. Children are addressed by identity, never by position,
// so concurrent appends elsewhere in the list cannot shift the target.
func Upsert[T Identified](items []T, child T) ([]T, bool) {
	for i := range items {
		if items[i].SubID() == child.SubID() {
			items[i] = child
			return items, true
		}
	}
	return append(items, child), false
}

// Remove deletes the child with the given sub-identity. Removing an
// absent child is a no-op.
func Remove[T Identified](items []T, id string) ([]T, bool) {
	for i := range items {
		if items[i].SubID() == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}
