// Package refs resolves and validates cross-entity references before a
// write is accepted. It fails closed: any unresolved reference aborts
// the whole intent and nothing is written.
package refs

import (
	"context"
	"errors"
	"fmt"

	"spread/internal/models"
	"spread/internal/store"
)

// MissingReferenceError reports a reference to an entity that does not
// exist at write time.
type MissingReferenceError struct {
	Kind models.Kind
	ID   uint
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("missing reference: %s %d", e.Kind, e.ID)
}

// BrokenChainError reports a containment chain whose links do not
// belong together (a section named with the wrong notebook, for
// example).
type BrokenChainError struct {
	Kind   models.Kind
	ID     uint
	Parent models.Kind
	Want   uint
}

func (e *BrokenChainError) Error() string {
	return fmt.Sprintf("broken chain: %s %d does not belong to %s %d", e.Kind, e.ID, e.Parent, e.Want)
}

// Resolver validates entity references against the store.
type Resolver struct {
	store store.Store
}

func NewResolver(s store.Store) *Resolver {
	return &Resolver{store: s}
}

// Resolve returns the referenced entity, or a MissingReferenceError if
// it does not exist. Store transport failures pass through untouched.
func (r *Resolver) Resolve(ctx context.Context, kind models.Kind, id uint) (models.Entity, error) {
	e, err := r.store.Get(ctx, kind, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &MissingReferenceError{Kind: kind, ID: id}
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ParentRef names one link of a containment chain, outermost first.
type ParentRef struct {
	Kind models.Kind
	ID   uint
}

// chainFields maps container kinds to the reference field a child uses
// to point at them.
var chainFields = map[models.Kind]models.RefField{
	models.KindNotebook: models.RefNotebook,
	models.KindSection:  models.RefSection,
	models.KindPost:     models.RefPost,
}

// ValidateChain resolves every named parent and checks that each inner
// link actually belongs to the one before it. All links are validated
// before the caller applies any write.
func (r *Resolver) ValidateChain(ctx context.Context, parents ...ParentRef) error {
	for i, p := range parents {
		e, err := r.Resolve(ctx, p.Kind, p.ID)
		if err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		outer := parents[i-1]
		field, ok := chainFields[outer.Kind]
		if !ok || e.Refs()[field] != outer.ID {
			return &BrokenChainError{Kind: p.Kind, ID: p.ID, Parent: outer.Kind, Want: outer.ID}
		}
	}
	return nil
}
