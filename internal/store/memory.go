package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"spread/internal/models"
)

// MemStore is a mutex-guarded in-memory document store with the same
// contract as GormStore. It backs the test suite and keeps the
// consistency layer runnable without a database.
type MemStore struct {
	mu   sync.Mutex
	seq  map[models.Kind]uint
	docs map[models.Kind]map[uint]models.Entity
	now  func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		seq:  make(map[models.Kind]uint),
		docs: make(map[models.Kind]map[uint]models.Entity),
		now:  time.Now,
	}
}

// SetClock overrides the timestamp source, for tests that assert on
// stamp ordering.
func (s *MemStore) SetClock(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = fn
}

func (s *MemStore) Create(ctx context.Context, e models.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := e.EntityKind()
	if e.EntityID() == 0 {
		s.seq[kind]++
		e.SetEntityID(s.seq[kind])
	} else if e.EntityID() > s.seq[kind] {
		s.seq[kind] = e.EntityID()
	}
	e.Touch(s.now())

	if s.docs[kind] == nil {
		s.docs[kind] = make(map[uint]models.Entity)
	}
	s.docs[kind][e.EntityID()] = e.Clone()
	return nil
}

func (s *MemStore) Get(ctx context.Context, kind models.Kind, id uint) (models.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.docs[kind][id]
	if !ok {
		return nil, ErrNotFound
	}
	return e.Clone(), nil
}

func (s *MemStore) Update(ctx context.Context, kind models.Kind, id uint, mutate func(models.Entity) error) (models.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.docs[kind][id]
	if !ok {
		return nil, ErrNotFound
	}
	// Mutate a clone so a failing callback leaves the document intact.
	next := stored.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	next.Touch(s.now())
	s.docs[kind][id] = next
	return next.Clone(), nil
}

func (s *MemStore) Delete(ctx context.Context, kind models.Kind, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[kind][id]; !ok {
		return ErrNotFound
	}
	delete(s.docs[kind], id)
	return nil
}

func (s *MemStore) ListByRef(ctx context.Context, kind models.Kind, field models.RefField, id uint) ([]models.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Entity
	for _, e := range s.docs[kind] {
		if e.Refs()[field] == id {
			out = append(out, e.Clone())
		}
	}
	sortByID(out)
	return out, nil
}

func (s *MemStore) ListRefSetHolders(ctx context.Context, kind models.Kind, field models.SetField, targetID uint) ([]models.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Entity
	for _, e := range s.docs[kind] {
		holder, ok := e.(models.SetHolder)
		if !ok {
			continue
		}
		set := holder.RefSetField(field)
		if set != nil && set.Has(targetID) {
			out = append(out, e.Clone())
		}
	}
	sortByID(out)
	return out, nil
}

func (s *MemStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.docs[models.KindUser] {
		u := e.(*models.User)
		if u.Email == email {
			return u.Clone().(*models.User), nil
		}
	}
	return nil, ErrNotFound
}

func sortByID(es []models.Entity) {
	sort.Slice(es, func(i, j int) bool { return es[i].EntityID() < es[j].EntityID() })
}
