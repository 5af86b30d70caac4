package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"spread/internal/models"
	"spread/internal/store"
)

func newTestFacade(t *testing.T, opts Options) (*Facade, *store.MemStore) {
	t.Helper()
	s := store.NewMemStore()
	return NewFacade(s, opts), s
}

// seedUser writes a user directly, bypassing registration, for tests
// that only need a valid actor.
func seedUser(t *testing.T, s *store.MemStore, name string) *models.User {
	t.Helper()
	u := &models.User{FName: name, LName: "Test", Email: name + "@example.com"}
	require.NoError(t, s.Create(context.Background(), u))
	return u
}
