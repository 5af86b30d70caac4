// Package services is the consistency facade: the single entry point
// the route layer calls. It translates request intents ("befriend user
// X", "mark todo item Y complete") into reference resolution,
// set-semantics updates, and hierarchy mutations, and returns either
// an updated view or a typed IntentError.
//
// Every intent validates fully before applying anything: a failed
// reference resolution never leaves a partial graph update behind.
package services

import (
	"context"

	"spread/internal/hierarchy"
	"spread/internal/models"
	"spread/internal/refs"
	"spread/internal/setops"
	"spread/internal/store"
)

// Options carries the facade's policy knobs.
type Options struct {
	// CascadeUserContent makes DeleteUser also delete the user's posts
	// and comments. Off by default: orphaned social content is the
	// intended retention policy.
	CascadeUserContent bool
}

type Facade struct {
	store    store.Store
	resolver *refs.Resolver
	sets     *setops.Updater
	hier     *hierarchy.Manager
	opts     Options
}

func NewFacade(s store.Store, opts Options) *Facade {
	resolver := refs.NewResolver(s)
	return &Facade{
		store:    s,
		resolver: resolver,
		sets:     setops.NewUpdater(s),
		hier:     hierarchy.NewManager(s, resolver),
		opts:     opts,
	}
}

// user resolves a user reference with the typed result the intents
// want.
func (f *Facade) user(ctx context.Context, id uint) (*models.User, error) {
	e, err := f.resolver.Resolve(ctx, models.KindUser, id)
	if err != nil {
		return nil, err
	}
	return e.(*models.User), nil
}
