package usecase

import (
	"context"

	"crosslink/internal/async"
	"crosslink/internal/domain/entity"

	"github.com/google/uuid"
)

// LinkLookupUsecase answers "who is this identity linked to" with a read-through
// cache in front of the store. Concurrent lookups for the same identity share a
// single store query.
type LinkLookupUsecase interface {
	// Lookup resolves the identity's link. A cached value resolves immediately;
	// an in-flight fetch is joined; otherwise one store query is scheduled on
	// the worker pool. A nil FullLink with no error means the identity is not
	// linked.
	Lookup(ctx context.Context, identity entity.Identity) <-chan async.Result[*entity.FullLink]

	// IsLookupComplete reports whether no fetch is outstanding for the id.
	// False only while a registered fetch is in flight; an identity nobody
	// ever looked up counts as complete.
	IsLookupComplete(id uuid.UUID) bool

	// CachedLookup returns the cached link for the id, or nil when no lookup
	// has found one. It never triggers a fetch.
	CachedLookup(id uuid.UUID) *entity.FullLink

	// Invalidate drops the cached value and any in-flight marker for the id.
	// A fetch completing after invalidation still answers its waiters but does
	// not repopulate the cache.
	Invalidate(id uuid.UUID)
}
