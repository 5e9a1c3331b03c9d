package usecase

import (
	"context"

	"crosslink/internal/async"
	"crosslink/internal/domain/entity"
)

// LinkUsecase finalizes and removes durable links. Store writes run on the
// worker pool; callers receive a result channel that resolves exactly once.
type LinkUsecase interface {
	// FinalizeLink pairs the redeemed request's owner with the redeemer.
	// Classification happens synchronously: if both parties are on the same
	// platform, ErrSamePlatform is returned immediately and no store work is
	// scheduled. Otherwise the returned channel resolves with whether a row
	// was written, or with a wrapped store error.
	FinalizeLink(ctx context.Context, request *entity.LinkRequest, redeemer entity.Identity) (<-chan async.Result[bool], error)

	// Unlink removes the durable link the identity is part of, keyed by
	// whichever side the identity occupies. The channel resolves with whether
	// a row existed.
	Unlink(ctx context.Context, identity entity.Identity) (<-chan async.Result[bool], error)
}
