// Package usecase defines the application-layer interfaces. Implementations
// live in the impl subpackage; delivery layers depend only on these contracts.
package usecase

import (
	"context"

	"crosslink/internal/domain/entity"
)

// LinkRequestUsecase manages the in-memory registry of pending pairing codes.
// All operations are synchronous and non-blocking; the registry never performs
// store I/O.
type LinkRequestUsecase interface {
	// CreateRequest issues a fresh pairing code for the requester. Any prior
	// request from the same identity is invalidated first, so an identity holds
	// at most one valid code at a time.
	CreateRequest(ctx context.Context, requester entity.Identity) (*entity.LinkRequest, error)

	// RedeemCode atomically removes and returns the request for a code.
	// Expired, already-consumed, and never-issued codes are indistinguishable:
	// all yield ErrLinkCodeNotFound.
	RedeemCode(ctx context.Context, code int) (*entity.LinkRequest, error)

	// CancelRequest drops the identity's pending request, reporting whether
	// one existed.
	CancelRequest(ctx context.Context, identity entity.Identity) bool

	// HasActiveRequest reports whether the identity holds a valid, unredeemed code.
	HasActiveRequest(ctx context.Context, identity entity.Identity) bool

	// SweepExpired removes every expired request and returns copies of the
	// removed entries so callers can notify requesters outside the lock.
	SweepExpired(ctx context.Context) []entity.LinkRequest
}
