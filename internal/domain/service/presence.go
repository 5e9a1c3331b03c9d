package service

import (
	"context"

	"crosslink/internal/domain/entity"

	"github.com/google/uuid"
)

// PresenceService is the session layer seen from the link coordinator's side.
// It is used for user-visible side effects only, never for coordination
// correctness: a dropped notification or a failed disconnect does not change
// any link state.
type PresenceService interface {
	// IsReachable reports whether the identity currently has a live session.
	IsReachable(id uuid.UUID) bool

	// Notify delivers a user-visible message to the identity's session, if any.
	Notify(ctx context.Context, id uuid.UUID, text string)

	// Disconnect force-closes the identity's session with a reason shown to the user.
	Disconnect(ctx context.Context, id uuid.UUID, reason string)

	// NameOf resolves the display name for an identity, used to enrich the
	// console side of a link at lookup time.
	NameOf(ctx context.Context, id uuid.UUID) (string, error)

	// Connected returns the identity for a live session, if one exists.
	Connected(id uuid.UUID) (entity.Identity, bool)
}
