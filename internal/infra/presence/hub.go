// Package presence is the in-memory session layer: who is currently
// connected, on which platform, and how to reach them with user-visible
// messages. It also backs the platform classifier, since the platform tag
// arrives with the session registration.
package presence

import (
	"context"
	"log/slog"
	"sync"

	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"

	"github.com/google/uuid"
)

// inboxLimit caps how many undelivered notifications a session keeps.
const inboxLimit = 16

type session struct {
	identity entity.Identity
	inbox    []string
}

// Hub tracks live sessions and remembers the platform and display name of
// every identity it has ever seen, so recently disconnected identities stay
// classifiable and nameable.
type Hub struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*session
	platforms map[uuid.UUID]entity.Platform
	names     map[uuid.UUID]string
	logger    *slog.Logger
}

// NewHub creates an empty presence hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		sessions:  make(map[uuid.UUID]*session),
		platforms: make(map[uuid.UUID]entity.Platform),
		names:     make(map[uuid.UUID]string),
		logger:    logger,
	}
}

// Connect registers a live session for the identity, replacing any prior one.
func (h *Hub) Connect(identity entity.Identity) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sessions[identity.ID] = &session{identity: identity}
	h.platforms[identity.ID] = identity.Platform
	h.names[identity.ID] = identity.Name

	h.logger.Info("session connected",
		slog.String("identity_id", identity.ID.String()),
		slog.String("platform", string(identity.Platform)),
	)
}

// IsReachable reports whether the identity currently has a live session.
func (h *Hub) IsReachable(id uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.sessions[id]

	return ok
}

// Connected returns the identity of a live session, if one exists.
func (h *Hub) Connected(id uuid.UUID) (entity.Identity, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[id]
	if !ok {
		return entity.Identity{}, false
	}

	return s.identity, true
}

// Notify queues a user-visible message on the identity's session, if any.
// The inbox is bounded; the oldest message is dropped when it overflows.
func (h *Hub) Notify(ctx context.Context, id uuid.UUID, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		return
	}

	s.inbox = append(s.inbox, text)
	if len(s.inbox) > inboxLimit {
		s.inbox = s.inbox[len(s.inbox)-inboxLimit:]
	}
}

// Disconnect force-closes the identity's session. The platform and name
// memory survives, so the identity can still be classified afterwards.
func (h *Hub) Disconnect(ctx context.Context, id uuid.UUID, reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[id]; !ok {
		return
	}

	delete(h.sessions, id)

	h.logger.Info("session disconnected",
		slog.String("identity_id", id.String()),
		slog.String("reason", reason),
	)
}

// NameOf resolves the display name for an identity, preferring the live
// session and falling back to the last name seen.
func (h *Hub) NameOf(ctx context.Context, id uuid.UUID) (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if s, ok := h.sessions[id]; ok {
		return s.identity.Name, nil
	}
	if name, ok := h.names[id]; ok {
		return name, nil
	}

	return "", domainerrors.ErrIdentityNotConnected
}

// Classify answers which platform the identity belongs to.
func (h *Hub) Classify(id uuid.UUID) (entity.Platform, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if platform, ok := h.platforms[id]; ok {
		return platform, nil
	}

	return "", domainerrors.ErrUnknownPlatform
}

// DrainMessages returns and clears the identity's queued notifications.
func (h *Hub) DrainMessages(id uuid.UUID) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok || len(s.inbox) == 0 {
		return nil
	}

	msgs := s.inbox
	s.inbox = nil

	return msgs
}
