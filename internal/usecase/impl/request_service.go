// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"crosslink/config"
	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"
	"crosslink/internal/usecase"

	"github.com/google/uuid"
)

// codeSpace is the number of issuable codes. Codes are four decimal digits,
// easy to relay between a PC chat window and a console screen.
const codeSpace = 10000

type requestService struct {
	mu         sync.Mutex
	byCode     map[int]*entity.LinkRequest
	byIdentity map[uuid.UUID]int

	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewRequestService creates the in-memory pairing code registry.
func NewRequestService(cfg *config.Config, logger *slog.Logger) usecase.LinkRequestUsecase {
	return newRequestService(cfg.Link.TTL, time.Now, logger)
}

func newRequestService(ttl time.Duration, now func() time.Time, logger *slog.Logger) *requestService {
	return &requestService{
		byCode:     make(map[int]*entity.LinkRequest),
		byIdentity: make(map[uuid.UUID]int),
		ttl:        ttl,
		now:        now,
		logger:     logger,
	}
}

// CreateRequest issues a fresh code for the requester, superseding any code
// the requester already holds.
func (s *requestService) CreateRequest(_ context.Context, requester entity.Identity) (*entity.LinkRequest, error) {
	if !requester.Platform.Valid() {
		return nil, domainerrors.ErrUnknownPlatform
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeByIdentityLocked(requester.ID)

	request := &entity.LinkRequest{
		Code:          s.issueCodeLocked(),
		ExpiresAt:     s.now().Add(s.ttl),
		RequesterID:   requester.ID,
		RequesterName: requester.Name,
	}
	s.byCode[request.Code] = request
	s.byIdentity[requester.ID] = request.Code

	s.logger.Debug("pairing code issued",
		slog.String("requester_id", requester.ID.String()),
		slog.Time("expires_at", request.ExpiresAt),
	)

	return request, nil
}

// RedeemCode atomically removes and returns the request behind a code.
// A code that is expired, already consumed, or was never issued yields the
// same ErrLinkCodeNotFound; callers cannot probe which case it was.
func (s *requestService) RedeemCode(_ context.Context, code int) (*entity.LinkRequest, error) {
	if code < 0 || code >= codeSpace {
		return nil, domainerrors.ErrLinkCodeOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.byCode[code]
	if !ok {
		return nil, domainerrors.ErrLinkCodeNotFound
	}
	if request.Expired(s.now()) {
		s.removeLocked(request)

		return nil, domainerrors.ErrLinkCodeNotFound
	}

	s.removeLocked(request)

	return request, nil
}

// CancelRequest drops the identity's pending request if one is still valid.
func (s *requestService) CancelRequest(_ context.Context, identity entity.Identity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.byIdentity[identity.ID]
	if !ok {
		return false
	}

	request := s.byCode[code]
	expired := request.Expired(s.now())
	s.removeLocked(request)

	return !expired
}

// HasActiveRequest reports whether the identity holds a valid code.
func (s *requestService) HasActiveRequest(_ context.Context, identity entity.Identity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.byIdentity[identity.ID]
	if !ok {
		return false
	}

	request := s.byCode[code]
	if request.Expired(s.now()) {
		s.removeLocked(request)

		return false
	}

	return true
}

// SweepExpired removes every expired request and returns copies of the removed
// entries. Notification happens on the copies, after the lock is released.
func (s *requestService) SweepExpired(_ context.Context) []entity.LinkRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	var removed []entity.LinkRequest
	for _, request := range s.byCode {
		if request.Expired(now) {
			removed = append(removed, *request)
			s.removeLocked(request)
		}
	}

	return removed
}

// issueCodeLocked draws random codes until one is free among the currently
// valid requests. An expired holder found during the probe is evicted, which
// frees its code. With a four digit space and short TTLs collisions stay rare,
// so the loop terminates quickly in practice.
func (s *requestService) issueCodeLocked() int {
	now := s.now()
	for {
		code := rand.IntN(codeSpace)
		holder, taken := s.byCode[code]
		if !taken {
			return code
		}
		if holder.Expired(now) {
			s.removeLocked(holder)

			return code
		}
	}
}

// removeLocked deletes a request from both indexes as one unit.
// The identity index entry is dropped only if it still points at this request,
// a newer request from the same identity must not lose its index entry.
func (s *requestService) removeLocked(request *entity.LinkRequest) {
	delete(s.byCode, request.Code)
	if code, ok := s.byIdentity[request.RequesterID]; ok && code == request.Code {
		delete(s.byIdentity, request.RequesterID)
	}
}

// removeByIdentityLocked drops whatever request the identity currently holds.
func (s *requestService) removeByIdentityLocked(id uuid.UUID) {
	if code, ok := s.byIdentity[id]; ok {
		if request, exists := s.byCode[code]; exists {
			s.removeLocked(request)
		} else {
			delete(s.byIdentity, id)
		}
	}
}
