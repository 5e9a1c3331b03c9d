package impl

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"crosslink/internal/async"
	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"
	"crosslink/internal/domain/repository"
	"crosslink/internal/domain/service"
	"crosslink/internal/usecase"

	"github.com/google/uuid"
)

// inflightFetch collects every caller waiting on one store query for an
// identity. Identity of the pointer doubles as the fetch generation: after an
// Invalidate the registered pointer changes, so a stale completion recognizes
// itself and stays out of the cache.
type inflightFetch struct {
	waiters []chan async.Result[*entity.FullLink]
}

type lookupService struct {
	mu       sync.Mutex
	cache    map[uuid.UUID]*entity.FullLink
	inflight map[uuid.UUID]*inflightFetch

	linkRepo   repository.LinkRepository
	classifier service.PlatformClassifier
	presence   service.PresenceService
	pool       *async.Pool
	logger     *slog.Logger
}

// NewLookupService creates the cached link lookup service.
func NewLookupService(
	linkRepo repository.LinkRepository,
	classifier service.PlatformClassifier,
	presence service.PresenceService,
	pool *async.Pool,
	logger *slog.Logger,
) usecase.LinkLookupUsecase {
	return &lookupService{
		cache:      make(map[uuid.UUID]*entity.FullLink),
		inflight:   make(map[uuid.UUID]*inflightFetch),
		linkRepo:   linkRepo,
		classifier: classifier,
		presence:   presence,
		pool:       pool,
		logger:     logger,
	}
}

// Lookup resolves the identity's link, serving from cache when possible and
// sharing one store query between concurrent callers for the same identity.
func (s *lookupService) Lookup(ctx context.Context, identity entity.Identity) <-chan async.Result[*entity.FullLink] {
	s.mu.Lock()

	if cached, ok := s.cache[identity.ID]; ok {
		s.mu.Unlock()

		return async.Completed(cached)
	}

	waiter := make(chan async.Result[*entity.FullLink], 1)

	if fetch, ok := s.inflight[identity.ID]; ok {
		fetch.waiters = append(fetch.waiters, waiter)
		s.mu.Unlock()

		return waiter
	}

	fetch := &inflightFetch{waiters: []chan async.Result[*entity.FullLink]{waiter}}
	s.inflight[identity.ID] = fetch
	s.mu.Unlock()

	// The query outlives the first caller's request; later joiners must not
	// fail because the caller that happened to start the fetch went away.
	taskCtx := context.WithoutCancel(ctx)
	done := async.Submit(s.pool, taskCtx, func(ctx context.Context) (*entity.FullLink, error) {
		return s.fetch(ctx, identity)
	})

	go s.complete(identity.ID, fetch, done)

	return waiter
}

// IsLookupComplete reports whether no fetch is outstanding for the id. An
// identity nobody ever looked up counts as complete.
func (s *lookupService) IsLookupComplete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.inflight[id]

	return !ok
}

// CachedLookup returns the cached link, nil when no lookup has found one. It
// never starts a fetch.
func (s *lookupService) CachedLookup(id uuid.UUID) *entity.FullLink {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache[id]
}

// Invalidate forgets everything about the id. A fetch already in flight keeps
// its waiters but loses the right to populate the cache.
func (s *lookupService) Invalidate(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cache, id)
	delete(s.inflight, id)
}

// fetch runs on the worker pool: one store query plus best-effort console name
// enrichment from the presence layer.
func (s *lookupService) fetch(ctx context.Context, identity entity.Identity) (*entity.FullLink, error) {
	platform, err := s.classifier.Classify(identity.ID)
	if err != nil {
		if !identity.Platform.Valid() {
			return nil, domainerrors.ErrUnknownPlatform
		}
		platform = identity.Platform
	}

	var link *entity.Link
	if platform == entity.PlatformPC {
		link, err = s.linkRepo.FindByPCID(ctx, identity.ID)
	} else {
		link, err = s.linkRepo.FindByConsoleID(ctx, identity.ID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find link")
	}

	full := &entity.FullLink{
		PCID:      link.PCID,
		PCName:    link.PCName,
		ConsoleID: link.ConsoleID,
	}
	if name, nameErr := s.presence.NameOf(ctx, link.ConsoleID); nameErr == nil {
		full.ConsoleName = name
	}

	return full, nil
}

// complete waits for the pool fetch and fans the single result out to every
// waiter. The cache is populated only when this fetch is still the registered
// one for the id; an invalidated fetch answers its waiters and nothing else.
func (s *lookupService) complete(id uuid.UUID, fetch *inflightFetch, done <-chan async.Result[*entity.FullLink]) {
	result := <-done

	s.mu.Lock()
	current := s.inflight[id] == fetch
	if current {
		delete(s.inflight, id)
		// Only actual links are cached; a not-linked answer goes back to the
		// store next time, since a pairing may have landed in between.
		if result.Err == nil && result.Value != nil {
			s.cache[id] = result.Value
		}
	}
	waiters := fetch.waiters
	fetch.waiters = nil
	s.mu.Unlock()

	if result.Err != nil {
		s.logger.Warn("link lookup failed",
			slog.String("id", id.String()),
			slog.Any("error", result.Err),
		)
	}

	for _, waiter := range waiters {
		waiter <- result
		close(waiter)
	}
}
