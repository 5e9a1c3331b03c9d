package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crosslink/config"
	"crosslink/internal/domain/service"
	"crosslink/internal/usecase"
)

type sweeperService struct {
	requests usecase.LinkRequestUsecase
	presence service.PresenceService
	interval time.Duration
	logger   *slog.Logger
}

// NewSweeperService creates the periodic expiry sweeper.
func NewSweeperService(
	cfg *config.Config,
	requests usecase.LinkRequestUsecase,
	presence service.PresenceService,
	logger *slog.Logger,
) usecase.Sweeper {
	return &sweeperService{
		requests: requests,
		presence: presence,
		interval: cfg.Link.SweepInterval,
		logger:   logger,
	}
}

// Run sweeps at a fixed period until the context is cancelled.
func (s *sweeperService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry sweeper started", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry sweeper stopped")

			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep performs one pass: evict every expired request, then notify each
// requester that is still reachable. The registry lock is already released by
// the time any notification goes out.
func (s *sweeperService) Sweep(ctx context.Context) int {
	expired := s.requests.SweepExpired(ctx)
	if len(expired) == 0 {
		return 0
	}

	for i := range expired {
		request := &expired[i]
		if !s.presence.IsReachable(request.RequesterID) {
			continue
		}
		s.presence.Notify(ctx, request.RequesterID,
			fmt.Sprintf("Your pairing code %s has expired, request a new one to link your accounts.", request.DisplayCode()))
	}

	s.logger.Debug("expired pairing codes swept", slog.Int("count", len(expired)))

	return len(expired)
}
