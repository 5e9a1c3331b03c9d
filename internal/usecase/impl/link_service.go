package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"crosslink/internal/async"
	deliverycontext "crosslink/internal/delivery/context"
	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"
	"crosslink/internal/domain/repository"
	"crosslink/internal/domain/service"
	"crosslink/internal/usecase"
)

type linkService struct {
	linkRepo   repository.LinkRepository
	classifier service.PlatformClassifier
	publisher  service.EventPublisher
	pool       *async.Pool
	logger     *slog.Logger
}

// NewLinkService creates the service that finalizes and removes durable links.
func NewLinkService(
	linkRepo repository.LinkRepository,
	classifier service.PlatformClassifier,
	publisher service.EventPublisher,
	pool *async.Pool,
	logger *slog.Logger,
) usecase.LinkUsecase {
	return &linkService{
		linkRepo:   linkRepo,
		classifier: classifier,
		publisher:  publisher,
		pool:       pool,
		logger:     logger,
	}
}

// FinalizeLink pairs the request's owner with the redeemer. The platform check
// is synchronous and happens before any store work is scheduled; a rejected
// pairing never reaches the worker pool.
func (s *linkService) FinalizeLink(ctx context.Context, request *entity.LinkRequest, redeemer entity.Identity) (<-chan async.Result[bool], error) {
	requesterPlatform, err := s.classifier.Classify(request.RequesterID)
	if err != nil {
		return nil, domainerrors.ErrUnknownPlatform
	}

	redeemerPlatform, err := s.classifyIdentity(redeemer)
	if err != nil {
		return nil, err
	}

	if requesterPlatform == redeemerPlatform {
		return nil, domainerrors.ErrSamePlatform
	}

	// Normalize so the PC identity always occupies the PC side, no matter
	// which party redeemed the code.
	link := &entity.Link{}
	if requesterPlatform == entity.PlatformPC {
		link.PCID = request.RequesterID
		link.PCName = request.RequesterName
		link.ConsoleID = redeemer.ID
	} else {
		link.PCID = redeemer.ID
		link.PCName = redeemer.Name
		link.ConsoleID = request.RequesterID
	}

	// Drop cancellation but keep request-scoped values: the write must not be
	// abandoned because the redeeming HTTP request went away.
	taskCtx := context.WithoutCancel(ctx)

	ch := async.Submit(s.pool, taskCtx, func(ctx context.Context) (bool, error) {
		written, err := s.linkRepo.Upsert(ctx, link)
		if err != nil {
			return false, domainerrors.NewDatabaseExecuteError(err, "upsert link")
		}

		if written {
			s.publishEvent(ctx, &service.LinkEvent{
				Type:        service.LinkEventCompleted,
				PCID:        link.PCID.String(),
				PCName:      link.PCName,
				ConsoleID:   link.ConsoleID.String(),
				InitiatedBy: redeemer.ID.String(),
			})
		}

		return written, nil
	})

	return ch, nil
}

// Unlink removes the link the identity is part of, keyed by whichever side the
// identity occupies.
func (s *linkService) Unlink(ctx context.Context, identity entity.Identity) (<-chan async.Result[bool], error) {
	platform, err := s.classifyIdentity(identity)
	if err != nil {
		return nil, err
	}

	taskCtx := context.WithoutCancel(ctx)

	ch := async.Submit(s.pool, taskCtx, func(ctx context.Context) (bool, error) {
		// Read the row first so the removal event carries both sides.
		link, err := s.findBySide(ctx, platform, identity)
		if err != nil {
			if errors.Is(err, repository.ErrLinkNotFound) {
				return false, nil
			}

			return false, domainerrors.NewDatabaseExecuteError(err, "find link")
		}

		var existed bool
		if platform == entity.PlatformPC {
			existed, err = s.linkRepo.DeleteByPCID(ctx, identity.ID)
		} else {
			existed, err = s.linkRepo.DeleteByConsoleID(ctx, identity.ID)
		}
		if err != nil {
			return false, domainerrors.NewDatabaseExecuteError(err, "delete link")
		}

		if existed {
			s.publishEvent(ctx, &service.LinkEvent{
				Type:        service.LinkEventRemoved,
				PCID:        link.PCID.String(),
				PCName:      link.PCName,
				ConsoleID:   link.ConsoleID.String(),
				InitiatedBy: identity.ID.String(),
			})
		}

		return existed, nil
	})

	return ch, nil
}

// classifyIdentity prefers the classifier, falling back to the platform tag
// the identity arrived with when the classifier has never seen the id.
func (s *linkService) classifyIdentity(identity entity.Identity) (entity.Platform, error) {
	platform, err := s.classifier.Classify(identity.ID)
	if err == nil {
		return platform, nil
	}
	if identity.Platform.Valid() {
		return identity.Platform, nil
	}

	return "", domainerrors.ErrUnknownPlatform
}

func (s *linkService) findBySide(ctx context.Context, platform entity.Platform, identity entity.Identity) (*entity.Link, error) {
	if platform == entity.PlatformPC {
		return s.linkRepo.FindByPCID(ctx, identity.ID)
	}

	return s.linkRepo.FindByConsoleID(ctx, identity.ID)
}

// publishEvent sends a link lifecycle event, best-effort. The link state is
// already committed; a failed publish is logged and dropped.
func (s *linkService) publishEvent(ctx context.Context, event *service.LinkEvent) {
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishLinkEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("failed to publish link event",
			slog.String("type", event.Type),
			slog.String("pc_id", event.PCID),
			slog.Any("error", err),
		)
	}
}
