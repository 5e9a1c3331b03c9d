package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crosslink/config"
	"crosslink/internal/async"
	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"
	mockRepo "crosslink/internal/mocks/repository"
	mockSvc "crosslink/internal/mocks/service"
	"crosslink/internal/usecase"
	"crosslink/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequestContext(t *testing.T, method, target string, identity entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// What the auth middleware would have stored for a valid session token.
	c.Set("identity", identity)

	return c, rec
}

func newLinkTestHandler(t *testing.T) (*LinkHandler, usecase.LinkLookupUsecase, *mockRepo.MockLinkRepository, *mockSvc.MockPlatformClassifier, *mockSvc.MockPresenceService) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	cfg := &config.Config{}
	cfg.Link.TTL = 15 * time.Minute

	pool := async.NewPool(1, 4, logger)
	t.Cleanup(pool.Close)

	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	presence := mockSvc.NewMockPresenceService(t)

	lookupUC := impl.NewLookupService(linkRepo, classifier, presence, pool, logger)

	handler := &LinkHandler{
		requestUC: impl.NewRequestService(cfg, logger),
		lookupUC:  lookupUC,
		presence:  presence,
		logger:    logger,
	}

	return handler, lookupUC, linkRepo, classifier, presence
}

func TestLinkHandler_CreateRequest_RejectsLinkedCaller(t *testing.T) {
	handler, lookupUC, linkRepo, classifier, presence := newLinkTestHandler(t)

	pc := entity.Identity{ID: uuid.New(), Name: "Steve", Platform: entity.PlatformPC}
	consoleID := uuid.New()
	link := &entity.Link{PCID: pc.ID, PCName: pc.Name, ConsoleID: consoleID}

	classifier.EXPECT().Classify(pc.ID).Return(entity.PlatformPC, nil).Once()
	linkRepo.EXPECT().FindByPCID(mock.Anything, pc.ID).Return(link, nil).Once()
	presence.EXPECT().NameOf(mock.Anything, consoleID).Return("Alex", nil).Once()

	// Put the caller's link into the cache the way a prior info query would.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cached, err := async.Await(ctx, lookupUC.Lookup(ctx, pc))
	require.NoError(t, err)
	require.NotNil(t, cached)

	c, _ := newRequestContext(t, http.MethodPost, "/link/request", pc)

	err = handler.CreateRequest(c)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyLinked)
}

func TestLinkHandler_CreateRequest_IssuesCodeForUnlinkedCaller(t *testing.T) {
	handler, _, _, _, _ := newLinkTestHandler(t)

	pc := entity.Identity{ID: uuid.New(), Name: "Steve", Platform: entity.PlatformPC}

	c, rec := newRequestContext(t, http.MethodPost, "/link/request", pc)

	require.NoError(t, handler.CreateRequest(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"code"`)
	assert.Contains(t, body, `"expiresAt"`)
}
