package impl

import (
	"context"
	"testing"
	"time"

	"crosslink/internal/async"
	"crosslink/internal/domain/entity"
	"crosslink/internal/domain/repository"
	mockRepo "crosslink/internal/mocks/repository"
	mockSvc "crosslink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func awaitLink(t *testing.T, ch <-chan async.Result[*entity.FullLink]) (*entity.FullLink, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return async.Await(ctx, ch)
}

func TestLookupService_Lookup_CoalescesConcurrentCallers(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	presence := mockSvc.NewMockPresenceService(t)
	svc := NewLookupService(linkRepo, classifier, presence, newTestPool(t), discardLogger())

	pc := pcIdentity("Steve")
	console := consoleIdentity("Alex")
	link := &entity.Link{PCID: pc.ID, PCName: pc.Name, ConsoleID: console.ID}

	classifier.EXPECT().Classify(pc.ID).Return(entity.PlatformPC, nil).Once()
	presence.EXPECT().NameOf(mock.Anything, console.ID).Return("Alex", nil).Once()

	// The store is held open until both callers have joined; Once proves the
	// second caller shared the first query instead of starting its own.
	gate := make(chan struct{})
	linkRepo.EXPECT().
		FindByPCID(mock.Anything, pc.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Link, error) {
			<-gate

			return link, nil
		}).
		Once()

	ch1 := svc.Lookup(context.Background(), pc)
	ch2 := svc.Lookup(context.Background(), pc)

	// A registered fetch is outstanding until the store answers.
	assert.False(t, svc.IsLookupComplete(pc.ID))
	close(gate)

	first, err := awaitLink(t, ch1)
	require.NoError(t, err)
	second, err := awaitLink(t, ch2)
	require.NoError(t, err)

	require.NotNil(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, pc.ID, first.PCID)
	assert.Equal(t, "Alex", first.ConsoleName)

	// Completed and cached; a third lookup is served without the store.
	assert.True(t, svc.IsLookupComplete(pc.ID))
	assert.Equal(t, first, svc.CachedLookup(pc.ID))

	third, err := awaitLink(t, svc.Lookup(context.Background(), pc))
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestLookupService_Lookup_NotLinkedIsNotCached(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	presence := mockSvc.NewMockPresenceService(t)
	svc := NewLookupService(linkRepo, classifier, presence, newTestPool(t), discardLogger())

	console := consoleIdentity("Alex")

	classifier.EXPECT().Classify(console.ID).Return(entity.PlatformConsole, nil).Times(2)
	linkRepo.EXPECT().
		FindByConsoleID(mock.Anything, console.ID).
		Return(nil, repository.ErrLinkNotFound).
		Times(2)

	result, err := awaitLink(t, svc.Lookup(context.Background(), console))
	require.NoError(t, err)
	assert.Nil(t, result)

	// The lookup finished, but only actual links enter the cache.
	assert.True(t, svc.IsLookupComplete(console.ID))
	assert.Nil(t, svc.CachedLookup(console.ID))

	// A pairing may have landed since; the next lookup asks the store again.
	again, err := awaitLink(t, svc.Lookup(context.Background(), console))
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestLookupService_Lookup_ErrorDoesNotPoisonCache(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	presence := mockSvc.NewMockPresenceService(t)
	svc := NewLookupService(linkRepo, classifier, presence, newTestPool(t), discardLogger())

	pc := pcIdentity("Steve")
	console := consoleIdentity("Alex")
	link := &entity.Link{PCID: pc.ID, PCName: pc.Name, ConsoleID: console.ID}

	classifier.EXPECT().Classify(pc.ID).Return(entity.PlatformPC, nil).Times(2)

	cause := errors.New("connection reset")
	linkRepo.EXPECT().FindByPCID(mock.Anything, pc.ID).Return(nil, cause).Once()
	linkRepo.EXPECT().FindByPCID(mock.Anything, pc.ID).Return(link, nil).Once()
	presence.EXPECT().NameOf(mock.Anything, console.ID).Return("Alex", nil).Once()

	_, err := awaitLink(t, svc.Lookup(context.Background(), pc))
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	// The errored fetch is over, so nothing is outstanding; nothing was
	// cached either, so the next lookup goes back to the store.
	assert.True(t, svc.IsLookupComplete(pc.ID))
	assert.Nil(t, svc.CachedLookup(pc.ID))

	recovered, err := awaitLink(t, svc.Lookup(context.Background(), pc))
	require.NoError(t, err)
	require.NotNil(t, recovered)
	assert.Equal(t, pc.ID, recovered.PCID)
	assert.Equal(t, recovered, svc.CachedLookup(pc.ID))
}

func TestLookupService_Invalidate_DropsCacheEntry(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	presence := mockSvc.NewMockPresenceService(t)
	svc := NewLookupService(linkRepo, classifier, presence, newTestPool(t), discardLogger())

	pc := pcIdentity("Steve")
	console := consoleIdentity("Alex")
	link := &entity.Link{PCID: pc.ID, PCName: pc.Name, ConsoleID: console.ID}

	classifier.EXPECT().Classify(pc.ID).Return(entity.PlatformPC, nil).Times(2)
	linkRepo.EXPECT().FindByPCID(mock.Anything, pc.ID).Return(link, nil).Times(2)
	presence.EXPECT().NameOf(mock.Anything, console.ID).Return("Alex", nil).Times(2)

	_, err := awaitLink(t, svc.Lookup(context.Background(), pc))
	require.NoError(t, err)
	require.NotNil(t, svc.CachedLookup(pc.ID))

	svc.Invalidate(pc.ID)
	assert.Nil(t, svc.CachedLookup(pc.ID))

	// The next lookup goes back to the store.
	refreshed, err := awaitLink(t, svc.Lookup(context.Background(), pc))
	require.NoError(t, err)
	assert.Equal(t, pc.ID, refreshed.PCID)
}

func TestLookupService_Invalidate_MidFlightFetchAnswersButDoesNotCache(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	presence := mockSvc.NewMockPresenceService(t)
	svc := NewLookupService(linkRepo, classifier, presence, newTestPool(t), discardLogger())

	pc := pcIdentity("Steve")
	console := consoleIdentity("Alex")
	link := &entity.Link{PCID: pc.ID, PCName: pc.Name, ConsoleID: console.ID}

	classifier.EXPECT().Classify(pc.ID).Return(entity.PlatformPC, nil).Once()
	presence.EXPECT().NameOf(mock.Anything, console.ID).Return("Alex", nil).Once()

	gate := make(chan struct{})
	linkRepo.EXPECT().
		FindByPCID(mock.Anything, pc.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Link, error) {
			<-gate

			return link, nil
		}).
		Once()

	ch := svc.Lookup(context.Background(), pc)
	svc.Invalidate(pc.ID)

	// Invalidation deregistered the fetch, so nothing counts as outstanding
	// even while the store call is still running.
	assert.True(t, svc.IsLookupComplete(pc.ID))
	close(gate)

	// The waiter that was already attached still gets its answer.
	result, err := awaitLink(t, ch)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, pc.ID, result.PCID)

	// But the invalidated fetch lost the right to populate the cache.
	assert.Nil(t, svc.CachedLookup(pc.ID))
}

func TestLookupService_CachedLookup_NeverFetches(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	presence := mockSvc.NewMockPresenceService(t)
	svc := NewLookupService(linkRepo, classifier, presence, newTestPool(t), discardLogger())

	// No expectations anywhere: a store or classifier call fails the test.
	// An identity nobody ever looked up has no fetch outstanding.
	assert.Nil(t, svc.CachedLookup(uuid.New()))
	assert.True(t, svc.IsLookupComplete(uuid.New()))
}
