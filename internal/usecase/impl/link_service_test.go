package impl

import (
	"context"
	"testing"
	"time"

	"crosslink/internal/async"
	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"
	"crosslink/internal/domain/repository"
	"crosslink/internal/domain/service"
	mockRepo "crosslink/internal/mocks/repository"
	mockSvc "crosslink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T) *async.Pool {
	t.Helper()
	pool := async.NewPool(2, 8, discardLogger())
	t.Cleanup(pool.Close)

	return pool
}

func awaitBool(t *testing.T, ch <-chan async.Result[bool]) (bool, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return async.Await(ctx, ch)
}

func TestLinkService_FinalizeLink_SamePlatformNeverTouchesStore(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewLinkService(linkRepo, classifier, publisher, newTestPool(t), discardLogger())

	requester := pcIdentity("Steve")
	redeemer := pcIdentity("Herobrine")
	request := &entity.LinkRequest{Code: 1234, RequesterID: requester.ID, RequesterName: requester.Name}

	classifier.EXPECT().Classify(requester.ID).Return(entity.PlatformPC, nil)
	classifier.EXPECT().Classify(redeemer.ID).Return(entity.PlatformPC, nil)

	// No expectations on the repository or publisher: any call fails the test.
	ch, err := svc.FinalizeLink(context.Background(), request, redeemer)
	assert.ErrorIs(t, err, domainerrors.ErrSamePlatform)
	assert.Nil(t, ch)
}

func TestLinkService_FinalizeLink_RequesterOnPC(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewLinkService(linkRepo, classifier, publisher, newTestPool(t), discardLogger())

	requester := pcIdentity("Steve")
	redeemer := consoleIdentity("Alex")
	request := &entity.LinkRequest{Code: 42, RequesterID: requester.ID, RequesterName: requester.Name}

	classifier.EXPECT().Classify(requester.ID).Return(entity.PlatformPC, nil)
	classifier.EXPECT().Classify(redeemer.ID).Return(entity.PlatformConsole, nil)

	var written *entity.Link
	linkRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Link")).
		Run(func(_ context.Context, link *entity.Link) { written = link }).
		Return(true, nil)

	var published *service.LinkEvent
	publisher.EXPECT().
		PublishLinkEvent(mock.Anything, mock.AnythingOfType("*service.LinkEvent")).
		Run(func(_ context.Context, event *service.LinkEvent) { published = event }).
		Return(nil)

	ch, err := svc.FinalizeLink(context.Background(), request, redeemer)
	require.NoError(t, err)

	ok, err := awaitBool(t, ch)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NotNil(t, written)
	assert.Equal(t, requester.ID, written.PCID)
	assert.Equal(t, "Steve", written.PCName)
	assert.Equal(t, redeemer.ID, written.ConsoleID)

	require.NotNil(t, published)
	assert.Equal(t, service.LinkEventCompleted, published.Type)
	assert.Equal(t, requester.ID.String(), published.PCID)
	assert.Equal(t, redeemer.ID.String(), published.InitiatedBy)
}

func TestLinkService_FinalizeLink_RedeemerOnPC(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewLinkService(linkRepo, classifier, publisher, newTestPool(t), discardLogger())

	requester := consoleIdentity("Alex")
	redeemer := pcIdentity("Steve")
	request := &entity.LinkRequest{Code: 7, RequesterID: requester.ID, RequesterName: requester.Name}

	classifier.EXPECT().Classify(requester.ID).Return(entity.PlatformConsole, nil)
	classifier.EXPECT().Classify(redeemer.ID).Return(entity.PlatformPC, nil)

	var written *entity.Link
	linkRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Link")).
		Run(func(_ context.Context, link *entity.Link) { written = link }).
		Return(true, nil)

	publisher.EXPECT().
		PublishLinkEvent(mock.Anything, mock.AnythingOfType("*service.LinkEvent")).
		Return(nil)

	ch, err := svc.FinalizeLink(context.Background(), request, redeemer)
	require.NoError(t, err)

	ok, err := awaitBool(t, ch)
	require.NoError(t, err)
	assert.True(t, ok)

	// The PC identity lands on the PC side even though it redeemed the code.
	require.NotNil(t, written)
	assert.Equal(t, redeemer.ID, written.PCID)
	assert.Equal(t, "Steve", written.PCName)
	assert.Equal(t, requester.ID, written.ConsoleID)
}

func TestLinkService_FinalizeLink_StoreErrorThroughChannel(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewLinkService(linkRepo, classifier, publisher, newTestPool(t), discardLogger())

	requester := pcIdentity("Steve")
	redeemer := consoleIdentity("Alex")
	request := &entity.LinkRequest{Code: 9, RequesterID: requester.ID, RequesterName: requester.Name}

	classifier.EXPECT().Classify(requester.ID).Return(entity.PlatformPC, nil)
	classifier.EXPECT().Classify(redeemer.ID).Return(entity.PlatformConsole, nil)

	cause := errors.New("connection refused")
	linkRepo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Link")).
		Return(false, cause)

	ch, err := svc.FinalizeLink(context.Background(), request, redeemer)
	require.NoError(t, err)

	ok, err := awaitBool(t, ch)
	assert.False(t, ok)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
}

func TestLinkService_FinalizeLink_UnknownRequester(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewLinkService(linkRepo, classifier, publisher, newTestPool(t), discardLogger())

	requester := pcIdentity("ghost")
	redeemer := consoleIdentity("Alex")
	request := &entity.LinkRequest{Code: 3, RequesterID: requester.ID, RequesterName: requester.Name}

	classifier.EXPECT().Classify(requester.ID).Return(entity.Platform(""), domainerrors.ErrUnknownPlatform)

	ch, err := svc.FinalizeLink(context.Background(), request, redeemer)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownPlatform)
	assert.Nil(t, ch)
}

func TestLinkService_Unlink_RemovesExistingLink(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewLinkService(linkRepo, classifier, publisher, newTestPool(t), discardLogger())

	console := consoleIdentity("Alex")
	link := &entity.Link{PCID: uuid.New(), PCName: "Steve", ConsoleID: console.ID}

	classifier.EXPECT().Classify(console.ID).Return(entity.PlatformConsole, nil)
	linkRepo.EXPECT().FindByConsoleID(mock.Anything, console.ID).Return(link, nil)
	linkRepo.EXPECT().DeleteByConsoleID(mock.Anything, console.ID).Return(true, nil)

	var published *service.LinkEvent
	publisher.EXPECT().
		PublishLinkEvent(mock.Anything, mock.AnythingOfType("*service.LinkEvent")).
		Run(func(_ context.Context, event *service.LinkEvent) { published = event }).
		Return(nil)

	ch, err := svc.Unlink(context.Background(), console)
	require.NoError(t, err)

	existed, err := awaitBool(t, ch)
	require.NoError(t, err)
	assert.True(t, existed)

	require.NotNil(t, published)
	assert.Equal(t, service.LinkEventRemoved, published.Type)
	assert.Equal(t, link.PCID.String(), published.PCID)
	assert.Equal(t, console.ID.String(), published.InitiatedBy)
}

func TestLinkService_Unlink_NotLinked(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewLinkService(linkRepo, classifier, publisher, newTestPool(t), discardLogger())

	pc := pcIdentity("Steve")

	classifier.EXPECT().Classify(pc.ID).Return(entity.PlatformPC, nil)
	linkRepo.EXPECT().FindByPCID(mock.Anything, pc.ID).Return(nil, repository.ErrLinkNotFound)

	ch, err := svc.Unlink(context.Background(), pc)
	require.NoError(t, err)

	existed, err := awaitBool(t, ch)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestLinkService_Unlink_ClassifierFallsBackToIdentityPlatform(t *testing.T) {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	classifier := mockSvc.NewMockPlatformClassifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewLinkService(linkRepo, classifier, publisher, newTestPool(t), discardLogger())

	pc := pcIdentity("Steve")

	classifier.EXPECT().Classify(pc.ID).Return(entity.Platform(""), domainerrors.ErrUnknownPlatform)
	linkRepo.EXPECT().FindByPCID(mock.Anything, pc.ID).Return(nil, repository.ErrLinkNotFound)

	ch, err := svc.Unlink(context.Background(), pc)
	require.NoError(t, err)

	existed, err := awaitBool(t, ch)
	require.NoError(t, err)
	assert.False(t, existed)
}
