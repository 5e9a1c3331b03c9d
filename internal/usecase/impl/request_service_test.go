package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeClock drives the registry's notion of time in tests.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestRegistry(ttl time.Duration) (*requestService, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	return newRequestService(ttl, clock.now, discardLogger()), clock
}

func pcIdentity(name string) entity.Identity {
	return entity.Identity{ID: uuid.New(), Name: name, Platform: entity.PlatformPC}
}

func consoleIdentity(name string) entity.Identity {
	return entity.Identity{ID: uuid.New(), Name: name, Platform: entity.PlatformConsole}
}

func TestRequestService_CreateRequest_IssuesValidCode(t *testing.T) {
	registry, _ := newTestRegistry(15 * time.Minute)
	ctx := context.Background()

	request, err := registry.CreateRequest(ctx, pcIdentity("Steve"))
	require.NoError(t, err)
	require.NotNil(t, request)

	assert.GreaterOrEqual(t, request.Code, 0)
	assert.Less(t, request.Code, codeSpace)
	assert.Len(t, request.DisplayCode(), 4)
	assert.True(t, registry.HasActiveRequest(ctx, entity.Identity{ID: request.RequesterID}))
}

func TestRequestService_CreateRequest_CodesUniqueAmongValid(t *testing.T) {
	registry, _ := newTestRegistry(15 * time.Minute)
	ctx := context.Background()

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		request, err := registry.CreateRequest(ctx, pcIdentity("player"))
		require.NoError(t, err)
		assert.False(t, seen[request.Code], "code %d issued twice among valid requests", request.Code)
		seen[request.Code] = true
	}
}

func TestRequestService_CreateRequest_SupersedesPriorCode(t *testing.T) {
	registry, _ := newTestRegistry(15 * time.Minute)
	ctx := context.Background()
	requester := pcIdentity("Steve")

	first, err := registry.CreateRequest(ctx, requester)
	require.NoError(t, err)

	second, err := registry.CreateRequest(ctx, requester)
	require.NoError(t, err)

	// The first code is gone the moment the second is issued.
	_, err = registry.RedeemCode(ctx, first.Code)
	assert.ErrorIs(t, err, domainerrors.ErrLinkCodeNotFound)

	redeemed, err := registry.RedeemCode(ctx, second.Code)
	require.NoError(t, err)
	assert.Equal(t, requester.ID, redeemed.RequesterID)
}

func TestRequestService_CreateRequest_UnknownPlatform(t *testing.T) {
	registry, _ := newTestRegistry(15 * time.Minute)

	_, err := registry.CreateRequest(context.Background(), entity.Identity{ID: uuid.New(), Platform: "toaster"})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownPlatform)
}

func TestRequestService_RedeemCode_ExactlyOnce(t *testing.T) {
	registry, _ := newTestRegistry(15 * time.Minute)
	ctx := context.Background()
	requester := consoleIdentity("Alex")

	request, err := registry.CreateRequest(ctx, requester)
	require.NoError(t, err)

	redeemed, err := registry.RedeemCode(ctx, request.Code)
	require.NoError(t, err)
	assert.Equal(t, requester.ID, redeemed.RequesterID)
	assert.Equal(t, requester.Name, redeemed.RequesterName)

	// The second redemption of the same code fails like any unknown code.
	_, err = registry.RedeemCode(ctx, request.Code)
	assert.ErrorIs(t, err, domainerrors.ErrLinkCodeNotFound)
	assert.False(t, registry.HasActiveRequest(ctx, requester))
}

func TestRequestService_RedeemCode_OutOfRange(t *testing.T) {
	registry, _ := newTestRegistry(15 * time.Minute)
	ctx := context.Background()

	_, err := registry.RedeemCode(ctx, -1)
	assert.ErrorIs(t, err, domainerrors.ErrLinkCodeOutOfRange)

	_, err = registry.RedeemCode(ctx, codeSpace)
	assert.ErrorIs(t, err, domainerrors.ErrLinkCodeOutOfRange)
}

func TestRequestService_RedeemCode_TTLBoundary(t *testing.T) {
	ttl := 15 * time.Minute

	t.Run("just before expiry redeems", func(t *testing.T) {
		registry, clock := newTestRegistry(ttl)
		ctx := context.Background()

		request, err := registry.CreateRequest(ctx, pcIdentity("Steve"))
		require.NoError(t, err)

		clock.advance(ttl - time.Millisecond)

		redeemed, err := registry.RedeemCode(ctx, request.Code)
		require.NoError(t, err)
		assert.Equal(t, request.Code, redeemed.Code)
	})

	t.Run("at expiry does not redeem", func(t *testing.T) {
		registry, clock := newTestRegistry(ttl)
		ctx := context.Background()

		request, err := registry.CreateRequest(ctx, pcIdentity("Steve"))
		require.NoError(t, err)

		clock.advance(ttl)

		_, err = registry.RedeemCode(ctx, request.Code)
		assert.ErrorIs(t, err, domainerrors.ErrLinkCodeNotFound)
	})
}

func TestRequestService_CancelRequest(t *testing.T) {
	registry, _ := newTestRegistry(15 * time.Minute)
	ctx := context.Background()
	requester := pcIdentity("Steve")

	assert.False(t, registry.CancelRequest(ctx, requester))

	request, err := registry.CreateRequest(ctx, requester)
	require.NoError(t, err)

	assert.True(t, registry.CancelRequest(ctx, requester))
	assert.False(t, registry.HasActiveRequest(ctx, requester))

	_, err = registry.RedeemCode(ctx, request.Code)
	assert.ErrorIs(t, err, domainerrors.ErrLinkCodeNotFound)
}

func TestRequestService_HasActiveRequest_ExpiredIsAbsent(t *testing.T) {
	registry, clock := newTestRegistry(time.Minute)
	ctx := context.Background()
	requester := consoleIdentity("Alex")

	_, err := registry.CreateRequest(ctx, requester)
	require.NoError(t, err)
	assert.True(t, registry.HasActiveRequest(ctx, requester))

	clock.advance(2 * time.Minute)
	assert.False(t, registry.HasActiveRequest(ctx, requester))
}

func TestRequestService_SweepExpired_RemovesOnlyExpired(t *testing.T) {
	registry, clock := newTestRegistry(time.Minute)
	ctx := context.Background()

	early := pcIdentity("early")
	_, err := registry.CreateRequest(ctx, early)
	require.NoError(t, err)

	clock.advance(45 * time.Second)

	late := consoleIdentity("late")
	lateRequest, err := registry.CreateRequest(ctx, late)
	require.NoError(t, err)

	clock.advance(30 * time.Second)

	removed := registry.SweepExpired(ctx)
	require.Len(t, removed, 1)
	assert.Equal(t, early.ID, removed[0].RequesterID)

	// The younger request is untouched and still redeemable.
	assert.True(t, registry.HasActiveRequest(ctx, late))
	_, err = registry.RedeemCode(ctx, lateRequest.Code)
	assert.NoError(t, err)

	// A second sweep finds nothing.
	assert.Empty(t, registry.SweepExpired(ctx))
}

func TestRequestService_IssueCode_ReclaimsExpiredHolders(t *testing.T) {
	registry, clock := newTestRegistry(time.Minute)
	ctx := context.Background()

	// Occupy the entire code space, then let every holder expire. If the
	// generator did not evict expired holders, the next create would spin
	// forever; instead it must succeed on the first probe.
	for code := 0; code < codeSpace; code++ {
		id := uuid.New()
		registry.byCode[code] = &entity.LinkRequest{
			Code:        code,
			ExpiresAt:   clock.now().Add(time.Minute),
			RequesterID: id,
		}
		registry.byIdentity[id] = code
	}

	clock.advance(2 * time.Minute)

	request, err := registry.CreateRequest(ctx, pcIdentity("Steve"))
	require.NoError(t, err)

	// The evicted holder is fully gone from both indexes.
	holder, stillThere := registry.byCode[request.Code]
	require.True(t, stillThere)
	assert.Equal(t, request.RequesterID, holder.RequesterID)
	assert.Equal(t, request.Code, registry.byIdentity[request.RequesterID])
}
