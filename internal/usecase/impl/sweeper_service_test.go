package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	mockSvc "crosslink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweeperService_Sweep_NotifiesOnlyReachableRequesters(t *testing.T) {
	registry, clock := newTestRegistry(time.Minute)
	presence := mockSvc.NewMockPresenceService(t)
	sweeper := &sweeperService{
		requests: registry,
		presence: presence,
		interval: 30 * time.Second,
		logger:   discardLogger(),
	}

	ctx := context.Background()
	online := pcIdentity("online")
	offline := consoleIdentity("offline")

	onlineRequest, err := registry.CreateRequest(ctx, online)
	require.NoError(t, err)
	_, err = registry.CreateRequest(ctx, offline)
	require.NoError(t, err)

	clock.advance(2 * time.Minute)

	presence.EXPECT().IsReachable(online.ID).Return(true)
	presence.EXPECT().IsReachable(offline.ID).Return(false)

	var message string
	presence.EXPECT().
		Notify(mock.Anything, online.ID, mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ uuid.UUID, text string) { message = text }).
		Once()

	swept := sweeper.Sweep(ctx)
	assert.Equal(t, 2, swept)

	// The notification names the expired code so the player knows which
	// attempt died.
	assert.True(t, strings.Contains(message, onlineRequest.DisplayCode()), "message %q should contain the code", message)

	// Nothing left for the next pass.
	assert.Equal(t, 0, sweeper.Sweep(ctx))
}

func TestSweeperService_Sweep_EmptyRegistry(t *testing.T) {
	registry, _ := newTestRegistry(time.Minute)
	presence := mockSvc.NewMockPresenceService(t)
	sweeper := &sweeperService{
		requests: registry,
		presence: presence,
		interval: 30 * time.Second,
		logger:   discardLogger(),
	}

	// No presence expectations: an empty sweep must not touch the session layer.
	assert.Equal(t, 0, sweeper.Sweep(context.Background()))
}

func TestSweeperService_Run_StopsOnContextCancel(t *testing.T) {
	registry, _ := newTestRegistry(time.Minute)
	presence := mockSvc.NewMockPresenceService(t)
	sweeper := &sweeperService{
		requests: registry,
		presence: presence,
		interval: 10 * time.Millisecond,
		logger:   discardLogger(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
