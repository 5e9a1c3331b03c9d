package presence

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_ConnectAndReachability(t *testing.T) {
	hub := newTestHub()
	identity := entity.Identity{ID: uuid.New(), Name: "Steve", Platform: entity.PlatformPC}

	assert.False(t, hub.IsReachable(identity.ID))

	hub.Connect(identity)
	assert.True(t, hub.IsReachable(identity.ID))

	connected, ok := hub.Connected(identity.ID)
	require.True(t, ok)
	assert.Equal(t, identity, connected)
}

func TestHub_ClassifySurvivesDisconnect(t *testing.T) {
	hub := newTestHub()
	identity := entity.Identity{ID: uuid.New(), Name: "Alex", Platform: entity.PlatformConsole}

	hub.Connect(identity)
	hub.Disconnect(context.Background(), identity.ID, "test")

	assert.False(t, hub.IsReachable(identity.ID))

	platform, err := hub.Classify(identity.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlatformConsole, platform)

	name, err := hub.NameOf(context.Background(), identity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", name)
}

func TestHub_ClassifyUnknownIdentity(t *testing.T) {
	hub := newTestHub()

	_, err := hub.Classify(uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnknownPlatform)
}

func TestHub_NotifyAndDrain(t *testing.T) {
	hub := newTestHub()
	identity := entity.Identity{ID: uuid.New(), Name: "Steve", Platform: entity.PlatformPC}
	hub.Connect(identity)

	hub.Notify(context.Background(), identity.ID, "first")
	hub.Notify(context.Background(), identity.ID, "second")

	msgs := hub.DrainMessages(identity.ID)
	assert.Equal(t, []string{"first", "second"}, msgs)
	assert.Nil(t, hub.DrainMessages(identity.ID))
}

func TestHub_NotifyUnreachableIsNoop(t *testing.T) {
	hub := newTestHub()

	hub.Notify(context.Background(), uuid.New(), "lost")
	// Nothing to assert beyond the absence of a panic; the message is dropped.
}

func TestHub_InboxBounded(t *testing.T) {
	hub := newTestHub()
	identity := entity.Identity{ID: uuid.New(), Name: "Steve", Platform: entity.PlatformPC}
	hub.Connect(identity)

	for i := 0; i < inboxLimit+5; i++ {
		hub.Notify(context.Background(), identity.ID, fmt.Sprintf("msg-%d", i))
	}

	msgs := hub.DrainMessages(identity.ID)
	require.Len(t, msgs, inboxLimit)
	assert.Equal(t, fmt.Sprintf("msg-%d", 5), msgs[0])
}
