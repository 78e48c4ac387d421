package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/storenamer/internal/eventbus"
	"github.com/Rorical/storenamer/internal/models"
)

func TestListenForUIEventsDeliversCoreEvent(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	require.NoError(t, eb.SendToUI(eventbus.StateUpdateEvent{Snapshot: models.Snapshot{Phase: models.Success}}))

	msg := ed.ListenForUIEvents()()
	coreMsg, ok := msg.(CoreEventMsg)
	require.True(t, ok)
	assert.Equal(t, models.Success, coreMsg.Event.(eventbus.StateUpdateEvent).Snapshot.Phase)
}

func TestListenForUIEventsStops(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)

	ed.Stop()
	assert.Nil(t, ed.ListenForUIEvents()())
}

func TestListenForUIEventsClosedBus(t *testing.T) {
	eb := eventbus.NewEventBus()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	eb.Close()
	assert.Nil(t, ed.ListenForUIEvents()())
}
