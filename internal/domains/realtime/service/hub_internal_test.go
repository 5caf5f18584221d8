package service

import (
	"dockhub/config"
	otelMocks "dockhub/infras/otel/mocks"
	"dockhub/internal/domains/realtime/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T) *hubImpl {
	t.Helper()

	hub, ok := NewHub(nil, nil, &config.Config{}, otelMocks.NewOtel()).(*hubImpl)
	require.True(t, ok)

	return hub
}

func checkInEvent(t *testing.T, eventType model.EventType, id, status string, at time.Time) model.ChangeEvent {
	t.Helper()

	var row any
	if status != "" {
		row = map[string]string{"id": id, "status": status}
	}

	event, err := model.NewChangeEvent(model.TableCheckIns, eventType, id, "", row, at)
	require.NoError(t, err)

	return event
}

func TestApply_KeepsOnlyActiveCheckIns(t *testing.T) {
	hub := newState(t)
	at := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	assert.True(t, hub.apply(checkInEvent(t, model.EventInsert, "a", "pending", at)))
	assert.True(t, hub.apply(checkInEvent(t, model.EventInsert, "b", "checked_in", at)))
	assert.True(t, hub.apply(checkInEvent(t, model.EventUpdate, "b", "checked_out", at.Add(time.Minute))))
	assert.True(t, hub.apply(checkInEvent(t, model.EventDelete, "c", "", at)))

	assert.Len(t, hub.rows, 1)
	assert.Contains(t, hub.rows, "a")
	assert.Len(t, hub.tombstones, 2)
}

func TestApply_OtherTablesLeaveNoState(t *testing.T) {
	hub := newState(t)

	block, err := model.NewChangeEvent(model.TableDockBlocks, model.EventInsert, "12", "dock_blocked", map[string]string{"reason": "door"}, time.Now())
	require.NoError(t, err)

	assert.True(t, hub.apply(block))
	assert.Empty(t, hub.rows)
	assert.Empty(t, hub.tombstones)
}

func TestPrune_ExpiresOldTombstones(t *testing.T) {
	hub := newState(t)
	now := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	hub.apply(checkInEvent(t, model.EventDelete, "old", "", now.Add(-tombstoneTTL-time.Minute)))
	hub.apply(checkInEvent(t, model.EventDelete, "recent", "", now.Add(-time.Minute)))

	hub.prune(now)

	assert.NotContains(t, hub.tombstones, "old")
	assert.Contains(t, hub.tombstones, "recent")
}
