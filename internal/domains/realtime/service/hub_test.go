package service_test

import (
	"context"
	"dockhub/config"
	"dockhub/infras/kafka"
	kafkaMocks "dockhub/infras/kafka/mocks"
	otelMocks "dockhub/infras/otel/mocks"
	checkInMocks "dockhub/internal/domains/checkin/mocks"
	checkInModel "dockhub/internal/domains/checkin/model"
	"dockhub/internal/domains/realtime/model"
	"dockhub/internal/domains/realtime/service"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type hubFixture struct {
	hub     service.Hub
	handler kafka.Handler
	cancel  context.CancelFunc
	stopped chan struct{}
}

func startHub(t *testing.T, seeded []checkInModel.CheckIn) *hubFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	checkInRepo := checkInMocks.NewMockCheckIn(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "dockhub"
	cfg.Kafka.Topics.ChangeFeed = "dockhub.changes"

	handlers := make(chan kafka.Handler, 1)

	checkInRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(seeded, nil)
	kafkaClient.EXPECT().
		Consume(gomock.Any(), gomock.Any(), "dockhub.changes", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, handler kafka.Handler) error {
			handlers <- handler
			<-ctx.Done()

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	hub := service.NewHub(kafkaClient, checkInRepo, cfg, otelMocks.NewOtel())
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		assert.NoError(t, hub.Run(ctx))
	}()

	fixture := &hubFixture{hub: hub, cancel: cancel, stopped: stopped}

	select {
	case fixture.handler = <-handlers:
	case <-time.After(time.Second):
		t.Fatal("consumer was not started")
	}

	t.Cleanup(func() {
		cancel()
		<-stopped
	})

	return fixture
}

func (f *hubFixture) deliver(t *testing.T, event model.ChangeEvent) {
	t.Helper()

	msg, err := (&kafka.Message{Key: event.ID, Value: event}).ToKafkaMessage()
	require.NoError(t, err)
	require.NoError(t, f.handler(context.Background(), msg))
}

func receive(t *testing.T, sub *service.Subscription) model.ChangeEvent {
	t.Helper()

	select {
	case event, ok := <-sub.Events:
		require.True(t, ok, "subscription closed")

		return event
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}

	return model.ChangeEvent{}
}

func event(t *testing.T, eventType model.EventType, id, status string, at time.Time) model.ChangeEvent {
	t.Helper()

	var row any
	if eventType != model.EventDelete {
		row = map[string]string{"id": id, "status": status}
	}

	ev, err := model.NewChangeEvent(model.TableCheckIns, eventType, id, "", row, at)
	require.NoError(t, err)

	return ev
}

func rowStatus(t *testing.T, ev model.ChangeEvent) string {
	t.Helper()

	var row map[string]any
	require.NoError(t, json.Unmarshal(ev.Row, &row))

	status, _ := row["status"].(string)

	return status
}

func TestHub_SnapshotFirstThenLiveEvents(t *testing.T) {
	seededAt := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	fixture := startHub(t, []checkInModel.CheckIn{
		{ID: "ci-1", Status: checkInModel.StatusPending, CheckInTime: seededAt},
	})

	sub, err := fixture.hub.Subscribe(context.Background(), model.Filter{Table: model.TableCheckIns, Event: model.EventAll})
	require.NoError(t, err)

	first := receive(t, sub)
	assert.Equal(t, "ci-1", first.ID)
	assert.Equal(t, "pending", rowStatus(t, first))

	fixture.deliver(t, event(t, model.EventUpdate, "ci-1", "checked_in", seededAt.Add(time.Minute)))

	live := receive(t, sub)
	assert.Equal(t, model.EventUpdate, live.Type)
	assert.Equal(t, "checked_in", rowStatus(t, live))
}

func TestHub_StaleEventsAreIgnored(t *testing.T) {
	fixture := startHub(t, nil)
	base := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	sub, err := fixture.hub.Subscribe(context.Background(), model.Filter{Table: model.TableCheckIns})
	require.NoError(t, err)

	fixture.deliver(t, event(t, model.EventInsert, "ci-2", "checked_in", base.Add(2*time.Minute)))
	fixture.deliver(t, event(t, model.EventUpdate, "ci-2", "pending", base))
	fixture.deliver(t, event(t, model.EventUpdate, "ci-2", "checked_out", base.Add(3*time.Minute)))

	assert.Equal(t, "checked_in", rowStatus(t, receive(t, sub)))
	assert.Equal(t, "checked_out", rowStatus(t, receive(t, sub)))

	snapshot, err := fixture.hub.Snapshot(context.Background(), model.Filter{Table: model.TableCheckIns})
	require.NoError(t, err)
	assert.Empty(t, snapshot, "checked out visits leave the snapshot")
}

func TestHub_TerminalCheckInIsNotResurrected(t *testing.T) {
	fixture := startHub(t, nil)
	base := time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC)

	fixture.deliver(t, event(t, model.EventInsert, "ci-5", "pending", base))
	fixture.deliver(t, event(t, model.EventUpdate, "ci-5", "turned_away", base.Add(time.Minute)))
	fixture.deliver(t, event(t, model.EventUpdate, "ci-5", "checked_in", base.Add(30*time.Second)))

	snapshot, err := fixture.hub.Snapshot(context.Background(), model.Filter{})
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestHub_OtherTablesAreRelayedOnly(t *testing.T) {
	fixture := startHub(t, nil)
	now := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	sub, err := fixture.hub.Subscribe(context.Background(), model.Filter{Table: model.TableDockStates})
	require.NoError(t, err)

	claimed, err := model.NewChangeEvent(model.TableDockStates, model.EventUpdate, "7", "dock_claimed", map[string]string{"status": "assigned"}, now)
	require.NoError(t, err)
	fixture.deliver(t, claimed)

	assert.Equal(t, "7", receive(t, sub).ID)

	snapshot, err := fixture.hub.Snapshot(context.Background(), model.Filter{Table: model.TableDockStates})
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestHub_DeleteRemovesRowAndBlocksResurrection(t *testing.T) {
	fixture := startHub(t, nil)
	base := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	deletes, err := fixture.hub.Subscribe(context.Background(), model.Filter{Table: model.TableCheckIns, Event: model.EventDelete})
	require.NoError(t, err)

	fixture.deliver(t, event(t, model.EventInsert, "ci-3", "pending", base))
	fixture.deliver(t, event(t, model.EventDelete, "ci-3", "", base.Add(time.Minute)))
	fixture.deliver(t, event(t, model.EventUpdate, "ci-3", "checked_in", base.Add(30*time.Second)))

	deleted := receive(t, deletes)
	assert.Equal(t, model.EventDelete, deleted.Type)
	assert.Equal(t, "ci-3", deleted.ID)

	snapshot, err := fixture.hub.Snapshot(context.Background(), model.Filter{Table: model.TableCheckIns})
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestHub_FilterByTable(t *testing.T) {
	fixture := startHub(t, nil)
	now := time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC)

	sub, err := fixture.hub.Subscribe(context.Background(), model.Filter{Table: model.TableDockBlocks})
	require.NoError(t, err)

	fixture.deliver(t, event(t, model.EventInsert, "ci-4", "pending", now))

	block, err := model.NewChangeEvent(model.TableDockBlocks, model.EventInsert, "12", "dock_blocked", map[string]string{"reason": "door broken"}, now)
	require.NoError(t, err)
	fixture.deliver(t, block)

	received := receive(t, sub)
	assert.Equal(t, model.TableDockBlocks, received.Table)
	assert.Equal(t, "12", received.ID)
}

func TestHub_MalformedMessageIsAcknowledged(t *testing.T) {
	fixture := startHub(t, nil)

	msg, err := (&kafka.Message{Key: "x", Value: "not an event"}).ToKafkaMessage()
	require.NoError(t, err)

	assert.NoError(t, fixture.handler(context.Background(), msg))
}

func TestHub_StopClosesSubscriptions(t *testing.T) {
	fixture := startHub(t, nil)

	sub, err := fixture.hub.Subscribe(context.Background(), model.Filter{})
	require.NoError(t, err)

	fixture.cancel()
	<-fixture.stopped

	_, ok := <-sub.Events
	assert.False(t, ok)

	_, err = fixture.hub.Subscribe(context.Background(), model.Filter{})
	assert.ErrorIs(t, err, service.ErrHubStopped)
}

func TestFilter_Matches(t *testing.T) {
	update := model.ChangeEvent{Table: model.TableCheckIns, Type: model.EventUpdate}

	assert.True(t, model.Filter{}.Matches(update))
	assert.True(t, model.Filter{Table: "*", Event: "*"}.Matches(update))
	assert.True(t, model.Filter{Table: model.TableCheckIns, Event: model.EventUpdate}.Matches(update))
	assert.False(t, model.Filter{Table: model.TableAppointments}.Matches(update))
	assert.False(t, model.Filter{Event: model.EventInsert}.Matches(update))
}
