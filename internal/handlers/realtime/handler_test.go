package realtime_test

import (
	"dockhub/config"
	otelMocks "dockhub/infras/otel/mocks"
	"dockhub/internal/domains/realtime/mocks"
	"dockhub/internal/domains/realtime/model"
	"dockhub/internal/domains/realtime/service"
	"dockhub/internal/handlers/realtime"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockHub) {
	t.Helper()

	hub := mocks.NewMockHub(gomock.NewController(t))
	handler := realtime.New(hub, &config.Config{}, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, hub
}

func TestStream_SendsEventsUntilHubCloses(t *testing.T) {
	router, hub := newRouter(t)

	events := make(chan model.ChangeEvent, 1)
	events <- model.ChangeEvent{
		Table:      model.TableCheckIns,
		Type:       model.EventInsert,
		ID:         "c-1",
		OccurredAt: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	}
	close(events)

	sub := &service.Subscription{ID: "sub-1", Events: events}
	filter := model.Filter{Table: model.TableCheckIns, Event: model.EventAll}

	hub.EXPECT().Subscribe(gomock.Any(), filter).Return(sub, nil)
	hub.EXPECT().Unsubscribe(sub)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/realtime?table=check_ins&event=*", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/event-stream", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Body.String(), "id: c-1\n")
	assert.Contains(t, recorder.Body.String(), "event: change\n")
	assert.Contains(t, recorder.Body.String(), `"table":"check_ins"`)
}

func TestStream_HubStopped(t *testing.T) {
	router, hub := newRouter(t)

	hub.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(nil, service.ErrHubStopped)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/realtime", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestStream_RejectsUnknownFilter(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "table", target: "/realtime?table=trucks"},
		{name: "event", target: "/realtime?event=upsert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestSnapshot(t *testing.T) {
	router, hub := newRouter(t)

	hub.EXPECT().Snapshot(gomock.Any(), model.Filter{Table: model.TableAppointments}).
		Return([]model.ChangeEvent{{Table: model.TableAppointments, Type: model.EventInsert, ID: "a-1"}}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/realtime/snapshot?table=appointments", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id":"a-1"`)
}
