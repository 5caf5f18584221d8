package service_test

import (
	"context"
	"dockhub/config"
	otelMocks "dockhub/infras/otel/mocks"
	"dockhub/internal/domains/checkin/mocks"
	"dockhub/internal/domains/checkin/model"
	"dockhub/internal/domains/checkin/model/dto"
	"dockhub/internal/domains/checkin/service"
	dockMocks "dockhub/internal/domains/dock/mocks"
	dockDto "dockhub/internal/domains/dock/model/dto"
	notificationMocks "dockhub/internal/domains/notification/mocks"
	notificationModel "dockhub/internal/domains/notification/model"
	notificationDto "dockhub/internal/domains/notification/model/dto"
	realtimeMocks "dockhub/internal/domains/realtime/mocks"
	cacheMocks "dockhub/shared/cache/mocks"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	"dockhub/shared/failure"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	svc          service.CheckIn
	repo         *mocks.MockCheckIn
	dock         *dockMocks.MockDock
	notification *notificationMocks.MockNotification
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:         mocks.NewMockCheckIn(ctrl),
		dock:         dockMocks.NewMockDock(ctrl),
		notification: notificationMocks.NewMockNotification(ctrl),
	}

	publisher := realtimeMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.dock, f.notification, publisher, &config.Config{}, redisCache, otelMocks.NewOtel())

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "csr-1")
}

func pending() model.CheckIn {
	email := "dale@carrier.test"

	return model.CheckIn{
		ID:              "c1",
		DriverName:      "Dale",
		DriverPhone:     "5551234567",
		DriverEmail:     &email,
		CarrierName:     "ACME",
		ReferenceNumber: "SO-1001",
		Status:          model.StatusPending,
		CheckInTime:     time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC),
	}
}

func withStatus(checkIn model.CheckIn, status model.Status, dock string) model.CheckIn {
	checkIn.Status = status
	if dock != "" {
		checkIn.DockNumber = &dock
	}

	return checkIn
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, checkIn model.CheckIn) error {
		assert.Equal(t, model.StatusPending, checkIn.Status)
		assert.Equal(t, constant.ContextGuest, checkIn.CreatedBy)
		assert.Equal(t, "5551234567", checkIn.DriverPhone)

		return nil
	})
	f.notification.EXPECT().DispatchAsync(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n notificationModel.Notification) {
		assert.Equal(t, notificationModel.TypeCheckIn, n.Type)
		assert.Equal(t, "dale@carrier.test", n.Destination)
	})

	res, err := f.svc.Create(context.Background(), dto.CreateCheckInRequest{
		DriverName:      "Dale",
		DriverPhone:     "(555) 123-4567",
		DriverEmail:     "dale@carrier.test",
		CarrierName:     "ACME",
		TrailerNumber:   "TR-9",
		LoadType:        model.LoadTypeInbound,
		ReferenceNumber: "so-1001",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", res.Status)
	assert.Equal(t, "SO-1001", res.ReferenceNumber)
	assert.NotEmpty(t, res.ID)
}

func TestCreate_WithoutEmail(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Create(context.Background(), dto.CreateCheckInRequest{
		DriverName: "Dale", DriverPhone: "5551234567", CarrierName: "ACME",
		TrailerNumber: "TR-9", LoadType: model.LoadTypeOutbound, ReferenceNumber: "PO-77",
	})

	require.NoError(t, err)
}

func TestGetAll(t *testing.T) {
	f := newFixture(t)

	f.dock.EXPECT().Normalize("07").Return("7", nil)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.CheckIn, error) {
			assert.Equal(t, model.FieldCheckInTime, params.SortBy)

			_, args := filter.GetWhereClause()
			assert.Equal(t, "7", args[model.FieldDockNumber])

			return []model.CheckIn{withStatus(pending(), model.StatusCheckedIn, "7")}, nil
		})

	res, err := f.svc.GetAll(userContext(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "id; DROP TABLE"}, dto.Filter{DockNumber: "07"})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.CheckIns, 1)
}

func TestGetAll_InvalidFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetAll(userContext(), gDto.QueryParams{}, dto.Filter{Statuses: []string{"parked"}})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CheckIn{}, nil)

	_, err := f.svc.Get(userContext(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending(), nil).Times(2)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "late, called ahead", mod[model.FieldNotes])
			assert.Equal(t, "csr-1", mod[constant.FieldModifiedBy])
			assert.NotContains(t, mod, model.FieldDriverName)

			return nil
		})

	_, err := f.svc.Update(userContext(), dto.UpdateCheckInRequest{Notes: "late, called ahead"}, "c1")
	require.NoError(t, err)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, f.svc.Delete(userContext(), "c1"))

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	err := f.svc.Delete(userContext(), "c2")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestAssignDock(t *testing.T) {
	f := newFixture(t)
	record := pending()

	f.dock.EXPECT().Normalize("5").Return("5", nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(record, nil)
	f.dock.EXPECT().CheckAssignment(gomock.Any(), "5", "c1").Return(dockDto.AssignmentCheck{
		DockNumber: "5",
		OccupiedBy: []string{"c0"},
		Warnings:   []string{"dock 5 is already in use by Globex (SO-9)"},
	}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "5", mod[model.FieldDockNumber])
			assert.Equal(t, string(model.StatusCheckedIn), mod[model.FieldStatus])
			assert.Contains(t, mod, model.FieldStartTime)

			return nil
		})
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withStatus(record, model.StatusCheckedIn, "5"), nil)
	f.notification.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notificationModel.Notification) (notificationDto.DispatchResponse, error) {
			assert.Equal(t, notificationModel.TypeDockAssignment, n.Type)
			assert.Equal(t, "5", n.Payload[notificationModel.PayloadDockNumber])

			if n.Channel == notificationModel.ChannelEmail {
				return notificationDto.DispatchResponse{}, failure.InternalError(errors.New("provider down"))
			}

			return notificationDto.DispatchResponse{Channel: "sms", MessageID: "SM1"}, nil
		}).Times(2)

	res, err := f.svc.AssignDock(userContext(), "c1", dto.AssignDockRequest{DockNumber: "5"})

	require.NoError(t, err)
	assert.Equal(t, "checked_in", res.CheckIn.Status)
	assert.Equal(t, []string{"dock 5 is already in use by Globex (SO-9)", "email notification failed"}, res.Warnings)
}

func TestAssignDock_Reassign(t *testing.T) {
	f := newFixture(t)
	started := time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC)
	record := withStatus(pending(), model.StatusCheckedIn, "4")
	record.StartTime = &started
	notify := false

	f.dock.EXPECT().Normalize("6").Return("6", nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(record, nil)
	f.dock.EXPECT().CheckAssignment(gomock.Any(), "6", "c1").Return(dockDto.AssignmentCheck{Warnings: []string{}}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) error {
			assert.NotContains(t, mod, model.FieldStartTime)

			return nil
		})
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withStatus(record, model.StatusCheckedIn, "6"), nil)

	res, err := f.svc.AssignDock(userContext(), "c1", dto.AssignDockRequest{DockNumber: "6", Notify: &notify})

	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
}

func TestAssignDock_Rejected(t *testing.T) {
	t.Run("invalid dock", func(t *testing.T) {
		f := newFixture(t)

		f.dock.EXPECT().Normalize("99").Return("", failure.InvalidDockError)

		_, err := f.svc.AssignDock(userContext(), "c1", dto.AssignDockRequest{DockNumber: "99"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("terminal record", func(t *testing.T) {
		f := newFixture(t)

		f.dock.EXPECT().Normalize("5").Return("5", nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withStatus(pending(), model.StatusCheckedOut, "5"), nil)

		_, err := f.svc.AssignDock(userContext(), "c1", dto.AssignDockRequest{DockNumber: "5"})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("availability lookup fails", func(t *testing.T) {
		f := newFixture(t)
		lookupErr := errors.New("pq: connection refused")

		f.dock.EXPECT().Normalize("5").Return("5", nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending(), nil)
		f.dock.EXPECT().CheckAssignment(gomock.Any(), "5", "c1").Return(dockDto.AssignmentCheck{}, lookupErr)

		res, err := f.svc.AssignDock(userContext(), "c1", dto.AssignDockRequest{DockNumber: "5"})

		require.ErrorIs(t, err, lookupErr)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Empty(t, res.Warnings)
	})
}

func TestChangeStatus_CheckOut(t *testing.T) {
	f := newFixture(t)
	record := withStatus(pending(), model.StatusCheckedIn, "5")
	record.DriverEmail = nil

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(record, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, string(model.StatusCheckedOut), mod[model.FieldStatus])
			assert.Contains(t, mod, model.FieldEndTime)
			assert.Contains(t, mod, model.FieldCheckOutTime)

			return nil
		})
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withStatus(record, model.StatusCheckedOut, ""), nil)
	f.notification.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notificationModel.Notification) (notificationDto.DispatchResponse, error) {
			assert.Equal(t, notificationModel.TypeStatusChange, n.Type)
			assert.Equal(t, "checked_out", n.Payload[notificationModel.PayloadStatus])

			return notificationDto.DispatchResponse{}, nil
		})

	res, err := f.svc.ChangeStatus(userContext(), "c1", dto.ChangeStatusRequest{Status: "checked_out"})

	require.NoError(t, err)
	assert.Equal(t, "checked_out", res.CheckIn.Status)
	assert.Empty(t, res.Warnings)
}

func TestChangeStatus_InvalidTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   model.Status
		target string
	}{
		{name: "pending cannot check out", from: model.StatusPending, target: "checked_out"},
		{name: "terminal stays terminal", from: model.StatusRejected, target: "driver_left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withStatus(pending(), tt.from, ""), nil)

			_, err := f.svc.ChangeStatus(userContext(), "c1", dto.ChangeStatusRequest{Status: tt.target})
			assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		})
	}
}
