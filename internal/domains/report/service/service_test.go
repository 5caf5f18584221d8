package service_test

import (
	"bytes"
	"context"
	otelMocks "dockhub/infras/otel/mocks"
	checkInMocks "dockhub/internal/domains/checkin/mocks"
	checkInModel "dockhub/internal/domains/checkin/model"
	"dockhub/internal/domains/report/model/dto"
	"dockhub/internal/domains/report/service"
	gDto "dockhub/shared/dto"
	"dockhub/shared/failure"
	"dockhub/shared/timezone"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Report, *checkInMocks.MockCheckIn) {
	t.Helper()

	timezone.SetLocation(time.UTC)

	repo := checkInMocks.NewMockCheckIn(gomock.NewController(t))

	return service.New(repo, otelMocks.NewOtel()), repo
}

func sample() []checkInModel.CheckIn {
	slot := "0800"
	checkIn := time.Date(2026, 3, 2, 7, 45, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 10, 20, 0, 0, time.UTC)
	dock := "12"

	return []checkInModel.CheckIn{{
		ID:              "c1",
		DriverName:      "Dale",
		CarrierName:     "ACME",
		ReferenceNumber: "SO-1001",
		DockNumber:      &dock,
		AppointmentTime: &slot,
		Status:          checkInModel.StatusCheckedOut,
		CheckInTime:     checkIn,
		EndTime:         &end,
	}}
}

func TestDetention(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]checkInModel.CheckIn, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), args["check_in_from"])
			assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), args["check_in_to"])

			return sample(), nil
		})

	res, err := svc.Detention(context.Background(), dto.DetentionRequest{From: "2026-03-01", To: "2026-03-02"})
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.True(t, res.Rows[0].OnTime)
	assert.Equal(t, 20, res.Rows[0].DetentionMinutes)
	assert.Equal(t, 1, res.Summary.WithDetention)
	assert.Equal(t, 20, res.Summary.DetentionMinutes)
}

func TestDetention_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		req  dto.DetentionRequest
	}{
		{name: "missing", req: dto.DetentionRequest{From: "2026-03-01"}},
		{name: "malformed", req: dto.DetentionRequest{From: "03/01/2026", To: "2026-03-02"}},
		{name: "reversed", req: dto.DetentionRequest{From: "2026-03-05", To: "2026-03-02"}},
		{name: "too long", req: dto.DetentionRequest{From: "2026-01-01", To: "2026-06-30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.Detention(context.Background(), tt.req)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestExportDetention(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(sample(), nil)

	data, err := svc.ExportDetention(context.Background(), dto.DetentionRequest{From: "2026-03-02", To: "2026-03-02"})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	defer file.Close()

	rows, err := file.GetRows("Detention")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Check-in ID", rows[0][0])
	assert.Equal(t, "c1", rows[1][0])
	assert.Equal(t, "20", rows[1][11])
}
