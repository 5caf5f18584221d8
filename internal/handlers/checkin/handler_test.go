package checkin_test

import (
	otelMocks "dockhub/infras/otel/mocks"
	"dockhub/internal/domains/checkin/mocks"
	"dockhub/internal/domains/checkin/model/dto"
	"dockhub/internal/handlers/checkin"
	gDto "dockhub/shared/dto"
	"dockhub/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const validCheckIn = `{
	"driver_name": "Dana Reyes",
	"driver_phone": "(555) 010-2030",
	"carrier_name": "Acme Freight",
	"trailer_number": "TR-88",
	"load_type": "inbound",
	"reference_number": "PO-12345",
	"appointment_time": "0830"
}`

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockCheckInService) {
	t.Helper()

	svc := mocks.NewMockCheckInService(gomock.NewController(t))
	handler := checkin.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestCreateCheckIn(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req dto.CreateCheckInRequest) (dto.CheckInResponse, error) {
			assert.Equal(t, "PO-12345", req.ReferenceNumber)

			return dto.CheckInResponse{ID: "c-1", Status: "pending"}, nil
		})

	recorder := serve(router, http.MethodPost, "/check-ins", validCheckIn)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"pending"`)
}

func TestCreateCheckIn_ValidationError(t *testing.T) {
	router, _ := newRouter(t)

	body := strings.Replace(validCheckIn, `"0830"`, `"2461"`, 1)

	recorder := serve(router, http.MethodPost, "/check-ins", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCheckIns_PassesQuery(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), dto.Filter{Statuses: []string{"pending", "checked_in"}, DockNumber: "4"}).
		DoAndReturn(func(_ any, params gDto.QueryParams, _ dto.Filter) (dto.GetCheckInsResponse, error) {
			assert.Equal(t, 2, params.Page)

			return dto.GetCheckInsResponse{}, nil
		})

	recorder := serve(router, http.MethodGet, "/check-ins?status=pending,checked_in&dock_number=4&page=2", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestChangeStatus(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "checked out", body: `{"status":"checked_out"}`, status: http.StatusOK},
		{name: "pending is not a target", body: `{"status":"pending"}`, status: http.StatusBadRequest},
		{name: "terminal check-in", body: `{"status":"denied"}`, err: failure.Unprocessable("check-in is already checked_out"), status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			if tt.status != http.StatusBadRequest {
				svc.EXPECT().ChangeStatus(gomock.Any(), "c-1", gomock.Any()).Return(dto.ChangeStatusResponse{}, tt.err)
			}

			recorder := serve(router, http.MethodPost, "/check-ins/c-1/status", tt.body)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

func TestDeleteCheckIn_NotFound(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "missing").Return(failure.NotFound("check-in not found"))

	recorder := serve(router, http.MethodDelete, "/check-ins/missing", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
