package auth_test

import (
	otelMocks "dockhub/infras/otel/mocks"
	"dockhub/internal/domains/auth/mocks"
	"dockhub/internal/domains/auth/model/dto"
	"dockhub/internal/handlers/auth"
	"dockhub/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockAuth) {
	t.Helper()

	svc := mocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))

	return recorder
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		res    dto.LoginResponse
		err    error
		called bool
		status int
	}{
		{
			name:   "success",
			body:   `{"email":"csr@dock.test","password":"secret123"}`,
			res:    dto.LoginResponse{Tokens: dto.Tokens{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}},
			called: true,
			status: http.StatusOK,
		},
		{
			name:   "bad credentials",
			body:   `{"email":"csr@dock.test","password":"wrong-pass"}`,
			err:    failure.Unauthorized("invalid email or password"),
			called: true,
			status: http.StatusUnauthorized,
		},
		{
			name:   "deactivated",
			body:   `{"email":"csr@dock.test","password":"secret123"}`,
			err:    failure.Forbidden("profile is deactivated"),
			called: true,
			status: http.StatusForbidden,
		},
		{
			name:   "malformed email",
			body:   `{"email":"csr","password":"secret123"}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			if tt.called {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(tt.res, tt.err)
			}

			recorder := serve(router, "/auth/login", tt.body)
			assert.Equal(t, tt.status, recorder.Code)

			if tt.status == http.StatusOK {
				assert.Equal(t, "no-store", recorder.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().ChangePassword(gomock.Any(), dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret"}).Return(nil)

	recorder := serve(router, "/auth/change-password", `{"current_password":"old-secret","new_password":"new-secret"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Password changed successfully")
}

func TestChangePassword_SamePassword(t *testing.T) {
	router, _ := newRouter(t)

	recorder := serve(router, "/auth/change-password", `{"current_password":"old-secret","new_password":"old-secret"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
