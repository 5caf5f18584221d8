package middleware_test

import (
	"dockhub/config"
	"dockhub/infras/jwt"
	jwtMocks "dockhub/infras/jwt/mocks"
	otelMocks "dockhub/infras/otel/mocks"
	"dockhub/permissions"
	"dockhub/shared/constant"
	"dockhub/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	goJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const apiKey = "internal-key"

func newRouter(t *testing.T) (*chi.Mux, *jwtMocks.MockJWT) {
	t.Helper()

	jwtService := jwtMocks.NewMockJWT(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), permissions.Get(), cfg)

	router := chi.NewRouter()
	router.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		_, _ = w.Write([]byte(user))
	}

	router.Route("/v1", func(r chi.Router) {
		r.Route("/check-ins", func(r chi.Router) {
			r.Post("/", echoUser)
			r.Get("/", echoUser)
		})
		r.Post("/profiles", echoUser)
	})

	return router, jwtService
}

func claims(subject, role string) *jwt.Claims {
	return &jwt.Claims{
		Email:            subject + "@dock.test",
		Role:             role,
		Type:             jwt.AccessToken,
		RegisteredClaims: goJWT.RegisteredClaims{Subject: subject, ID: "token-" + subject},
	}
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		header map[string]string
		token  string
		claims *jwt.Claims
		err    error
		status int
		user   string
	}{
		{name: "public check-in needs no token", method: http.MethodPost, target: "/v1/check-ins", status: http.StatusOK},
		{name: "missing token", method: http.MethodGet, target: "/v1/check-ins", status: http.StatusUnauthorized},
		{
			name:   "malformed header",
			method: http.MethodGet,
			target: "/v1/check-ins",
			header: map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			status: http.StatusUnauthorized,
		},
		{
			name:   "csr reads check-ins",
			method: http.MethodGet,
			target: "/v1/check-ins",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"},
			token:  "abc",
			claims: claims("csr-1", constant.RoleCSR),
			status: http.StatusOK,
			user:   "csr-1",
		},
		{
			name:   "query token for event streams",
			method: http.MethodGet,
			target: "/v1/check-ins?access_token=abc",
			token:  "abc",
			claims: claims("csr-2", constant.RoleCSR),
			status: http.StatusOK,
			user:   "csr-2",
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			target: "/v1/check-ins",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"},
			token:  "abc",
			err:    jwt.ErrExpiredToken,
			status: http.StatusUnauthorized,
		},
		{
			name:   "csr cannot create profiles",
			method: http.MethodPost,
			target: "/v1/profiles",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"},
			token:  "abc",
			claims: claims("csr-1", constant.RoleCSR),
			status: http.StatusForbidden,
		},
		{
			name:   "admin creates profiles",
			method: http.MethodPost,
			target: "/v1/profiles",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"},
			token:  "abc",
			claims: claims("admin-1", constant.RoleAdmin),
			status: http.StatusOK,
			user:   "admin-1",
		},
		{
			name:   "internal caller with api key",
			method: http.MethodPost,
			target: "/v1/profiles",
			header: map[string]string{constant.RequestHeaderAPIKey: apiKey},
			status: http.StatusOK,
			user:   constant.ContextSystem,
		},
		{
			name:   "wrong api key",
			method: http.MethodGet,
			target: "/v1/check-ins",
			header: map[string]string{constant.RequestHeaderAPIKey: "guess"},
			status: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, jwtService := newRouter(t)

			if tt.token != "" {
				jwtService.EXPECT().ValidateToken(tt.token, jwt.AccessToken).Return(tt.claims, tt.err)
			}

			request := httptest.NewRequest(tt.method, tt.target, nil)
			for key, value := range tt.header {
				request.Header.Set(key, value)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)

			if tt.user != "" {
				assert.Equal(t, tt.user, recorder.Body.String())
			}
		})
	}
}
