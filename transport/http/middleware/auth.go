package middleware

import (
	"context"
	"crypto/subtle"
	"dockhub/config"
	"dockhub/infras/jwt"
	"dockhub/infras/otel"
	"dockhub/permissions"
	"dockhub/shared/constant"
	"dockhub/shared/failure"
	"dockhub/transport/http/response"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryParamAccessToken = "access_token"

type accessKey struct{}

// access is resolved once per request by APIKey and read by Auth and RBAC.
type access struct {
	internal   bool
	route      string
	permission permissions.Permission
}


var tokenErrorMessages = []struct {
	err     error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole guards staff routes: APIKey, then Auth, then RBAC, in that order.
type AuthRole interface {
	Auth
	Role
}

type authRole struct {
	jwtService  jwt.JWT
	otel        otel.Otel
	permissions *permissions.PermissionData
	cfg         *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRole{
		jwtService:  jwtService,
		otel:        otel,
		permissions: permissions,
		cfg:         cfg,
	}
}

func (m *authRole) resolve(request *http.Request) access {
	resolved := access{route: request.URL.Path}

	if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.Routes != nil {
		if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
			resolved.route = pattern
		}
	}

	if m.permissions != nil {
		resolved.permission = m.permissions.FindPermissions(resolved.route, request.Method)
	}

	return resolved
}

func (m *authRole) accessOf(request *http.Request) access {
	if resolved, ok := request.Context().Value(accessKey{}).(access); ok {
		return resolved
	}

	return m.resolve(request)
}

// APIKey marks trusted service-to-service calls. They act as the system user with the admin role.
func (m *authRole) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		ctx := request.Context()
		resolved := m.resolve(request)
		key := request.Header.Get(constant.RequestHeaderAPIKey)

		if key != "" {
			scope.SetAttribute("http.source", "internal")

			expected := m.cfg.App.APIKey
			if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
				scope.TraceError(failure.ForbiddenError)
				response.WithError(writer, failure.ForbiddenError)

				return
			}

			resolved.internal = true
			ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextSystem)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
		} else {
			scope.SetAttribute("http.source", "client")
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, accessKey{}, resolved)))
	})
}

func (m *authRole) bearerToken(request *http.Request) (string, error) {
	header := request.Header.Get(constant.RequestHeaderAuthorization)

	// EventSource clients cannot set headers, so the board stream passes the token in the query.
	if header == "" {
		if token := request.URL.Query().Get(queryParamAccessToken); token != "" {
			return token, nil
		}

		return "", failure.Unauthorized("Missing authorization header")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return "", failure.Unauthorized("Invalid authorization header format")
	}

	return token, nil
}

// Auth requires a valid access token unless the route is public or the caller is internal.
func (m *authRole) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		resolved := m.accessOf(request)
		if resolved.internal || resolved.permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       resolved.route,
			"http.method":     request.Method,
		})

		token, err := m.bearerToken(request)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			message := "Token validation failed"

			for _, known := range tokenErrorMessages {
				if errors.Is(err, known.err) {
					message = known.message

					break
				}
			}

			err = failure.Unauthorized(message)
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		if claims.Email == "" || claims.Role == "" {
			log.Error().Str("subject", claims.Subject).Msg("JWT claims: email or role is empty")

			err = failure.Unauthorized("Invalid token claims")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx := context.WithValue(request.Context(), constant.ContextKeyUserID, claims.Subject)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the caller's role against the route entry. Routes without an entry are open to any signed-in staff.
func (m *authRole) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if m.permissions == nil {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		resolved := m.accessOf(request)
		if resolved.internal || m.permissions.Skip || resolved.permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

		if !resolved.permission.Allows(role) {
			scope.TraceError(failure.ForbiddenError)
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": resolved.permission.Permissions,
				"reason":        "role_not_allowed",
			})
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
