package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"slotkeeper/config"
	"slotkeeper/infras/jwt"
	"slotkeeper/infras/otel"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/permissions"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
	"slotkeeper/transport/http/response"
)

type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
	RequireAPIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Auth validates the bearer token and puts the caller's id and role in the context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		if internal(ctx) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path := routePattern(request)

		if m.permission != nil && m.permission.FindPermissions(path, request.Method).Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		reject := func(err error) {
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			reject(failure.Unauthorized("Missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject(failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Invalid token"
			}

			reject(failure.Unauthorized(message))

			return
		}

		if _, err := uuid.Parse(claims.UserID); err != nil {
			log.Error().Str("user_id", claims.UserID).Msg("JWT claims: UserID is not a uuid")
			reject(failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the caller's role against the route's allowed roles.
// Requires prior authentication via Auth middleware
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if internal(ctx) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		permission := m.permission.FindPermissions(routePattern(request), request.Method)

		if m.permission.Skip || permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if len(permission.Permissions) > 0 && !slices.Contains(permission.Permissions, userRole) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey marks requests carrying the internal API key so Auth and RBAC let them through.
// A wrong key is rejected outright.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		ctx = context.WithValue(ctx, skipAuth, false)
		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || apiKey != m.cfg.App.APIKey {
			err := failure.ForbiddenError

			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, skipAuth, true)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireAPIKey limits a route to internal callers.
func (m *authRoleImpl) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !internal(request.Context()) {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// Actor turns the authenticated caller into the actor handed to services.
// Internal callers act as the system.
func Actor(ctx context.Context) (lifecycle.Actor, error) {
	if internal(ctx) {
		return lifecycle.System, nil
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	id, err := uuid.Parse(userID)
	if err != nil || role == "" {
		return lifecycle.Actor{}, failure.Unauthorized("missing caller identity")
	}

	return lifecycle.Actor{ID: id, Role: role}, nil
}

// WithActor puts an already authenticated actor into ctx, used by internal callers and tests.
func WithActor(ctx context.Context, actor lifecycle.Actor) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, actor.ID.String())

	return context.WithValue(ctx, constant.ContextKeyUserRole, actor.Role)
}

func internal(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuth).(bool)

	return skip
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
