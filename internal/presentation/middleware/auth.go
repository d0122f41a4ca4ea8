package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"atelier/internal/domain/model"
	"atelier/internal/presentation"
)

// Config maps bearer tokens to principals. The authentication scheme itself
// is a boundary concern; the server only consumes the resolved
// {id, role} identity.
type Config struct {
	Tokens map[string]model.Principal `yaml:"tokens"`
}

// Auth resolves the caller's identity from the Authorization header. A
// missing header leaves the request anonymous so public endpoints still
// work; a token the config doesn't know is rejected outright.
func Auth(cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(presentation.AuthHeader)
			if header == "" {
				return next(ctx)
			}
			if !strings.HasPrefix(header, presentation.BearerPrefix) {
				return ctx.JSON(http.StatusUnauthorized, map[string]string{
					"message": "malformed Authorization header",
				})
			}

			token := strings.TrimPrefix(header, presentation.BearerPrefix)
			principal, ok := cfg.Tokens[token]
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, map[string]string{
					"message": "invalid token",
				})
			}

			ctx.Set(presentation.PrincipalKey, &principal)

			return next(ctx)
		}
	}
}

// RequireRole guards an endpoint behind a role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal := PrincipalFrom(ctx)
			if principal == nil {
				return ctx.JSON(http.StatusUnauthorized, map[string]string{
					"message": "authentication required",
				})
			}
			if principal.Role != role {
				return ctx.JSON(http.StatusForbidden, map[string]string{
					"message": "You are not authorized to perform this action",
				})
			}

			return next(ctx)
		}
	}
}

// PrincipalFrom returns the authenticated caller, or nil for anonymous
// requests.
func PrincipalFrom(ctx echo.Context) *model.Principal {
	principal, _ := ctx.Get(presentation.PrincipalKey).(*model.Principal)

	return principal
}
