package context

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetPrincipal stores the authenticated principal on both echo.Context and
// the request context so handlers and services see the same identity.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(echoPrincipal, principal)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal returns the principal set by the access gate.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(echoPrincipal).(*entity.Principal)

	return principal, ok && principal != nil
}

// WithPrincipal returns a new context carrying the principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipalFromContext extracts the principal from standard context.Context.
func GetPrincipalFromContext(ctx context.Context) (*entity.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*entity.Principal)

	return principal, ok && principal != nil
}
