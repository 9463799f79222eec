package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerScheme = "bearer"

// AuthMiddleware is the access gate in front of protected route groups.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate verifies the bearer token and stores the principal before the
// handler runs. Any failure ends the request with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		principal, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return err
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", domainerrors.ErrTokenMissing
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", errors.Wrap(domainerrors.ErrTokenMalformed, "authorization header must use the Bearer scheme")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", domainerrors.ErrTokenMissing
	}

	return token, nil
}
