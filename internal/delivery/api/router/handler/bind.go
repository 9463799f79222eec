package handler

import (
	"net/http"

	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindRequest binds the request into dst. Decoder failures become
// ErrValidationFailed so clients never see parser internals.
func bindRequest(c echo.Context, dst any) error {
	err := c.Bind(dst)
	if err == nil {
		return nil
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
		return errors.WithStack(err)
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("Request body is malformed"))
}
