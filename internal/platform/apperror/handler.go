package apperror

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Payload is the structured error body returned to callers:
// an error category label plus a detail string.
type Payload struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// HTTPErrorHandler converts taxonomy errors and echo HTTP errors into the
// structured error payload. Unclassified errors surface as StorageError
// with a generic detail; the original error is logged, not leaked.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		payload := Payload{Error: Storage.String(), Details: "internal server error"}

		var appErr *Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Kind.HTTPStatus()
			payload.Error = appErr.Kind.String()
			payload.Details = appErr.Detail
		case errors.As(err, &httpErr):
			status = httpErr.Code
			payload.Error = http.StatusText(httpErr.Code)
			if msg, ok := httpErr.Message.(string); ok {
				payload.Details = msg
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, payload)
	}
}
