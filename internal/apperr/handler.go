package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler maps classified errors onto HTTP responses at the
// API boundary. Upstream failures surface as 502 so clients can tell
// them apart from problems with their own request.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ae *Error
		if errors.As(err, &ae) {
			_ = c.JSON(statusForKind(ae.Kind), map[string]string{
				"kind":  string(ae.Kind),
				"error": UserMessage(ae),
			})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func statusForKind(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindNetwork, KindServer, KindUnauthorized, KindForbidden, KindParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
