// ABOUTME: Centralized error handling middleware for Echo framework
// ABOUTME: Maps domain errors to HTTP statuses and renders the response envelope
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"video-digest/domain"
	"video-digest/utils/logger"
)

// ErrorResponse is the envelope for failed responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// CustomHTTPErrorHandler creates the centralized HTTP error handler for Echo.
//
// Status mapping:
//  1. echo.HTTPError - status preserved as-is (binding failures and the like)
//  2. validation sentinels - 400
//  3. errors whose message contains "timeout" - 504
//  4. everything else - 500
//
// Error messages are user-facing by construction: the domain sentinels carry
// the final client wording, so the envelope exposes err.Error() directly.
func CustomHTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		// Don't write to already committed responses
		if c.Response().Committed {
			return
		}

		ctx := c.Request().Context()
		requestID := logger.RequestIDFromContext(ctx)

		status := statusForError(err)
		message := messageForError(err)

		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"request_id", requestID,
				"status", status,
				"error", err.Error())
		} else {
			log.Warn("request rejected",
				"request_id", requestID,
				"status", status,
				"error", err.Error())
		}

		if err := c.JSON(status, ErrorResponse{Success: false, Error: message}); err != nil {
			log.Error("failed to send error response",
				"request_id", requestID,
				"error", err)
		}
	}
}

var validationErrors = []error{
	domain.ErrURLRequired,
	domain.ErrInvalidVideoURL,
	domain.ErrVideoIDNotExtracted,
}

func statusForError(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest
		}
	}

	if strings.Contains(err.Error(), "timeout") {
		return http.StatusGatewayTimeout
	}

	return http.StatusInternalServerError
}

func messageForError(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}

		return http.StatusText(httpErr.Code)
	}

	return err.Error()
}
