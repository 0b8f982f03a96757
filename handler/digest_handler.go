// ABOUTME: This file implements the HTTP handlers for the digest endpoint
// ABOUTME: POST generates a summary for a video URL, GET reports API availability
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"video-digest/domain"
	"video-digest/usecase/digest"
)

// DigestRequest represents the request body for digest generation.
type DigestRequest struct {
	URL string `json:"url" validate:"required"`
}

// SuccessResponse is the envelope for successful responses.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// AvailabilityResponse reports that the API is reachable.
type AvailabilityResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// DigestHandler handles digest generation requests.
type DigestHandler struct {
	digester Digester
	sessions SessionResolver
	logger   *slog.Logger
}

// NewDigestHandler creates a new digest handler. sessions may be nil when
// the identity collaborator is not configured.
func NewDigestHandler(digester Digester, sessions SessionResolver, logger *slog.Logger) *DigestHandler {
	return &DigestHandler{
		digester: digester,
		sessions: sessions,
		logger:   logger,
	}
}

// HandleDigest handles POST /api/v1/digest requests.
func (h *DigestHandler) HandleDigest(c echo.Context) error {
	ctx := c.Request().Context()

	var req DigestRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		h.logger.WarnContext(ctx, "request validation failed", "error", err)
		return domain.ErrURLRequired
	}

	result, err := h.digester.Digest(ctx, digest.Request{
		URL:    req.URL,
		UserID: h.resolveUser(c),
	})
	if err != nil {
		// The error middleware owns status mapping and the envelope.
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    result,
	})
}

// HandleAvailability handles GET /api/v1/digest requests.
func (h *DigestHandler) HandleAvailability(c echo.Context) error {
	return c.JSON(http.StatusOK, AvailabilityResponse{
		Success: true,
		Message: "YouTube Summarizer API is available",
		Version: "1.0.0",
	})
}

// resolveUser turns the optional bearer token into a user id. Identity
// failures degrade to an anonymous request; they never block the digest.
func (h *DigestHandler) resolveUser(c echo.Context) string {
	if h.sessions == nil {
		return ""
	}

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return ""
	}

	session, err := h.sessions.CurrentUser(c.Request().Context(), token)
	if err != nil {
		h.logger.WarnContext(c.Request().Context(), "session resolution failed", "error", err)
		return ""
	}

	return session.UserID
}
