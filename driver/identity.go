// ABOUTME: This file implements the client for the external identity/credit service
// ABOUTME: Session lookup and credit decrement; the service stays optional
package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"video-digest/config"
)

const serviceTokenHeader = "X-Service-Token"

// UserSession is the identity service's view of the requesting user.
type UserSession struct {
	UserID  string `json:"user_id"`
	Credits int    `json:"credits"`
}

// IdentityClient consumes the identity/credit collaborator. Credit
// accounting itself lives in that service; this client only reports usage.
type IdentityClient struct {
	baseURL      string
	serviceToken string
	client       *http.Client
	logger       *slog.Logger
}

// NewIdentityClient creates a collaborator client. Returns nil when the
// collaborator is not configured; callers must treat nil as "disabled".
func NewIdentityClient(cfg config.IdentityConfig, logger *slog.Logger) *IdentityClient {
	if !cfg.Enabled() {
		return nil
	}

	return &IdentityClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		serviceToken: cfg.ServiceToken,
		client:       &http.Client{Timeout: cfg.Timeout},
		logger:       logger,
	}
}

// CurrentUser resolves the session token into a user and credit balance.
func (c *IdentityClient) CurrentUser(ctx context.Context, sessionToken string) (*UserSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/internal/v1/session", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}
	c.addAuth(req)
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("session lookup failed with status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read session response: %w", err)
	}

	var session UserSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}

	return &session, nil
}

type decrementRequest struct {
	UserID string `json:"user_id"`
	Amount int    `json:"amount"`
}

// DecrementCredit reports one consumed credit for the user.
func (c *IdentityClient) DecrementCredit(ctx context.Context, userID string) error {
	payload, err := json.Marshal(decrementRequest{UserID: userID, Amount: 1})
	if err != nil {
		return fmt.Errorf("failed to marshal decrement payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/internal/v1/credits/decrement", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create decrement request: %w", err)
	}
	c.addAuth(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("credit decrement failed with status: %s", resp.Status)
	}

	c.logger.Debug("credit decremented", "user_id", userID)

	return nil
}

func (c *IdentityClient) addAuth(req *http.Request) {
	if c.serviceToken != "" {
		req.Header.Set(serviceTokenHeader, c.serviceToken)
	}
}
