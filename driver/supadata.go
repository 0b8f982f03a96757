// ABOUTME: This file implements the HTTP client for the Supadata transcription provider
// ABOUTME: Covers task creation, task status, direct transcript fetch and video metadata
package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"video-digest/config"
	"video-digest/domain"
)

const (
	transcriptTasksPath   = "/youtube/transcripts"
	directTranscriptPath  = "/youtube/transcript"
	videoMetadataPathTmpl = "/videos/%s/metadata"

	apiKeyHeader = "x-api-key"
)

// SupadataClient talks to the transcription provider's REST API.
// Outbound calls are paced by a shared limiter so the polling loop cannot
// hammer the provider when the interval is configured aggressively.
type SupadataClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewSupadataClient creates a provider client from validated configuration.
func NewSupadataClient(cfg *config.Config, logger *slog.Logger) *SupadataClient {
	transport := &http.Transport{
		MaxIdleConns:        cfg.HTTP.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.HTTP.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
	}

	return &SupadataClient{
		baseURL: strings.TrimRight(cfg.Transcript.BaseURL, "/"),
		apiKey:  cfg.Transcript.APIKey,
		client: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit.ProviderRPS), cfg.RateLimit.Burst),
		logger:  logger,
	}
}

type createTaskRequest struct {
	URL      string `json:"url"`
	Language string `json:"language"`
	Format   string `json:"format"`
}

type createTaskResponse struct {
	ID     string `json:"id"`
	TaskID string `json:"taskId"`
}

// CreateTranscriptTask starts an asynchronous transcription job and returns
// its provider-side id.
func (c *SupadataClient) CreateTranscriptTask(ctx context.Context, videoID domain.VideoID) (string, error) {
	payload := createTaskRequest{
		URL:      videoID.WatchURL(),
		Language: "auto",
		Format:   "text",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal task payload: %w", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, c.baseURL+transcriptTasksPath, strings.NewReader(string(body)))
	if err != nil {
		return "", err
	}

	var resp createTaskResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse task creation response: %w", err)
	}

	taskID := resp.ID
	if taskID == "" {
		taskID = resp.TaskID
	}
	if taskID == "" {
		return "", fmt.Errorf("task creation response carried no task id")
	}

	c.logger.Info("transcript task created", "video_id", videoID, "task_id", taskID)

	return taskID, nil
}

type taskStatusResponse struct {
	ID          string `json:"id"`
	TaskID      string `json:"taskId"`
	Status      string `json:"status"`
	VideoID     string `json:"videoId"`
	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt"`
	Transcript  string `json:"transcript"`
	Text        string `json:"text"`
	Error       string `json:"error"`
}

// GetTranscriptTask fetches the current state of a transcription task.
func (c *SupadataClient) GetTranscriptTask(ctx context.Context, taskID string) (*domain.TranscriptTask, error) {
	respBody, err := c.do(ctx, http.MethodGet, c.baseURL+transcriptTasksPath+"/"+url.PathEscape(taskID), nil)
	if err != nil {
		return nil, err
	}

	var resp taskStatusResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse task status response: %w", err)
	}

	id := resp.ID
	if id == "" {
		id = resp.TaskID
	}

	transcript := resp.Transcript
	if transcript == "" {
		transcript = resp.Text
	}

	task := &domain.TranscriptTask{
		ID:         id,
		Status:     mapTaskStatus(resp.Status),
		VideoID:    domain.VideoID(resp.VideoID),
		Transcript: transcript,
		Error:      resp.Error,
	}

	if t, err := time.Parse(time.RFC3339, resp.CreatedAt); err == nil {
		task.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, resp.CompletedAt); err == nil {
		task.CompletedAt = t
	}

	return task, nil
}

func mapTaskStatus(remote string) domain.TaskStatus {
	switch strings.ToLower(remote) {
	case "queued", "pending":
		return domain.TaskStatusPending
	case "active", "processing":
		return domain.TaskStatusProcessing
	case "completed", "done":
		return domain.TaskStatusCompleted
	case "failed", "error":
		return domain.TaskStatusFailed
	default:
		return domain.TaskStatusProcessing
	}
}

type captionChunk struct {
	Text string `json:"text"`
}

type directTranscriptResponse struct {
	Content    []captionChunk `json:"content"`
	Transcript string         `json:"transcript"`
	Text       string         `json:"text"`
}

// FetchTranscript retrieves a transcript in one request (direct mode).
// The payload is normalized from the three shapes the provider has been
// observed to return; the first matching shape wins.
func (c *SupadataClient) FetchTranscript(ctx context.Context, videoID domain.VideoID) (string, error) {
	endpoint := fmt.Sprintf("%s%s?url=%s", c.baseURL, directTranscriptPath, url.QueryEscape(videoID.WatchURL()))

	respBody, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	var resp directTranscriptResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse transcript response: %w", err)
	}

	transcript := normalizeTranscript(resp)
	if transcript == "" {
		return "", domain.ErrEmptyTranscript
	}

	return transcript, nil
}

func normalizeTranscript(resp directTranscriptResponse) string {
	if len(resp.Content) > 0 {
		parts := make([]string, 0, len(resp.Content))
		for _, chunk := range resp.Content {
			text := strings.TrimSpace(chunk.Text)
			if text == "" || isNonSpeechMarker(text) {
				continue
			}
			parts = append(parts, text)
		}
		if joined := strings.Join(parts, " "); joined != "" {
			return joined
		}
	}

	if t := strings.TrimSpace(resp.Transcript); t != "" {
		return t
	}

	return strings.TrimSpace(resp.Text)
}

// isNonSpeechMarker reports whether a caption entry is a bracketed cue
// like "[Music]" or "[Аплодисменты]" rather than spoken content.
func isNonSpeechMarker(text string) bool {
	return strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]")
}

type metadataResponse struct {
	Title        string `json:"title"`
	ChannelName  string `json:"channelName"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// FetchMetadata retrieves video metadata. Callers treat any error as a
// signal to fall back to placeholder metadata; this method never needs to
// guarantee success.
func (c *SupadataClient) FetchMetadata(ctx context.Context, videoID domain.VideoID) (domain.VideoMetadata, error) {
	endpoint := c.baseURL + fmt.Sprintf(videoMetadataPathTmpl, url.PathEscape(videoID.String()))

	respBody, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.VideoMetadata{}, err
	}

	var resp metadataResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("failed to parse metadata response: %w", err)
	}

	meta := domain.PlaceholderMetadata(videoID)
	if resp.Title != "" {
		meta.Title = resp.Title
	}
	if resp.ChannelName != "" {
		meta.ChannelName = resp.ChannelName
	}
	if resp.ThumbnailURL != "" {
		meta.ThumbnailURL = resp.ThumbnailURL
	}

	return meta, nil
}

// do executes one provider request. HTTP 429 and 404 are mapped onto the
// domain sentinels; any other non-200 status becomes a generic transport
// error that propagates to the caller unwrapped.
func (c *SupadataClient) do(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, domain.ErrRateLimited
	case http.StatusNotFound:
		return nil, domain.ErrNoTranscript
	default:
		payload, _ := io.ReadAll(resp.Body)
		c.logger.Error("provider returned non-200 status",
			"status", resp.Status, "endpoint", endpoint, "body", string(payload))
		return nil, fmt.Errorf("provider request failed with status: %s", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, nil
}
