package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"careercompass/models"
)

// BackendClient forwards requests to the separate AI backend service and
// relays its JSON responses. This layer is deliberately thin: it does no
// response shaping beyond decoding.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient creates a client for the backend service at baseURL.
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ForwardResponse carries a relayed backend response: status code plus raw
// JSON body, passed through to the caller untouched.
type ForwardResponse struct {
	StatusCode int
	Body       []byte
}

// Forward sends a JSON request to the backend service and returns the raw
// response. The caller's bearer token is propagated when present.
func (b *BackendClient) Forward(ctx context.Context, method, path string, body []byte, authorization string) (*ForwardResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend service unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	return &ForwardResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

type jobRecommendationRequest struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	LastJobs   []string `json:"last_jobs"`
	Location   string   `json:"location,omitempty"`
}

type jobRecommendationResponse struct {
	Jobs []models.Job `json:"jobs"`
}

// RecommendJobs asks the backend service for job recommendations matching
// the candidate profile.
func (b *BackendClient) RecommendJobs(ctx context.Context, profile models.CandidateProfile, location string) ([]models.Job, error) {
	payload, err := json.Marshal(jobRecommendationRequest{
		Skills:     profile.Skills,
		Experience: profile.Experience,
		LastJobs:   profile.LastTwoJobs,
		Location:   location,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	resp, err := b.Forward(ctx, http.MethodPost, "/jobs/recommendations", payload, "")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var decoded jobRecommendationResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}

	return decoded.Jobs, nil
}

// BaseURL reports the configured backend address, mainly for logging.
func (b *BackendClient) BaseURL() string {
	return b.baseURL
}

// ValidBaseURL checks the configured backend address parses as an absolute
// URL before the server starts taking traffic.
func ValidBaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid backend URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("backend URL must be absolute, got %q", raw)
	}
	return nil
}
