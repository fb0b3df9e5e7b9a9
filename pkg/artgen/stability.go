package artgen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// defaultStabilityEndpoint is Stability AI's styled-image generation API.
const defaultStabilityEndpoint = "https://api.stability.ai/v2beta/stable-image/generate/core"

// maxErrorBody bounds how much of an error response body is carried into
// the returned error.
const maxErrorBody = 4 << 10

// Stability implements Generator against Stability AI's image API.
type Stability struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// StabilityOption is a functional option for configuring Stability.
type StabilityOption func(*Stability)

// WithStabilityHTTPClient sets a custom HTTP client, e.g. to impose a
// timeout.
func WithStabilityHTTPClient(client *http.Client) StabilityOption {
	return func(s *Stability) {
		if client != nil {
			s.client = client
		}
	}
}

// WithStabilityEndpoint overrides the API endpoint.
func WithStabilityEndpoint(endpoint string) StabilityOption {
	return func(s *Stability) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

// NewStability creates a Stability AI generator.
func NewStability(apiKey string, opts ...StabilityOption) (*Stability, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	s := &Stability{
		client:   http.DefaultClient,
		endpoint: defaultStabilityEndpoint,
		apiKey:   apiKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate requests a 1:1 PNG for the prompt and returns its bytes.
func (s *Stability) Generate(ctx context.Context, prompt string) ([]byte, error) {
	form := url.Values{
		"prompt":        {prompt},
		"output_format": {"png"},
		"aspect_ratio":  {"1:1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: API error %d: %s", ErrRequestFailed, resp.StatusCode, body)
	}

	var payload struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %s", ErrInvalidResponse, err.Error())
	}

	raw, err := base64.StdEncoding.DecodeString(payload.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image payload: %s", ErrInvalidResponse, err.Error())
	}
	return raw, nil
}
