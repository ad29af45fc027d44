package mentor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"pathkeeper/internal/model"
)

// DefaultEndpoints are the candidate generation URLs, tried in priority
// order. The first success wins and short-circuits the rest.
var DefaultEndpoints = []string{
	"http://localhost:8080/api/functions/v1/generate-learning-path",
	"http://localhost:8080/functions/v1/generate-learning-path",
}

// ErrAllEndpointsFailed is returned when every candidate endpoint failed;
// callers recover with FallbackPath.
var ErrAllEndpointsFailed = errors.New("all generation endpoints failed")

// Client calls the path-generation service.
type Client struct {
	httpc     *http.Client
	endpoints []string
	log       zerolog.Logger
}

func NewClient(endpoints []string, log zerolog.Logger) *Client {
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints
	}
	return &Client{
		httpc:     &http.Client{Timeout: 60 * time.Second},
		endpoints: endpoints,
		log:       log,
	}
}

// WithHTTPClient overrides the underlying HTTP client. Test hook.
func (c *Client) WithHTTPClient(httpc *http.Client) *Client {
	c.httpc = httpc
	return c
}

// GeneratePath POSTs {goal} to each candidate endpoint until one returns a
// usable path. Non-success statuses, transport errors, and undecodable
// bodies all just move on to the next candidate.
func (c *Client) GeneratePath(ctx context.Context, goal string) (*model.LearningPath, error) {
	body, err := json.Marshal(map[string]string{"goal": goal})
	if err != nil {
		return nil, fmt.Errorf("marshal goal: %w", err)
	}

	var lastErr error
	for _, endpoint := range c.endpoints {
		path, err := c.tryEndpoint(ctx, endpoint, body, goal)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn().Str("endpoint", endpoint).Err(err).Msg("generation endpoint failed")
			lastErr = err
			continue
		}
		return path, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllEndpointsFailed, lastErr)
	}
	return nil, ErrAllEndpointsFailed
}

// GenerateOrFallback resolves exactly once: the parsed remote path on
// success, the deterministic local path otherwise. The bool reports whether
// the fallback was used.
func (c *Client) GenerateOrFallback(ctx context.Context, goal string) (*model.LearningPath, bool) {
	path, err := c.GeneratePath(ctx, goal)
	if err != nil {
		c.log.Info().Err(err).Msg("using local fallback path")
		return FallbackPath(goal), true
	}
	return path, false
}

func (c *Client) tryEndpoint(ctx context.Context, endpoint string, body []byte, goal string) (*model.LearningPath, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var path model.LearningPath
	if err := json.NewDecoder(resp.Body).Decode(&path); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	NormalizePath(goal, &path)
	if err := ValidatePath(&path); err != nil {
		return nil, err
	}
	return &path, nil
}
