package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-task-tracker/pkg/log"
)

const (
	DefaultTemperature    = 0.1
	DefaultRequestTimeout = 30 * time.Second
)

// Client sends a single prompt to a provider and returns its text reply.
// It makes exactly one attempt per call; callers decide what a failure means.
type Client struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines request settings for the Client
type Config struct {
	Temperature    float64
	MaxTokens      int
	RequestTimeout time.Duration
}

// NewClient creates a new Client for the given provider
func NewClient(provider Provider, config *Config, logger log.Logger) *Client {
	if config == nil {
		config = &Config{}
	}
	if config.Temperature <= 0 {
		config.Temperature = DefaultTemperature
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	return &Client{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// Complete sends prompt as a single user message, asking for a JSON object reply.
// Failures are reported as ErrServiceUnavailable or ErrEmptyResponse.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrInvalidRequest
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	started := time.Now()
	resp, err := c.provider.GenerateContent(ctx, &Request{
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		c.logFailure(ctx, err, time.Since(started))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, &ProviderError{Provider: c.provider.Name(), Err: err})
	}

	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		c.logger.Warnf(ctx, "pkg.llmprovider.Complete: provider=%s model=%s returned no content",
			c.provider.Name(), c.provider.Model())
		return "", fmt.Errorf("%w: provider %s", ErrEmptyResponse, c.provider.Name())
	}

	c.logSuccess(ctx, resp, time.Since(started))
	return resp.Text, nil
}

// Provider returns the provider the client talks to
func (c *Client) Provider() Provider {
	return c.provider
}

// logSuccess logs successful LLM generation with metrics
func (c *Client) logSuccess(ctx context.Context, resp *Response, elapsed time.Duration) {
	inputTokens, outputTokens := 0, 0
	if resp.Usage != nil {
		inputTokens, outputTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	c.logger.Infof(ctx, "pkg.llmprovider.Complete: provider=%s model=%s input_tokens=%d output_tokens=%d elapsed=%s",
		c.provider.Name(), c.provider.Model(), inputTokens, outputTokens, elapsed)
}

// logFailure logs failed LLM generation attempts
func (c *Client) logFailure(ctx context.Context, err error, elapsed time.Duration) {
	c.logger.Warnf(ctx, "pkg.llmprovider.Complete: provider=%s model=%s failed after %s: %v",
		c.provider.Name(), c.provider.Model(), elapsed, err)
}
