package llm

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"google.golang.org/genai"
)

const (
	defaultModel          = "gemini-2.0-flash"
	defaultTimeoutSeconds = 60
)

type geminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient builds the Gemini-backed completion client. The genai SDK
// reads GEMINI_API_KEY / GOOGLE_API_KEY from the environment on its own.
func NewGeminiClient(ctx context.Context) (Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	timeout := defaultTimeoutSeconds * time.Second
	if raw := os.Getenv("GEMINI_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &geminiClient{client: client, model: model, timeout: timeout}, nil
}

func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini completion failed")
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	raw := result.Text()
	if raw == "" {
		return "", fmt.Errorf("%w: empty response from model", ErrUpstream)
	}

	log.Debugf("Gemini returned %d characters", len(raw))
	return raw, nil
}

// Model reports the configured model name for the health endpoint.
func Model() string {
	if m := os.Getenv("GEMINI_MODEL"); m != "" {
		return m
	}
	return defaultModel
}
