package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/logger"
)

// Config defines the generative-text client settings
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// GeminiClient is a thin synchronous adapter over the Gemini API. One call
// per request, no retries, no streaming.
type GeminiClient struct {
	client *genai.Client
	config Config
}

// NewGeminiClient creates a new Gemini completion client
func NewGeminiClient(ctx context.Context, config Config) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete sends the prompt as a single user-role message and returns the
// first candidate's text. Timeouts and rate-limit responses are both
// surfaced as UpstreamError; the raw prompt and response only reach the
// debug log stream.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	logger.Debug().Str("model", c.config.Model).Msg("Sending completion request")

	resp, err := c.client.Models.GenerateContent(ctx, c.config.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(c.config.Temperature),
		},
	)
	if err != nil {
		return "", apperrors.NewUpstreamError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperrors.NewUpstreamError(fmt.Errorf("empty response from model"))
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}
	if text == "" {
		return "", apperrors.NewUpstreamError(fmt.Errorf("no text content in first candidate"))
	}

	logger.Debug().Int("responseLength", len(text)).Msg("Completion request finished")
	return text, nil
}
