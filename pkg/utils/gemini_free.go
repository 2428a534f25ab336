package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// CompletionClient is a single-shot text completion backend.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GenerationSettings are the sampling knobs sent with every completion.
type GenerationSettings struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// DefaultGenerationSettings keeps the oracle close to deterministic.
var DefaultGenerationSettings = GenerationSettings{
	Temperature:     0.2,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 2048,
}

// GeminiCompletionClient implements CompletionClient using Google's Gemini models
type GeminiCompletionClient struct {
	client   *genai.Client
	model    string
	timeout  time.Duration
	settings GenerationSettings
}

// NewGeminiCompletionClient creates a new Gemini client
func NewGeminiCompletionClient(apiKey, model string, timeout time.Duration) (*GeminiCompletionClient, error) {
	if model == "" {
		model = "gemini-2.5-pro"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client:   client,
		model:    model,
		timeout:  timeout,
		settings: DefaultGenerationSettings,
	}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(c.settings.Temperature)
	m.SetTopP(c.settings.TopP)
	m.SetTopK(c.settings.TopK)
	m.SetMaxOutputTokens(c.settings.MaxOutputTokens)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini: empty text response")
	}

	return sb.String(), nil
}

// Close closes the Gemini client
func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
