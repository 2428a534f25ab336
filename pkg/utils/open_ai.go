package utils

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAICompletionClient struct {
	client   *openai.Client
	model    string
	timeout  time.Duration
	settings GenerationSettings
}

func NewOpenAICompletionClient(apiKey, model string, timeout time.Duration) *OpenAICompletionClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAICompletionClient{
		client:   openai.NewClient(apiKey),
		model:    model,
		timeout:  timeout,
		settings: DefaultGenerationSettings,
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.settings.Temperature,
		TopP:        c.settings.TopP,
		MaxTokens:   int(c.settings.MaxOutputTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no content generated")
	}

	return resp.Choices[0].Message.Content, nil
}

// Close is a no-op; the OpenAI client holds no connections of its own.
func (c *OpenAICompletionClient) Close() error {
	return nil
}
