// Package llm talks to an OpenAI-compatible chat endpoint for the
// insights command.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Maalch/stats-lycansv2-sub010/internal/config"
)

var errMissingAPIKey = errors.New(
	"API key not set, run: lycans config set api_key YOUR_API_KEY")

// ErrMissingAPIKey reports whether err means no API key is configured.
func ErrMissingAPIKey(err error) bool {
	return errors.Is(err, errMissingAPIKey)
}

const defaultTimeout = 30 * time.Second

// chatCompleter is the slice of the OpenAI client we use; tests inject
// fakes through it.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options configures a Client.
type Options struct {
	// Timeout bounds each request; zero means 30s.
	Timeout time.Duration
	// completer overrides the real client in tests.
	completer chatCompleter
}

// Client issues chat completions using the credentials from the active
// configuration.
type Client struct {
	timeout   time.Duration
	completer chatCompleter
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{timeout: timeout, completer: opts.completer}
}

// Complete sends a system+user prompt pair and returns the trimmed
// response text. model falls back to the configured model when empty.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt, model string) (string, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return "", err
	}
	if cfg.APIKey == "" {
		return "", errMissingAPIKey
	}
	if model == "" {
		model = cfg.Model
	}

	completer := c.completer
	if completer == nil {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.APIBase != "" {
			clientConfig.BaseURL = cfg.APIBase
		}
		completer = openai.NewClientWithConfig(clientConfig)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call LLM: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("LLM returned empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// TestConnection sends a minimal probe request.
func (c *Client) TestConnection(model string) error {
	_, err := c.Complete(context.Background(),
		"You are a connectivity probe.", "Reply with OK.", model)
	return err
}
