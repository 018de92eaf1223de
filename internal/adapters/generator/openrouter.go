package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/revrost/go-openrouter"
	"github.com/rs/zerolog/log"
)

var ErrEmptyCompletion = errors.New("completion has no choices")

type OpenRouterClient interface {
	CreateChatCompletion(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

type OpenRouterGenerator struct {
	client       OpenRouterClient
	model        string
	systemPrompt string
}

func NewOpenRouterGenerator(apiKey, model, systemPrompt string) *OpenRouterGenerator {
	return &OpenRouterGenerator{
		model:        model,
		systemPrompt: systemPrompt,
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("solaire"),
		),
	}
}

func (c *OpenRouterGenerator) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	messages := make([]openrouter.ChatCompletionMessage, 0, 2)

	if c.systemPrompt != "" {
		messages = append(messages, openrouter.ChatCompletionMessage{
			Role:    openrouter.ChatMessageRoleSystem,
			Content: openrouter.Content{Text: c.systemPrompt},
		})
	}

	messages = append(messages, openrouter.ChatCompletionMessage{
		Role:    openrouter.ChatMessageRoleUser,
		Content: openrouter.Content{Text: prompt},
	})

	resp, err := c.client.CreateChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Messages: messages,
		Model:    c.model,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	log.Debug().
		Str("model", resp.Model).
		Int("completionTokens", resp.Usage.CompletionTokens).
		Int("totalTokens", resp.Usage.TotalTokens).
		Msg("received completion")

	return resp.Choices[0].Message.Content.Text, nil
}
