package groq

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// CompletionParams carries the sampling knobs the services tune per call.
type CompletionParams struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

type IGroq interface {
	CreateChatCompletion(ctx context.Context, systemPrompt, userMessage string, params CompletionParams) (string, error)
}

type groqClient struct {
	client *openai.Client
	model  string
}

func New() (IGroq, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, errors.New("groq API key is required")
	}

	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = defaultBaseURL

	return &groqClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (g *groqClient) CreateChatCompletion(
	ctx context.Context,
	systemPrompt, userMessage string,
	params CompletionParams,
) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       g.model,
			Messages:    messages,
			Temperature: params.Temperature,
			MaxTokens:   params.MaxTokens,
			TopP:        params.TopP,
		},
	)
	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from groq")
	}

	return resp.Choices[0].Message.Content, nil
}
