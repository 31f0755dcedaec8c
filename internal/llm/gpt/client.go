package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const maxRetries = 3

// Client answers expansion and agent prompts through the OpenAI chat
// completions API. Retries are handled by the SDK.
type Client struct {
	Client  openai.Client
	ModelID string
}

func NewClient(apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("OpenAI model ID is required")
	}

	openaiClient := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(maxRetries),
	)

	return &Client{
		Client:  openaiClient,
		ModelID: model,
	}, nil
}
