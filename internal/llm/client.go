package llm

import (
	"context"
)

// LLMClient is an interface for invoking LLM models.
// Query expansion and statute answering both go through it; tests substitute
// fakes without making real API calls.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
	InvokeModelWithRetry(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
