package llm

// LLMRequest is a single-turn prompt. The expander and the statute agents
// build the full conversation into Prompt themselves.
type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type LLMResponse struct {
	Content    string
	StopReason string
}
