package mcpadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lawhub-kr/statute-agent/internal/executor"
	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/search"
	"github.com/lawhub-kr/statute-agent/internal/store"
)

// SearchInput is the MCP tool input schema for statute retrieval (matches
// the HTTP API field names).
type SearchInput struct {
	Query         string  `json:"query" jsonschema:"question or keywords to search the statutes with"`
	LawName       string  `json:"law_name,omitempty" jsonschema:"optional statute name to narrow the search"`
	TopK          int     `json:"top_k,omitempty" jsonschema:"number of chunks per statute (default: 3)"`
	ContentWeight float64 `json:"content_weight,omitempty" jsonschema:"content field weight (default: 1.0)"`
	TitleWeight   float64 `json:"title_weight,omitempty" jsonschema:"title field weight; 0 disables title search (default: 0.0)"`
}

// SearchOutput wraps the per-statute retrieval results.
type SearchOutput struct {
	Results []executor.SearchResult `json:"results"`
}

// AskInput is the MCP tool input schema for the multi-agent assistant.
type AskInput struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"optional request identifier"`
	Question  string `json:"question" jsonschema:"legal question to answer"`
	History   string `json:"history,omitempty" jsonschema:"optional prior conversation"`
}

// ArticleInput is the MCP tool input schema for direct article lookup.
type ArticleInput struct {
	LawName string `json:"law_name" jsonschema:"statute name"`
	Number  string `json:"number" jsonschema:"article citation, e.g. 제10조 or 10"`
}

// NewSearchHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSearchHandler(exec *executor.SearchExecutor) func(context.Context, *mcp.CallToolRequest, SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		opts := search.DefaultOptions()
		if input.TopK > 0 {
			opts.TopK = input.TopK
		}
		if input.ContentWeight > 0 || input.TitleWeight > 0 {
			opts.Weights = models.SearchWeights{Content: input.ContentWeight, Title: input.TitleWeight}
		}

		results, err := exec.Search(ctx, input.Query, input.LawName, opts)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		return nil, SearchOutput{Results: results}, nil
	}
}

// NewAskHandler returns a tool handler that runs the full multi-agent
// pipeline. Pass the returned function to mcp.AddTool.
func NewAskHandler(exec *executor.ChatExecutor) func(context.Context, *mcp.CallToolRequest, AskInput) (*mcp.CallToolResult, models.ChatResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, models.ChatResult, error) {
		requestID := input.RequestID
		if requestID == "" {
			requestID = fmt.Sprintf("mcp-%d", time.Now().UnixNano())
		}

		result := exec.Execute(ctx, models.ChatRequest{
			RequestID: requestID,
			Question:  input.Question,
			History:   input.History,
		})
		return nil, result, nil
	}
}

// NewArticleHandler returns a tool handler for direct article lookup.
func NewArticleHandler(st *store.Store) func(context.Context, *mcp.CallToolRequest, ArticleInput) (*mcp.CallToolResult, models.Article, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ArticleInput) (*mcp.CallToolResult, models.Article, error) {
		article, ok := st.FindArticle(input.LawName, input.Number)
		if !ok {
			return nil, models.Article{}, fmt.Errorf("article %s of %s not found", input.Number, input.LawName)
		}
		return nil, article, nil
	}
}
