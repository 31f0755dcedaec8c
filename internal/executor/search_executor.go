package executor

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/search"
)

var ErrLawNotFound = errors.New("law not found")

// SearchResult is one statute's retrieval outcome for a raw search call.
type SearchResult struct {
	LawName string `json:"law_name"`
	Chunks  string `json:"chunks"`
}

// SearchExecutor exposes retrieval without the answering stage, for the API
// search endpoint and the MCP search tool.
type SearchExecutor struct {
	expander QueryExpander
	builder  IndexBuilder
	laws     LawSource
	logger   *zerolog.Logger
}

func NewSearchExecutor(expander QueryExpander, builder IndexBuilder, laws LawSource, logger *zerolog.Logger) *SearchExecutor {
	return &SearchExecutor{expander: expander, builder: builder, laws: laws, logger: logger}
}

// Search retrieves the best chunks per statute. lawName narrows the search
// to one statute; empty means all loaded statutes. Results come back sorted
// by statute name so responses are stable.
func (e *SearchExecutor) Search(ctx context.Context, query, lawName string, opts search.Options) ([]SearchResult, error) {
	laws := e.laws.Laws()
	if lawName != "" {
		law, ok := laws[lawName]
		if !ok {
			return nil, ErrLawNotFound
		}
		laws = models.Collection{lawName: law}
	}

	expansion := e.expander.Expand(ctx, query, opts.Weights)
	variants := append([]string{expansion.Keywords}, expansion.Questions...)

	var results []SearchResult
	for name, law := range laws {
		idx, err := e.builder.Build(ctx, name, law.Data)
		if err != nil {
			return nil, err
		}
		chunks, err := search.Search(query, variants, idx, opts)
		if err != nil {
			return nil, err
		}
		if chunks == "" {
			continue
		}
		results = append(results, SearchResult{LawName: name, Chunks: chunks})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].LawName < results[j].LawName })
	return results, nil
}
