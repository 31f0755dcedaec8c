package executor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/expand"
	"github.com/lawhub-kr/statute-agent/internal/index"
	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/search"
)

// QueryExpander rewrites a question into retrieval variants
type QueryExpander interface {
	Expand(ctx context.Context, query string, weights models.SearchWeights) expand.Expansion
}

// IndexBuilder vectorizes one statute, cached by content
type IndexBuilder interface {
	Build(ctx context.Context, lawName string, articles []models.Article) (*index.DocumentIndex, error)
}

// Answerer produces the per-statute expert answer
type Answerer interface {
	Answer(ctx context.Context, lawName, question, history, articles string) (string, error)
}

// Merger folds expert answers into the final one
type Merger interface {
	Merge(ctx context.Context, question, history string, answers []models.AgentAnswer) (string, error)
}

// LawSource provides the currently loaded statutes
type LawSource interface {
	Laws() models.Collection
}

const defaultMaxWorkers = 5

type ChatExecutor struct {
	expander QueryExpander
	builder  IndexBuilder
	answerer Answerer
	merger   Merger
	laws     LawSource

	maxWorkers int
	logger     *zerolog.Logger
}

func NewChatExecutor(
	expander QueryExpander,
	builder IndexBuilder,
	answerer Answerer,
	merger Merger,
	laws LawSource,
	logger *zerolog.Logger,
) *ChatExecutor {
	return &ChatExecutor{
		expander:   expander,
		builder:    builder,
		answerer:   answerer,
		merger:     merger,
		laws:       laws,
		maxWorkers: defaultMaxWorkers,
		logger:     logger,
	}
}

// Execute answers one question: expand the query once, fan the retrieval and
// per-statute answering out across every loaded statute, then merge. At most
// maxWorkers statutes are in flight at a time and answers are collected in
// completion order; a failed statute becomes an errored AgentAnswer rather
// than failing the request.
func (e *ChatExecutor) Execute(ctx context.Context, req models.ChatRequest) models.ChatResult {
	e.logger.Info().Str("requestID", req.RequestID).Msg("starting chat execution")

	weights := models.DefaultWeights()
	if req.Weights != nil {
		weights = *req.Weights
	}

	expansion := e.expander.Expand(ctx, req.Question, weights)
	variants := append([]string{expansion.Keywords}, expansion.Questions...)

	laws := e.laws.Laws()
	answers := make(chan models.AgentAnswer, len(laws))
	sem := make(chan struct{}, e.maxWorkers)
	var wg sync.WaitGroup

	for lawName, law := range laws {
		wg.Add(1)
		go func(lawName string, law models.LawSet) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			answers <- e.answerOne(ctx, lawName, law, req, variants, weights)
		}(lawName, law)
	}

	wg.Wait()
	close(answers)

	var collected []models.AgentAnswer
	for a := range answers {
		collected = append(collected, a)
	}

	final, err := e.merger.Merge(ctx, req.Question, req.History, collected)
	if err != nil {
		e.logger.Error().Err(err).Str("requestID", req.RequestID).Msg("final merge failed")
		final = "최종 답변 생성 중 오류가 발생했습니다: " + err.Error()
	}

	e.logger.Info().
		Str("requestID", req.RequestID).
		Int("experts", len(collected)).
		Msg("chat execution complete")

	return models.ChatResult{
		RequestID: req.RequestID,
		Answer:    final,
		Agents:    collected,
		Expanded:  expansion.Keywords,
		CreatedAt: time.Now(),
	}
}

func (e *ChatExecutor) answerOne(ctx context.Context, lawName string, law models.LawSet, req models.ChatRequest, variants []string, weights models.SearchWeights) models.AgentAnswer {
	started := time.Now()
	fail := func(err error) models.AgentAnswer {
		e.logger.Warn().Err(err).Str("law", lawName).Msg("law agent failed")
		return models.AgentAnswer{LawName: lawName, Err: err.Error(), Duration: time.Since(started)}
	}

	idx, err := e.builder.Build(ctx, lawName, law.Data)
	if err != nil {
		return fail(err)
	}

	opts := search.DefaultOptions()
	opts.Weights = weights
	articles, err := search.Search(req.Question, variants, idx, opts)
	if err != nil {
		return fail(err)
	}

	answer, err := e.answerer.Answer(ctx, lawName, req.Question, req.History, articles)
	if err != nil {
		return fail(err)
	}

	return models.AgentAnswer{LawName: lawName, Answer: answer, Duration: time.Since(started)}
}
