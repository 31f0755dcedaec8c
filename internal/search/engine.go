package search

import (
	"errors"
	"sort"
	"strings"

	"github.com/lawhub-kr/statute-agent/internal/index"
	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/tfidf"
)

// ErrIndexCorrupted reports an index whose row vectors no longer line up
// with its chunk list. Such an index cannot be searched safely.
var ErrIndexCorrupted = errors.New("index rows out of sync with chunks")

const (
	DefaultTopK      = 3
	DefaultThreshold = 0.01

	// expandedBoost favors hits from vocabulary-expanded variants; the
	// expansion is seeded from statute titles, so it only applies when the
	// caller weights the title field at all.
	expandedBoost = 2.0
)

// Options controls one search. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	TopK      int
	Threshold float64
	Weights   models.SearchWeights
}

func DefaultOptions() Options {
	return Options{
		TopK:      DefaultTopK,
		Threshold: DefaultThreshold,
		Weights:   models.DefaultWeights(),
	}
}

// Search scores every chunk of idx against the query and its expanded
// variants and returns the best chunks joined by blank lines.
//
// Content and title similarities are computed per variant, boosted for
// expanded variants when the title field is weighted, then folded with an
// element-wise max so each chunk keeps its strongest signal. A title weight
// of exactly 0 disables the title field entirely rather than contributing a
// zero term. When no chunk clears the threshold the raw top-k is returned,
// so a searchable index never yields an empty result.
func Search(query string, variants []string, idx *index.DocumentIndex, opts Options) (string, error) {
	if idx == nil || len(idx.Chunks) == 0 {
		return "", nil
	}
	if len(idx.ContentRows) != len(idx.Chunks) || len(idx.TitleRows) != len(idx.Chunks) {
		return "", ErrIndexCorrupted
	}

	n := len(idx.Chunks)
	contentSims := make([]float64, n)
	titleSims := make([]float64, n)

	score := func(q string, boost float64) {
		qContent := idx.Content.Transform(q)
		qTitle := idx.Title.Transform(q)
		for i := 0; i < n; i++ {
			if s := tfidf.Cosine(qContent, idx.ContentRows[i]) * boost; s > contentSims[i] {
				contentSims[i] = s
			}
			if s := tfidf.Cosine(qTitle, idx.TitleRows[i]) * boost; s > titleSims[i] {
				titleSims[i] = s
			}
		}
	}

	score(query, 1.0)
	for _, v := range variants {
		if v == "" || v == query {
			score(v, 1.0)
			continue
		}
		boost := 1.0
		if opts.Weights.Title > 0 {
			boost = expandedBoost
		}
		score(v, boost)
	}

	combined := make([]float64, n)
	for i := 0; i < n; i++ {
		if opts.Weights.Title == 0 {
			combined[i] = contentSims[i]
		} else {
			combined[i] = contentSims[i]*opts.Weights.Content + titleSims[i]*opts.Weights.Title
		}
	}

	ranked := make([]int, n)
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return combined[ranked[a]] > combined[ranked[b]]
	})

	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > n {
		topK = n
	}

	var selected []string
	for _, i := range ranked[:topK] {
		if combined[i] > opts.Threshold {
			selected = append(selected, idx.Chunks[i])
		}
	}
	if len(selected) == 0 {
		for _, i := range ranked[:topK] {
			selected = append(selected, idx.Chunks[i])
		}
	}

	return strings.Join(selected, "\n\n"), nil
}
