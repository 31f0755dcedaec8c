package index

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/tfidf"
)

// DocumentIndex is the searchable form of one statute: rendered chunks plus
// fitted vectorizers and row vectors for the content and title fields.
type DocumentIndex struct {
	Chunks      []string          `json:"chunks"`
	Titles      []string          `json:"titles"`
	Content     *tfidf.Vectorizer `json:"content"`
	Title       *tfidf.Vectorizer `json:"title"`
	ContentRows []tfidf.Vector    `json:"content_rows"`
	TitleRows   []tfidf.Vector    `json:"title_rows"`
}

// Snapshotter persists built indexes outside the process. Implementations
// are best effort; the builder treats every error as a cache miss.
type Snapshotter interface {
	Load(ctx context.Context, key string) (*DocumentIndex, error)
	Save(ctx context.Context, key string, idx *DocumentIndex) error
}

const defaultCacheCapacity = 64

// Builder vectorizes statutes and memoizes the result by content hash.
// Rebuilding the same statute text always hits the in-process cache; editing
// one article changes the hash and forces a rebuild.
type Builder struct {
	logger   *zerolog.Logger
	snapshot Snapshotter

	mu       sync.Mutex
	cache    map[string]*DocumentIndex
	order    []string
	capacity int
}

// NewBuilder creates a builder. snapshot may be nil to disable the external
// snapshot layer.
func NewBuilder(logger *zerolog.Logger, snapshot Snapshotter) *Builder {
	return &Builder{
		logger:   logger,
		snapshot: snapshot,
		cache:    make(map[string]*DocumentIndex),
		capacity: defaultCacheCapacity,
	}
}

// Build returns the index for the given statute, from cache when the content
// is unchanged. Empty article lists yield a nil index and no error.
func (b *Builder) Build(ctx context.Context, lawName string, articles []models.Article) (*DocumentIndex, error) {
	if len(articles) == 0 {
		return nil, nil
	}

	key, err := cacheKey(lawName, articles)
	if err != nil {
		return nil, fmt.Errorf("hashing %s: %w", lawName, err)
	}

	b.mu.Lock()
	if idx, ok := b.cache[key]; ok {
		b.mu.Unlock()
		return idx, nil
	}
	b.mu.Unlock()

	if b.snapshot != nil {
		if idx, err := b.snapshot.Load(ctx, key); err == nil && idx != nil {
			b.logger.Debug().Str("law", lawName).Msg("index restored from snapshot")
			b.store(key, idx)
			return idx, nil
		}
	}

	idx := build(articles)
	b.logger.Info().
		Str("law", lawName).
		Int("chunks", len(idx.Chunks)).
		Int("vocabulary", idx.Content.Size()).
		Msg("index built")

	b.store(key, idx)

	if b.snapshot != nil {
		if err := b.snapshot.Save(ctx, key, idx); err != nil {
			b.logger.Warn().Err(err).Str("law", lawName).Msg("index snapshot save failed")
		}
	}

	// Concurrent builders may have raced; the first stored index wins so all
	// callers share one instance.
	b.mu.Lock()
	idx = b.cache[key]
	b.mu.Unlock()
	return idx, nil
}

func (b *Builder) store(key string, idx *DocumentIndex) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.cache[key]; ok {
		return
	}
	if len(b.order) >= b.capacity {
		oldest := b.order[0]
		b.order = b.order[1:]
		delete(b.cache, oldest)
	}
	b.cache[key] = idx
	b.order = append(b.order, key)
}

// cacheKey combines the statute name with a digest of its canonical JSON
// form, so identical content always maps to the same key.
func cacheKey(lawName string, articles []models.Article) (string, error) {
	raw, err := json.Marshal(articles)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return lawName + ":" + hex.EncodeToString(sum[:]), nil
}

func build(articles []models.Article) *DocumentIndex {
	chunks := make([]string, 0, len(articles))
	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		chunks = append(chunks, renderChunk(a))
		// The title vectorizer cannot fit an empty document; a lone space
		// keeps row positions aligned with the chunk list.
		title := a.Title
		if title == "" {
			title = " "
		}
		titles = append(titles, title)
	}

	contentVec, contentRows := tfidf.Fit(chunks)
	titleVec, titleRows := tfidf.Fit(titles)

	return &DocumentIndex{
		Chunks:      chunks,
		Titles:      titles,
		Content:     contentVec,
		Title:       titleVec,
		ContentRows: contentRows,
		TitleRows:   titleRows,
	}
}

// renderChunk flattens an article into its searchable text form. The bracket
// markers keep article numbers matchable as literal query terms.
func renderChunk(a models.Article) string {
	return fmt.Sprintf("[%s] (%s) %s", a.Number, a.Title, a.Body)
}
