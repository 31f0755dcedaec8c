package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/config"
	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/parser"
)

// PackageInfo summarizes one loadable statute package.
type PackageInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	LawCount     int      `json:"law_count"`
	ArticleCount int      `json:"article_count"`
	Laws         []string `json:"laws"`
}

// Store holds the loaded statute collection and resolves package files from
// the laws directory. Loading replaces the collection wholesale; readers see
// either the old or the new set, never a mix.
type Store struct {
	logger *zerolog.Logger
	cfg    *config.PackagesConfig

	mu   sync.RWMutex
	laws models.Collection
}

func NewStore(logger *zerolog.Logger, cfg *config.PackagesConfig) *Store {
	return &Store{logger: logger, cfg: cfg, laws: models.Collection{}}
}

// AvailablePackages scans the laws directory and reports every package file
// with its statute and article counts. Unreadable files are logged and
// skipped.
func (s *Store) AvailablePackages() ([]PackageInfo, error) {
	paths, err := filepath.Glob(filepath.Join(s.cfg.LawsDir, "*.json"))
	if err != nil {
		return nil, err
	}

	var infos []PackageInfo
	for _, path := range paths {
		id := strings.TrimSuffix(filepath.Base(path), ".json")
		laws, err := readPackageFile(path)
		if err != nil {
			s.logger.Warn().Err(err).Str("package", id).Msg("skipping unreadable package file")
			continue
		}

		info := PackageInfo{ID: id, Name: s.cfg.Name(id), LawCount: len(laws)}
		for name, law := range laws {
			info.Laws = append(info.Laws, name)
			info.ArticleCount += len(law.Data)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// LoadPackages reads the named package files and swaps them in as the
// current collection. A law appearing in several packages keeps the last
// loaded copy.
func (s *Store) LoadPackages(ids []string) error {
	merged := models.Collection{}
	for _, id := range ids {
		path := filepath.Join(s.cfg.LawsDir, id+".json")
		laws, err := readPackageFile(path)
		if err != nil {
			return fmt.Errorf("loading package %s: %w", id, err)
		}
		for name, law := range laws {
			merged[name] = law
		}
	}

	s.mu.Lock()
	s.laws = merged
	s.mu.Unlock()

	s.logger.Info().Strs("packages", ids).Int("laws", len(merged)).Msg("packages loaded")
	return nil
}

// AddLaw inserts or replaces one statute, for user uploads and API-ingested
// laws.
func (s *Store) AddLaw(name string, law models.LawSet) {
	s.mu.Lock()
	s.laws[name] = law
	s.mu.Unlock()
}

// Laws returns a snapshot of the loaded collection.
func (s *Store) Laws() models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(models.Collection, len(s.laws))
	for name, law := range s.laws {
		out[name] = law
	}
	return out
}

// FindArticle looks an article up by any citation form ("제10조", "제 010조",
// "10"). Both sides are normalized. Stored sub-article numbers ("10의2") fail
// normalization and are skipped, so sub-articles are unreachable by number
// lookup; only full-text search finds them.
func (s *Store) FindArticle(lawName, numberExpr string) (models.Article, bool) {
	want, ok := parser.NormalizeArticleNumber(numberExpr)
	if !ok {
		return models.Article{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	law, ok := s.laws[lawName]
	if !ok {
		return models.Article{}, false
	}
	for _, a := range law.Data {
		if got, ok := parser.NormalizeArticleNumber(a.Number); ok && got == want {
			return a, true
		}
	}
	return models.Article{}, false
}

// FallbackArticle wraps an unsegmentable document as a single pseudo-article
// so it stays searchable.
func FallbackArticle(body string) models.Article {
	return models.Article{Number: "전체", Title: "본문", Body: body}
}

// TextMatch is one raw substring hit.
type TextMatch struct {
	LawName string         `json:"law_name"`
	Article models.Article `json:"article"`
}

// SearchText does a case-insensitive substring scan over number, title and
// body of every article in the named laws (all laws when names is empty).
func (s *Store) SearchText(term string, names []string) []TextMatch {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(names) == 0 {
		for name := range s.laws {
			names = append(names, name)
		}
	}

	var matches []TextMatch
	for _, name := range names {
		law, ok := s.laws[name]
		if !ok {
			continue
		}
		for _, a := range law.Data {
			haystack := strings.ToLower(a.Number + " " + a.Title + " " + a.Body)
			if strings.Contains(haystack, term) {
				matches = append(matches, TextMatch{LawName: name, Article: a})
			}
		}
	}
	return matches
}

func readPackageFile(path string) (models.Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var laws models.Collection
	if err := json.Unmarshal(raw, &laws); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return laws, nil
}
