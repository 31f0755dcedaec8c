package expand

import (
	"regexp"
	"sort"

	"github.com/lawhub-kr/statute-agent/internal/models"
)

var (
	bracketPattern    = regexp.MustCompile(`[()\[\]{}]`)
	hangulWordPattern = regexp.MustCompile(`[가-힣]{2,}`)
)

// TitleTerms collects the vocabulary of article titles across every loaded
// statute, deduplicated and sorted. No stopword filtering: in statute titles
// even generic words like 방법 or 기준 carry legal meaning.
func TitleTerms(laws models.Collection) []string {
	seen := make(map[string]bool)
	for _, law := range laws {
		for _, article := range law.Data {
			if article.Title == "" {
				continue
			}
			cleaned := bracketPattern.ReplaceAllString(article.Title, "")
			for _, term := range hangulWordPattern.FindAllString(cleaned, -1) {
				seen[term] = true
			}
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
