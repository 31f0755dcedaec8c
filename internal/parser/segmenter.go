package parser

import (
	"regexp"
	"strings"

	"github.com/lawhub-kr/statute-agent/internal/models"
)

// annexPattern matches the 부칙 marker, with or without brackets. Everything
// after it is supplementary amendment history and is excluded from output.
var annexPattern = regexp.MustCompile(`^\s*[【\[]?\s*부\s*칙\s*[】\]]?`)

type articleBuffer struct {
	number string
	title  string
	lines  []string
}

func (b *articleBuffer) append(line string) {
	b.lines = append(b.lines, line)
}

func (b *articleBuffer) article() models.Article {
	return models.Article{
		Number: b.number,
		Title:  b.title,
		Body:   strings.TrimSpace(strings.Join(b.lines, "\n")),
	}
}

// Segment splits raw statute text into an ordered article list. It is a
// best-effort parser: malformed input degrades to fewer (possibly zero)
// articles, never an error. Text before the first article header and
// everything after the 부칙 marker are dropped.
func Segment(text string) []models.Article {
	var (
		tracker  structureTracker
		articles []models.Article
		current  *articleBuffer
	)

	finalize := func() {
		if current != nil {
			articles = append(articles, current.article())
			current = nil
		}
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			// Keep paragraph breaks inside an open article.
			if current != nil {
				current.append("")
			}
			continue
		}

		if annexPattern.MatchString(line) {
			finalize()
			break
		}

		if tracker.observe(line) {
			// A structural heading always closes the preceding article.
			finalize()
			continue
		}

		if m := matchArticleHeader(line); m != nil {
			if _, ok := rejectHeader(m); !ok {
				// A citation, not a boundary: it belongs to the open
				// article's body. Before any article it is dropped.
				if current != nil {
					current.append(line)
				}
				continue
			}

			finalize()
			current = &articleBuffer{
				number: headerNumber(m.number, m.sub),
				title:  normalizeWhitespace(dedupeTitle(tracker.compoundTitle(m.title))),
			}
			if m.rest != "" {
				current.append(m.rest)
			}
			continue
		}

		if current != nil {
			current.append(line)
		}
	}

	finalize()
	return articles
}

// headerNumber canonicalizes an article number at segmentation time: spaces
// removed, leading zeros stripped per hyphenated segment, and any 의N suffix
// KEPT ("제10조의2" -> "10의2"). This deliberately differs from
// NormalizeArticleNumber, which strips the suffix for lookup comparison; the
// two policies serve different callers and must not be merged.
func headerNumber(number, sub string) string {
	number = strings.ReplaceAll(number, " ", "")
	parts := strings.Split(number, "-")
	for i, p := range parts {
		trimmed := strings.TrimLeft(p, "0")
		if trimmed == "" {
			trimmed = "0"
		}
		parts[i] = trimmed
	}
	number = strings.Join(parts, "-")
	if sub != "" {
		number += "의" + sub
	}
	return number
}

// dedupeTitle removes repeated comma-separated fragments while keeping order,
// so "총칙, 총칙, 목적" collapses to "총칙, 목적".
func dedupeTitle(title string) string {
	seen := make(map[string]bool)
	var unique []string
	for _, part := range strings.Split(title, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		unique = append(unique, part)
	}
	return strings.Join(unique, ", ")
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "　", " ")), " ")
}
