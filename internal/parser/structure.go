package parser

import (
	"regexp"
	"strings"
)

var (
	chapterPattern    = regexp.MustCompile(`^제\s*[\d가-힣]+\s*장`)
	sectionPattern    = regexp.MustCompile(`^제\s*[\d가-힣]+\s*절`)
	subsectionPattern = regexp.MustCompile(`^제\s*[\d가-힣]+\s*관`)
)

// structureTracker keeps the chapter/section/subsection headings that are
// active while scanning a statute. Entering a chapter clears section and
// subsection; entering a section clears subsection.
type structureTracker struct {
	chapter    string
	section    string
	subsection string
}

// observe classifies a line as a structural heading. It updates the active
// context and reports whether the line was consumed as a heading.
func (t *structureTracker) observe(line string) bool {
	switch {
	case chapterPattern.MatchString(line):
		t.chapter = headingLabel(line, chapterPattern)
		t.section = ""
		t.subsection = ""
	case sectionPattern.MatchString(line):
		t.section = headingLabel(line, sectionPattern)
		t.subsection = ""
	case subsectionPattern.MatchString(line):
		t.subsection = headingLabel(line, subsectionPattern)
	default:
		return false
	}
	return true
}

// compoundTitle joins the non-empty active headings with the article title,
// the separator the segmenter later de-duplicates on.
func (t *structureTracker) compoundTitle(articleTitle string) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{t.chapter, t.section, t.subsection, articleTitle} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// headingLabel strips the leading marker token (제1장, 제2절, ...) and returns
// the heading's own label text.
func headingLabel(line string, marker *regexp.Regexp) string {
	return strings.TrimSpace(marker.ReplaceAllString(line, ""))
}
