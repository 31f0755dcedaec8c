package parser

import (
	"regexp"
	"strings"
)

// articlePattern matches the header grammar 제<number>조(의<sub>)?(<title>)<rest>,
// anchored at line start (lines are trimmed before matching). Mid-line
// citations never open an article. Matching the grammar is still not enough:
// statutes also cite other articles at line start in exactly this shape
// ("제14조(관세 등의 부과)에 따라..."), so every match runs through the
// rejection cascade below.
var articlePattern = regexp.MustCompile(`^제\s*(\d+(?:-\d+)?(?:의\d+)*)\s*조(?:의(\d+))?\s*\(([^)]+)\)(.*)`)

// headerMatch carries the captured groups of an article-header candidate.
type headerMatch struct {
	number string
	sub    string
	title  string
	rest   string
}

func matchArticleHeader(line string) *headerMatch {
	m := articlePattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return &headerMatch{
		number: m[1],
		sub:    m[2],
		title:  strings.TrimSpace(m[3]),
		rest:   strings.TrimSpace(m[4]),
	}
}

// sentenceEndings are verb endings that mark a bracketed "title" as a
// sentence fragment rather than a noun-phrase article title. Real article
// titles are noun phrases; a sentence inside the brackets means the match is
// quoted or cited text. The list was collected from observed false positives
// and is part of the segmentation contract.
var sentenceEndings = []string{
	"한다", "하여야", "해야", "된다", "받는다", "따른다",
	"의한다", "정한다", "본다", "처리한다", "관리한다",
	"이다", "것이다", "않는다", "같다", "다르다",
}

// listingPatterns match enumeration connectives directly after the closing
// parenthesis: "제37조(특허) 및 제38조...", "제51조부터 제67조까지".
var listingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*및\s*`),
	regexp.MustCompile(`^\s*,\s*`),
	regexp.MustCompile(`^\s*또는\s*`),
	regexp.MustCompile(`^\s*내지\s*`),
	regexp.MustCompile(`^\s*부터\s*`),
	regexp.MustCompile(`^\s*까지\s*`),
	regexp.MustCompile(`^\s*ㆍ\s*`),
	regexp.MustCompile(`^\s*~\s*`),
}

// connectivePatterns match particle+verb continuations that mark a citation:
// "...에 따라", "...의 규정", "...을 준용". The bare particle patterns at the
// end (의/을/를/에/에서 followed by more text) catch citations the specific
// verb forms miss.
var connectivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*의\s*규정`),
	regexp.MustCompile(`^\s*에\s*따라`),
	regexp.MustCompile(`^\s*에\s*의하여`),
	regexp.MustCompile(`^\s*을\s*준용`),
	regexp.MustCompile(`^\s*를\s*준용`),
	regexp.MustCompile(`^\s*에\s*의한`),
	regexp.MustCompile(`^\s*에\s*규정`),
	regexp.MustCompile(`^\s*의\s*개정`),
	regexp.MustCompile(`^\s*에\s*해당`),
	regexp.MustCompile(`^\s*에\s*따른`),
	regexp.MustCompile(`^\s*을\s*적용`),
	regexp.MustCompile(`^\s*를\s*적용`),
	regexp.MustCompile(`^\s*의\s*적용`),
	regexp.MustCompile(`^\s*에서\s*정한`),
	regexp.MustCompile(`^\s*의\s+`),
	regexp.MustCompile(`^\s*을\s+`),
	regexp.MustCompile(`^\s*를\s+`),
	regexp.MustCompile(`^\s*에\s+`),
	regexp.MustCompile(`^\s*에서\s+`),
}

// subUnitPattern matches a citation of a paragraph or item of another
// article: "제3항", "제2호".
var subUnitPattern = regexp.MustCompile(`^\s*제\s*\d+\s*[항호]`)

var subItemMarkers = []string{"항", "호", "목"}

// rejectRule is one named predicate of the ordered cascade. The first rule
// that fires rejects the candidate; none firing accepts it as a real header.
type rejectRule struct {
	name  string
	match func(m *headerMatch) bool
}

var rejectRules = []rejectRule{
	{name: "sub-item-continuation", match: isSubItemContinuation},
	{name: "sentence-title", match: hasSentenceTitle},
	{name: "reference-continuation", match: isReferenceContinuation},
}

// rejectHeader runs the cascade and returns the name of the rule that
// rejected the candidate, or ok=true when the line is a genuine header.
func rejectHeader(m *headerMatch) (rule string, ok bool) {
	for _, r := range rejectRules {
		if r.match(m) {
			return r.name, false
		}
	}
	return "", true
}

// isSubItemContinuation fires when the text after the header cites a nested
// sub-unit (항/호/목) before any parenthesis, e.g. a 제N항 reference chained
// onto the match.
func isSubItemContinuation(m *headerMatch) bool {
	prefix := m.rest
	if i := strings.Index(prefix, "("); i >= 0 {
		prefix = prefix[:i]
	}
	prefix = strings.TrimSpace(prefix)
	if !strings.HasPrefix(prefix, "제") {
		return false
	}
	for _, marker := range subItemMarkers {
		if strings.Contains(prefix, marker) {
			return true
		}
	}
	return false
}

func hasSentenceTitle(m *headerMatch) bool {
	title := strings.TrimSpace(m.title)
	for _, ending := range sentenceEndings {
		if strings.HasSuffix(title, ending) {
			return true
		}
	}
	return false
}

func isReferenceContinuation(m *headerMatch) bool {
	for _, p := range listingPatterns {
		if p.MatchString(m.rest) {
			return true
		}
	}
	for _, p := range connectivePatterns {
		if p.MatchString(m.rest) {
			return true
		}
	}
	return subUnitPattern.MatchString(m.rest)
}
