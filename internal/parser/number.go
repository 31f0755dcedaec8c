package parser

import (
	"regexp"
	"strconv"
	"strings"
)

const maxNumberInputLen = 50

var (
	numberPattern     = regexp.MustCompile(`제?(\d+(?:-\d+)?)조`)
	bareNumberPattern = regexp.MustCompile(`^\d+(?:-\d+)?$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeArticleNumber canonicalizes an article number for comparison:
// "제0010조" -> "10", "제42조의2" -> "42", "제1-5조" -> "1-5", "10" -> "10".
// Any 의N suffix is DROPPED — this is the lookup-side policy, used to match
// queries like "관세법 제10조" against stored articles. The segmenter's
// headerNumber keeps the suffix; the two are intentionally distinct.
// Inputs longer than 50 characters are rejected as corrupt.
func NormalizeArticleNumber(s string) (string, bool) {
	if s == "" || len(s) > maxNumberInputLen {
		return "", false
	}

	s = whitespacePattern.ReplaceAllString(strings.TrimSpace(s), "")

	if m := numberPattern.FindStringSubmatch(s); m != nil {
		return stripZeroPadding(m[1]), true
	}

	// Already-normalized stored data carries bare numbers without 제/조.
	if bareNumberPattern.MatchString(s) {
		return stripZeroPadding(s), true
	}

	return "", false
}

func stripZeroPadding(number string) string {
	parts := strings.Split(number, "-")
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return number
		}
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}
