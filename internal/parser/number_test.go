package parser

import (
	"strings"
	"testing"
)

func TestNormalizeArticleNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"제0010조", "10"},
		{"제42조의2", "42"},
		{"제1-5조", "1-5"},
		{"10", "10"},
		{"제 001조", "1"},
		{"관세법 제10조", "10"},
	}

	for _, tc := range cases {
		got, ok := NormalizeArticleNumber(tc.in)
		if !ok {
			t.Errorf("NormalizeArticleNumber(%q): unexpectedly invalid", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeArticleNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeArticleNumber_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		strings.Repeat("제", 51),
		"10의2",
		"부칙",
	} {
		if got, ok := NormalizeArticleNumber(in); ok {
			t.Errorf("NormalizeArticleNumber(%q) = %q, want invalid", in, got)
		}
	}
}

func TestNumberPolicies_DivergeOnSubArticles(t *testing.T) {
	// The segmenter keeps the 의N suffix; the lookup normalizer drops it.
	if got := headerNumber("10", "2"); got != "10의2" {
		t.Errorf("headerNumber = %q, want 10의2", got)
	}
	got, ok := NormalizeArticleNumber("제10조의2")
	if !ok || got != "10" {
		t.Errorf("NormalizeArticleNumber(제10조의2) = %q, %v, want 10", got, ok)
	}
}
