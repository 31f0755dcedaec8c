package models

import (
	"time"
)

type LawType string

const (
	LawTypeLaw        LawType = "law"
	LawTypeAdmin      LawType = "admin"
	LawTypeThreeStage LawType = "three_stage"
	LawTypeUserUpload LawType = "user_upload"
)

// Article is one numbered statute provision. The JSON tags match the corpus
// files produced by the downstream collection tooling, so they stay Korean.
type Article struct {
	Number string `json:"조번호"`
	Title  string `json:"제목"`
	Body   string `json:"내용"`
}

// LawSet is one statute (or administrative rule) with its article list.
type LawSet struct {
	Type LawType   `json:"type"`
	Data []Article `json:"data"`
}

// Collection maps law name to its article set, the shape of a package file.
type Collection map[string]LawSet

// SearchWeights blends the content and title indexes. The weights do not have
// to sum to 1. Title == 0.0 is a sentinel: the title index is excluded from
// scoring entirely, not merely multiplied by zero.
type SearchWeights struct {
	Content float64 `json:"content"`
	Title   float64 `json:"title"`
}

func DefaultWeights() SearchWeights {
	return SearchWeights{Content: 1.0, Title: 0.0}
}

// Input message

type ChatRequest struct {
	RequestID string         `json:"request_id"`
	Question  string         `json:"question"`
	History   string         `json:"history,omitempty"`
	Weights   *SearchWeights `json:"weights,omitempty"`
}

// AgentAnswer is one per-law expert answer, tagged with its law so the
// collector can run in completion order.
type AgentAnswer struct {
	LawName  string        `json:"law_name"`
	Answer   string        `json:"answer"`
	Err      string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// ChatResult is the merged output of a fan-out run.
type ChatResult struct {
	RequestID string        `json:"request_id"`
	Answer    string        `json:"answer"`
	Agents    []AgentAnswer `json:"agents"`
	Expanded  string        `json:"expanded_keywords,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
