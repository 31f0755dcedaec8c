package api

import (
	"github.com/lawhub-kr/statute-agent/internal/executor"
	"github.com/lawhub-kr/statute-agent/internal/models"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type LoadPackagesRequest struct {
	IDs []string `json:"ids"`
}

type LawSummary struct {
	Name         string         `json:"name"`
	Type         models.LawType `json:"type"`
	ArticleCount int            `json:"article_count"`
}

type SearchRequest struct {
	Query     string                `json:"query"`
	LawName   string                `json:"law_name,omitempty"`
	TopK      int                   `json:"top_k,omitempty"`
	Threshold *float64              `json:"threshold,omitempty"`
	Weights   *models.SearchWeights `json:"weights,omitempty"`
}

type SearchResponse struct {
	Query   string                  `json:"query"`
	Results []executor.SearchResult `json:"results"`
}
