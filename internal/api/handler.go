package api

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/api/middleware"
	"github.com/lawhub-kr/statute-agent/internal/executor"
	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/search"
	"github.com/lawhub-kr/statute-agent/internal/store"
)

type Handler struct {
	chat     *executor.ChatExecutor
	searcher *executor.SearchExecutor
	store    *store.Store
	logger   *zerolog.Logger
}

func NewHandler(chat *executor.ChatExecutor, searcher *executor.SearchExecutor, st *store.Store, logger *zerolog.Logger) *Handler {
	return &Handler{
		chat:     chat,
		searcher: searcher,
		store:    st,
		logger:   logger,
	}
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// GET /api/v1/packages
func (h *Handler) Packages(req *restful.Request, resp *restful.Response) {
	infos, err := h.store.AvailablePackages()
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list packages")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}
	resp.WriteHeaderAndEntity(http.StatusOK, infos)
}

// POST /api/v1/packages/load
// Body: LoadPackagesRequest
func (h *Handler) LoadPackages(req *restful.Request, resp *restful.Response) {
	var loadReq LoadPackagesRequest
	if err := req.ReadEntity(&loadReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if len(loadReq.IDs) == 0 {
		middleware.HandleError(resp, fmt.Errorf("no package ids given"), http.StatusBadRequest)
		return
	}

	if err := h.store.LoadPackages(loadReq.IDs); err != nil {
		h.logger.Error().Err(err).Strs("ids", loadReq.IDs).Msg("Failed to load packages")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.Laws(req, resp)
}

// GET /api/v1/laws
func (h *Handler) Laws(req *restful.Request, resp *restful.Response) {
	laws := h.store.Laws()

	summaries := make([]LawSummary, 0, len(laws))
	for name, law := range laws {
		summaries = append(summaries, LawSummary{
			Name:         name,
			Type:         law.Type,
			ArticleCount: len(law.Data),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })

	resp.WriteHeaderAndEntity(http.StatusOK, summaries)
}

// GET /api/v1/laws/{law_name}/articles/{number}
func (h *Handler) GetArticle(req *restful.Request, resp *restful.Response) {
	lawName := req.PathParameter("law_name")
	number := req.PathParameter("number")

	article, ok := h.store.FindArticle(lawName, number)
	if !ok {
		middleware.HandleError(resp, fmt.Errorf("article %s of %s not found", number, lawName), http.StatusNotFound)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, article)
}

// POST /api/v1/search
// Body: SearchRequest
func (h *Handler) Search(req *restful.Request, resp *restful.Response) {
	var searchReq SearchRequest
	if err := req.ReadEntity(&searchReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if searchReq.Query == "" {
		middleware.HandleError(resp, fmt.Errorf("query is required"), http.StatusBadRequest)
		return
	}

	opts := search.DefaultOptions()
	if searchReq.TopK > 0 {
		opts.TopK = searchReq.TopK
	}
	if searchReq.Threshold != nil {
		opts.Threshold = *searchReq.Threshold
	}
	if searchReq.Weights != nil {
		opts.Weights = *searchReq.Weights
	}

	ctx := req.Request.Context()
	results, err := h.searcher.Search(ctx, searchReq.Query, searchReq.LawName, opts)
	if err != nil {
		if err == executor.ErrLawNotFound {
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Str("query", searchReq.Query).Msg("Search failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, SearchResponse{Query: searchReq.Query, Results: results})
}

// POST /api/v1/ask
// Body: models.ChatRequest
// Returns: models.ChatResult
func (h *Handler) Ask(req *restful.Request, resp *restful.Response) {
	var chatReq models.ChatRequest
	if err := req.ReadEntity(&chatReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if chatReq.Question == "" {
		middleware.HandleError(resp, fmt.Errorf("question is required"), http.StatusBadRequest)
		return
	}
	if chatReq.RequestID == "" {
		chatReq.RequestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
	}

	h.logger.Info().
		Str("request_id", chatReq.RequestID).
		Msg("Start chat")

	ctx := req.Request.Context()
	result := h.chat.Execute(ctx, chatReq)

	h.logger.Info().
		Str("request_id", result.RequestID).
		Int("experts", len(result.Agents)).
		Msg("Chat complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/search/text?term=...&law=...
func (h *Handler) SearchText(req *restful.Request, resp *restful.Response) {
	term := req.QueryParameter("term")
	if term == "" {
		middleware.HandleError(resp, fmt.Errorf("term is required"), http.StatusBadRequest)
		return
	}

	var names []string
	if law := req.QueryParameter("law"); law != "" {
		names = []string{law}
	}

	matches := h.store.SearchText(term, names)
	if matches == nil {
		matches = []store.TextMatch{}
	}
	resp.WriteHeaderAndEntity(http.StatusOK, matches)
}
