package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/agent"
	"github.com/lawhub-kr/statute-agent/internal/api"
	"github.com/lawhub-kr/statute-agent/internal/config"
	"github.com/lawhub-kr/statute-agent/internal/executor"
	"github.com/lawhub-kr/statute-agent/internal/expand"
	"github.com/lawhub-kr/statute-agent/internal/index"
	"github.com/lawhub-kr/statute-agent/internal/llm"
	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/store"
)

// fakeLLM stands in for the real model so the full HTTP stack can run in a
// unit test.
type fakeLLM struct {
	response string
}

func (f *fakeLLM) InvokeModel(_ context.Context, _ llm.LLMRequest) (*llm.LLMResponse, error) {
	return &llm.LLMResponse{Content: f.response, StopReason: "end_turn"}, nil
}

func (f *fakeLLM) InvokeModelWithRetry(ctx context.Context, req llm.LLMRequest) (*llm.LLMResponse, error) {
	return f.InvokeModel(ctx, req)
}

func setupTestAPI(t *testing.T) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()

	lawsDir := t.TempDir()
	laws := models.Collection{
		"관세법": {Type: models.LawTypeLaw, Data: []models.Article{
			{Number: "1", Title: "목적", Body: "이 법은 관세의 부과와 징수를 규율한다."},
			{Number: "241", Title: "수출입의 신고", Body: "물품을 수출입하려면 세관장에게 신고하여야 한다."},
		}},
	}
	raw, err := json.Marshal(laws)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(lawsDir, "customs.json"), raw, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.PackagesConfig{
		LawsDir:  lawsDir,
		Packages: []config.PackageRef{{ID: "customs", Name: "관세조사"}},
	}
	st := store.NewStore(&logger, cfg)
	if err := st.LoadPackages([]string{"customs"}); err != nil {
		t.Fatal(err)
	}

	fake := &fakeLLM{response: "관세법 제1조에 따라 관세를 부과한다."}
	builder := index.NewBuilder(&logger, nil)
	expander := expand.NewExpander(fake, &logger, nil)
	chatExec := executor.NewChatExecutor(expander, builder, agent.NewLawAgent(fake, &logger), agent.NewHeadAgent(fake, &logger), st, &logger)
	searchExec := executor.NewSearchExecutor(expander, builder, st, &logger)

	handler := api.NewHandler(chatExec, searchExec, st, &logger)
	container := restful.NewContainer()
	api.RegisterRoutes(container, handler)
	return container
}

func doJSON(t *testing.T, container *restful.Container, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)
	return recorder
}

func TestAPI_Health(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/health", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("status = %q", response.Status)
	}
}

func TestAPI_Laws(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/laws", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	var summaries []api.LawSummary
	if err := json.Unmarshal(recorder.Body.Bytes(), &summaries); err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 || summaries[0].Name != "관세법" || summaries[0].ArticleCount != 2 {
		t.Errorf("summaries = %+v", summaries)
	}
}

func TestAPI_GetArticle(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/laws/관세법/articles/제1조", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	var article models.Article
	if err := json.Unmarshal(recorder.Body.Bytes(), &article); err != nil {
		t.Fatal(err)
	}
	if article.Title != "목적" {
		t.Errorf("article = %+v", article)
	}

	recorder = doJSON(t, container, http.MethodGet, "/api/v1/laws/관세법/articles/제999조", nil)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("missing article status = %d", recorder.Code)
	}
}

func TestAPI_Search(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/search", api.SearchRequest{
		Query: "수출입 신고",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	var response api.SearchResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
	if len(response.Results) != 1 {
		t.Fatalf("results = %+v", response.Results)
	}
	if !strings.Contains(response.Results[0].Chunks, "[241]") {
		t.Errorf("chunks = %q", response.Results[0].Chunks)
	}
}

func TestAPI_Search_Validation(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/search", api.SearchRequest{})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("empty query status = %d", recorder.Code)
	}

	recorder = doJSON(t, container, http.MethodPost, "/api/v1/search", api.SearchRequest{
		Query:   "관세",
		LawName: "없는법",
	})
	if recorder.Code != http.StatusNotFound {
		t.Errorf("unknown law status = %d", recorder.Code)
	}
}

func TestAPI_Ask(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/ask", models.ChatRequest{
		RequestID: "test-001",
		Question:  "관세 부과의 근거는?",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	var result models.ChatResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.RequestID != "test-001" {
		t.Errorf("request id = %q", result.RequestID)
	}
	if result.Answer == "" {
		t.Error("expected a merged answer")
	}
	if len(result.Agents) != 1 || result.Agents[0].LawName != "관세법" {
		t.Errorf("agents = %+v", result.Agents)
	}
}

func TestAPI_Ask_Validation(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/ask", models.ChatRequest{})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("empty question status = %d", recorder.Code)
	}
}

func TestAPI_TextSearch(t *testing.T) {
	container := setupTestAPI(t)

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/search/text?term="+"%EC%84%B8%EA%B4%80%EC%9E%A5", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}

	var matches []store.TextMatch
	if err := json.Unmarshal(recorder.Body.Bytes(), &matches); err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Article.Number != "241" {
		t.Errorf("matches = %+v", matches)
	}
}
