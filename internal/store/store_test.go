package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/config"
	"github.com/lawhub-kr/statute-agent/internal/models"
)

func writePackage(t *testing.T, dir, id string, laws models.Collection) {
	t.Helper()
	raw, err := json.Marshal(laws)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, id+".json"), raw, 0644); err != nil {
		t.Fatal(err)
	}
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	logger := zerolog.Nop()
	cfg := &config.PackagesConfig{
		LawsDir: dir,
		Packages: []config.PackageRef{
			{ID: "customs", Name: "관세조사"},
		},
	}
	return NewStore(&logger, cfg), dir
}

func customsPackage() models.Collection {
	return models.Collection{
		"관세법": {Type: models.LawTypeLaw, Data: []models.Article{
			{Number: "1", Title: "목적", Body: "관세의 부과와 징수."},
			{Number: "10의2", Title: "특례", Body: "신고의 특례."},
		}},
	}
}

func TestAvailablePackages(t *testing.T) {
	s, dir := newTestStore(t)
	writePackage(t, dir, "customs", customsPackage())

	infos, err := s.AvailablePackages()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 {
		t.Fatalf("packages = %d, want 1", len(infos))
	}
	info := infos[0]
	if info.ID != "customs" || info.Name != "관세조사" {
		t.Errorf("info = %+v", info)
	}
	if info.LawCount != 1 || info.ArticleCount != 2 {
		t.Errorf("counts = %d laws, %d articles", info.LawCount, info.ArticleCount)
	}
}

func TestLoadPackages_ReplacesCollection(t *testing.T) {
	s, dir := newTestStore(t)
	writePackage(t, dir, "customs", customsPackage())
	writePackage(t, dir, "refund", models.Collection{
		"환급특례법": {Type: models.LawTypeLaw, Data: []models.Article{
			{Number: "1", Title: "목적", Body: "환급 절차."},
		}},
	})

	if err := s.LoadPackages([]string{"customs"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Laws()["관세법"]; !ok {
		t.Fatal("customs package not loaded")
	}

	if err := s.LoadPackages([]string{"refund"}); err != nil {
		t.Fatal(err)
	}
	laws := s.Laws()
	if _, ok := laws["관세법"]; ok {
		t.Error("previous package must be replaced, not merged")
	}
	if _, ok := laws["환급특례법"]; !ok {
		t.Error("refund package missing")
	}
}

func TestLoadPackages_MissingFile(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.LoadPackages([]string{"nope"}); err == nil {
		t.Fatal("expected an error for a missing package file")
	}
}

func TestFindArticle_NormalizesBothSides(t *testing.T) {
	s, dir := newTestStore(t)
	writePackage(t, dir, "customs", customsPackage())
	if err := s.LoadPackages([]string{"customs"}); err != nil {
		t.Fatal(err)
	}

	for _, expr := range []string{"제1조", "제 001조", "1"} {
		a, ok := s.FindArticle("관세법", expr)
		if !ok {
			t.Errorf("FindArticle(%q) missed", expr)
			continue
		}
		if a.Title != "목적" {
			t.Errorf("FindArticle(%q) = %+v", expr, a)
		}
	}

	// 제10조의2 is a distinct article; its base citation must not match it.
	if _, ok := s.FindArticle("관세법", "제10조"); ok {
		t.Error("base citation matched a 의N article")
	}

	if _, ok := s.FindArticle("관세법", "제99조"); ok {
		t.Error("unknown article matched")
	}
	if _, ok := s.FindArticle("없는법", "제1조"); ok {
		t.Error("unknown law matched")
	}
}

func TestSearchText(t *testing.T) {
	s, dir := newTestStore(t)
	writePackage(t, dir, "customs", customsPackage())
	if err := s.LoadPackages([]string{"customs"}); err != nil {
		t.Fatal(err)
	}

	matches := s.SearchText("부과", nil)
	if len(matches) != 1 || matches[0].Article.Number != "1" {
		t.Errorf("matches = %+v", matches)
	}
	if got := s.SearchText("", nil); got != nil {
		t.Errorf("blank term must return nothing, got %+v", got)
	}
}

func TestAddLawAndFallbackArticle(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddLaw("업로드법", models.LawSet{
		Type: models.LawTypeUserUpload,
		Data: []models.Article{FallbackArticle("조문 구조가 없는 원문 전체.")},
	})

	a, ok := s.FindArticle("업로드법", "전체")
	if ok {
		t.Fatalf("pseudo-article must not resolve through number lookup, got %+v", a)
	}
	laws := s.Laws()
	if laws["업로드법"].Data[0].Number != "전체" {
		t.Errorf("fallback article = %+v", laws["업로드법"].Data[0])
	}
}
