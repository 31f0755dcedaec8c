package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/llm"
	"github.com/lawhub-kr/statute-agent/internal/models"
)

type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) InvokeModel(_ context.Context, req llm.LLMRequest) (*llm.LLMResponse, error) {
	f.prompts = append(f.prompts, req.Prompt)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.LLMResponse{Content: f.response, StopReason: "end_turn"}, nil
}

func (f *fakeLLM) InvokeModelWithRetry(ctx context.Context, req llm.LLMRequest) (*llm.LLMResponse, error) {
	return f.InvokeModel(ctx, req)
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func TestLawAgent_AnswerGroundsPromptOnContext(t *testing.T) {
	fake := &fakeLLM{response: "제14조에 따라 관세를 부과합니다."}
	a := NewLawAgent(fake, nopLogger())

	got, err := a.Answer(context.Background(), "관세법", "관세 부과 근거는?", "", "[14] (과세물건) 수입물품에는 관세를 부과한다.")
	if err != nil {
		t.Fatal(err)
	}
	if got != "제14조에 따라 관세를 부과합니다." {
		t.Errorf("answer = %q", got)
	}
	if len(fake.prompts) != 1 {
		t.Fatalf("expected one invocation, got %d", len(fake.prompts))
	}
	prompt := fake.prompts[0]
	if !strings.Contains(prompt, "관세법 법률 전문가") {
		t.Error("law name missing from persona line")
	}
	if !strings.Contains(prompt, "[14] (과세물건)") {
		t.Error("retrieval context missing from prompt")
	}
}

func TestLawAgent_EmptyContextSkipsModel(t *testing.T) {
	fake := &fakeLLM{response: "ignored"}
	a := NewLawAgent(fake, nopLogger())

	got, err := a.Answer(context.Background(), "관세법", "질문", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "관련 법령 조항을 찾을 수 없습니다." {
		t.Errorf("answer = %q", got)
	}
	if len(fake.prompts) != 0 {
		t.Error("no model call expected without retrieval context")
	}
}

func TestLawAgent_PropagatesModelError(t *testing.T) {
	fake := &fakeLLM{err: errors.New("throttled")}
	a := NewLawAgent(fake, nopLogger())

	if _, err := a.Answer(context.Background(), "관세법", "질문", "", "조문"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestHeadAgent_MergeFoldsFailuresIntoPrompt(t *testing.T) {
	fake := &fakeLLM{response: "종합 답변"}
	h := NewHeadAgent(fake, nopLogger())

	answers := []models.AgentAnswer{
		{LawName: "관세법", Answer: "관세법 답변"},
		{LawName: "시행령", Err: "timeout"},
	}
	got, err := h.Merge(context.Background(), "질문", "", answers)
	if err != nil {
		t.Fatal(err)
	}
	if got != "종합 답변" {
		t.Errorf("merged = %q", got)
	}

	prompt := fake.prompts[0]
	if !strings.Contains(prompt, "=== 관세법 전문가 답변 ===") {
		t.Error("successful expert section missing")
	}
	if !strings.Contains(prompt, "시행령 전문가 답변 생성 오류") {
		t.Error("failure notice missing from prompt")
	}
}

func TestHeadAgent_AllFailedSkipsModel(t *testing.T) {
	fake := &fakeLLM{response: "ignored"}
	h := NewHeadAgent(fake, nopLogger())

	answers := []models.AgentAnswer{
		{LawName: "관세법", Err: "boom"},
	}
	got, err := h.Merge(context.Background(), "질문", "", answers)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "모든 법률 전문가의 답변을 가져오는 데 실패했습니다") {
		t.Errorf("merged = %q", got)
	}
	if len(fake.prompts) != 0 {
		t.Error("no model call expected when every expert failed")
	}
}
