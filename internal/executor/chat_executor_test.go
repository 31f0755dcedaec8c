package executor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/lawhub-kr/statute-agent/internal/executor/mocks"
	"github.com/lawhub-kr/statute-agent/internal/expand"
	"github.com/lawhub-kr/statute-agent/internal/models"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func twoLaws() models.Collection {
	return models.Collection{
		"관세법": {Type: models.LawTypeLaw, Data: []models.Article{
			{Number: "1", Title: "목적", Body: "관세의 부과와 징수."},
		}},
		"시행령": {Type: models.LawTypeAdmin, Data: []models.Article{
			{Number: "1", Title: "목적", Body: "관세법에서 위임된 사항."},
		}},
	}
}

func TestChatExecutor_Execute_FansOutAcrossLaws(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExpander := mocks.NewMockQueryExpander(ctrl)
	mockBuilder := mocks.NewMockIndexBuilder(ctrl)
	mockAnswerer := mocks.NewMockAnswerer(ctrl)
	mockMerger := mocks.NewMockMerger(ctrl)
	mockLaws := mocks.NewMockLawSource(ctrl)

	req := models.ChatRequest{RequestID: "req-001", Question: "관세 부과 근거는?"}

	mockLaws.EXPECT().Laws().Return(twoLaws())
	mockExpander.EXPECT().
		Expand(gomock.Any(), req.Question, models.DefaultWeights()).
		Return(expand.Expansion{Keywords: "관세 부과 징수", Questions: []string{"관세의 부과 기준은?"}})

	// nil indexes short-circuit retrieval; the answering stage is what this
	// test observes.
	mockBuilder.EXPECT().Build(gomock.Any(), "관세법", gomock.Any()).Return(nil, nil)
	mockBuilder.EXPECT().Build(gomock.Any(), "시행령", gomock.Any()).Return(nil, nil)
	mockAnswerer.EXPECT().Answer(gomock.Any(), "관세법", req.Question, "", "").Return("관세법 답변", nil)
	mockAnswerer.EXPECT().Answer(gomock.Any(), "시행령", req.Question, "", "").Return("시행령 답변", nil)
	mockMerger.EXPECT().Merge(gomock.Any(), req.Question, "", gomock.Any()).Return("종합 답변", nil)

	e := NewChatExecutor(mockExpander, mockBuilder, mockAnswerer, mockMerger, mockLaws, newTestLogger())
	result := e.Execute(context.Background(), req)

	if result.RequestID != "req-001" {
		t.Errorf("request id = %q", result.RequestID)
	}
	if result.Answer != "종합 답변" {
		t.Errorf("answer = %q", result.Answer)
	}
	if len(result.Agents) != 2 {
		t.Fatalf("agents = %d, want 2", len(result.Agents))
	}
	if result.Expanded != "관세 부과 징수" {
		t.Errorf("expanded = %q", result.Expanded)
	}
	if result.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestChatExecutor_Execute_FailedLawBecomesErroredAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExpander := mocks.NewMockQueryExpander(ctrl)
	mockBuilder := mocks.NewMockIndexBuilder(ctrl)
	mockAnswerer := mocks.NewMockAnswerer(ctrl)
	mockMerger := mocks.NewMockMerger(ctrl)
	mockLaws := mocks.NewMockLawSource(ctrl)

	req := models.ChatRequest{RequestID: "req-002", Question: "질문"}

	mockLaws.EXPECT().Laws().Return(twoLaws())
	mockExpander.EXPECT().Expand(gomock.Any(), gomock.Any(), gomock.Any()).Return(expand.Expansion{Keywords: "질문"})

	mockBuilder.EXPECT().Build(gomock.Any(), "관세법", gomock.Any()).Return(nil, errors.New("index build failed"))
	mockBuilder.EXPECT().Build(gomock.Any(), "시행령", gomock.Any()).Return(nil, nil)
	mockAnswerer.EXPECT().Answer(gomock.Any(), "시행령", gomock.Any(), gomock.Any(), gomock.Any()).Return("시행령 답변", nil)

	mockMerger.EXPECT().
		Merge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, answers []models.AgentAnswer) (string, error) {
			var failed int
			for _, a := range answers {
				if a.Err != "" {
					failed++
				}
			}
			if failed != 1 {
				t.Errorf("failed answers = %d, want 1", failed)
			}
			return "부분 답변", nil
		})

	e := NewChatExecutor(mockExpander, mockBuilder, mockAnswerer, mockMerger, mockLaws, newTestLogger())
	result := e.Execute(context.Background(), req)

	if result.Answer != "부분 답변" {
		t.Errorf("answer = %q", result.Answer)
	}
}

func TestChatExecutor_Execute_MergeFailureProducesNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExpander := mocks.NewMockQueryExpander(ctrl)
	mockBuilder := mocks.NewMockIndexBuilder(ctrl)
	mockAnswerer := mocks.NewMockAnswerer(ctrl)
	mockMerger := mocks.NewMockMerger(ctrl)
	mockLaws := mocks.NewMockLawSource(ctrl)

	req := models.ChatRequest{RequestID: "req-003", Question: "질문"}

	mockLaws.EXPECT().Laws().Return(models.Collection{})
	mockExpander.EXPECT().Expand(gomock.Any(), gomock.Any(), gomock.Any()).Return(expand.Expansion{})
	mockMerger.EXPECT().Merge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("model down"))

	e := NewChatExecutor(mockExpander, mockBuilder, mockAnswerer, mockMerger, mockLaws, newTestLogger())
	result := e.Execute(context.Background(), req)

	if !strings.Contains(result.Answer, "오류가 발생했습니다") {
		t.Errorf("answer = %q, want a failure notice", result.Answer)
	}
}

func TestChatExecutor_Execute_CustomWeightsReachExpansion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExpander := mocks.NewMockQueryExpander(ctrl)
	mockBuilder := mocks.NewMockIndexBuilder(ctrl)
	mockAnswerer := mocks.NewMockAnswerer(ctrl)
	mockMerger := mocks.NewMockMerger(ctrl)
	mockLaws := mocks.NewMockLawSource(ctrl)

	weights := models.SearchWeights{Content: 0.7, Title: 0.3}
	req := models.ChatRequest{RequestID: "req-004", Question: "질문", Weights: &weights}

	mockLaws.EXPECT().Laws().Return(models.Collection{})
	mockExpander.EXPECT().Expand(gomock.Any(), "질문", weights).Return(expand.Expansion{})
	mockMerger.EXPECT().Merge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("답변", nil)

	e := NewChatExecutor(mockExpander, mockBuilder, mockAnswerer, mockMerger, mockLaws, newTestLogger())
	e.Execute(context.Background(), req)
}
