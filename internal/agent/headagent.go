package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/llm"
	"github.com/lawhub-kr/statute-agent/internal/models"
)

const (
	mergeMaxTokens   = 4096
	mergeTemperature = 0.2
)

// HeadAgent folds the per-statute expert answers into one final answer.
type HeadAgent struct {
	client llm.LLMClient
	logger *zerolog.Logger
}

func NewHeadAgent(client llm.LLMClient, logger *zerolog.Logger) *HeadAgent {
	return &HeadAgent{client: client, logger: logger}
}

// Merge combines the expert answers. Failed experts are reported inside the
// prompt so the final answer can acknowledge the gap; when every expert
// failed no model call is made and a fixed failure notice is returned.
func (h *HeadAgent) Merge(ctx context.Context, question, history string, answers []models.AgentAnswer) (string, error) {
	var sections []string
	var failures []string

	for _, a := range answers {
		if a.Err != "" {
			failures = append(failures, fmt.Sprintf("- %s 전문가 답변 생성 오류: %s", a.LawName, a.Err))
			continue
		}
		sections = append(sections, fmt.Sprintf("=== %s 전문가 답변 ===\n%s", a.LawName, a.Answer))
	}

	combined := strings.Join(sections, "\n\n")
	if len(failures) > 0 {
		combined += "\n\n--- 일부 답변 생성 실패 ---\n" + strings.Join(failures, "\n")
	}

	if len(sections) == 0 {
		return "모든 법률 전문가의 답변을 가져오는 데 실패했습니다.\n" + combined, nil
	}

	prompt := fmt.Sprintf(`당신은 법률 전문가로서 여러 법령 자료를 통합하여 종합적인 답변을 제공하는 전문가입니다.

%s

이전 대화:
%s

질문: %s

# 응답 지침
1. 여러 전문가 답변을 분석하고 통합하여 최종 답변을 제공합니다.
2. 제공된 법령 조항들에 기반하여 정확하게 답변해주세요.
3. 답변에 사용한 법령 조항(조번호, 제목)을 명확히 인용해주세요.
4. 관련 조항이 여러 법령에 걸쳐 있는 경우 모두 참고하여 종합적으로 답변해주세요.
5. 법령에 명시되지 않은 내용은 추측하지 말고, 알 수 없다고 답변해주세요.
6. 답변은 두괄식으로 작성하며, 결론을 먼저 제시합니다.
7. 상충되는 내용이 있는 경우 이를 명확히 구분하여 설명합니다.
8. 일부 답변 생성에 실패한 경우, 해당 사실을 언급하고 성공한 답변만으로 종합적인 결론을 내립니다.`,
		combined, history, question)

	resp, err := h.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   mergeMaxTokens,
		Temperature: mergeTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("merging expert answers: %w", err)
	}

	h.logger.Debug().Int("experts", len(sections)).Int("failed", len(failures)).Msg("head agent merged answers")
	return resp.Content, nil
}
