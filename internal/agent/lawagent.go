package agent

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/llm"
)

const (
	answerMaxTokens   = 2048
	answerTemperature = 0.2
)

// LawAgent answers a question as the expert on one statute, grounded on the
// article chunks retrieval selected for it.
type LawAgent struct {
	client llm.LLMClient
	logger *zerolog.Logger
}

func NewLawAgent(client llm.LLMClient, logger *zerolog.Logger) *LawAgent {
	return &LawAgent{client: client, logger: logger}
}

// Answer generates the per-statute expert answer. articles is the retrieval
// context, already rendered as chunk text.
func (a *LawAgent) Answer(ctx context.Context, lawName, question, history, articles string) (string, error) {
	if articles == "" {
		return "관련 법령 조항을 찾을 수 없습니다.", nil
	}

	prompt := fmt.Sprintf(`당신은 대한민국 %s 법률 전문가입니다.

아래는 질문과 관련된 법령 조항들입니다:
%s

이전 대화:
%s

질문: %s

# 응답 지침
1. 제공된 법령 조항에 기반하여 정확하게 답변해주세요.
2. 답변에 사용한 법령 조항(조번호, 제목)을 명확히 인용해주세요.
3. 관련된 조항이 여러 개인 경우 모두 참고하여 종합적으로 답변해주세요.
4. 법령에 명시되지 않은 내용은 추측하지 말고, 알 수 없다고 답변해주세요.
5. 법령 조항 번호와 제목을 정확히 인용하여 신뢰성을 높여주세요.`,
		lawName, articles, history, question)

	resp, err := a.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("answering for %s: %w", lawName, err)
	}

	a.logger.Debug().Str("law", lawName).Str("stop_reason", resp.StopReason).Msg("law agent answered")
	return resp.Content, nil
}
