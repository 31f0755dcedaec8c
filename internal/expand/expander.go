package expand

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/llm"
	"github.com/lawhub-kr/statute-agent/internal/models"
)

const (
	keywordMaxTokens  = 512
	questionMaxTokens = 1024
	temperature       = 0.3
	maxQuestions      = 3
)

// Expansion is what one query turns into before retrieval: a flat keyword
// string fed to the index as a boosted variant, plus reworded questions for
// the answering prompts.
type Expansion struct {
	Keywords  string   `json:"keywords"`
	Questions []string `json:"questions"`
}

// Expander rewrites user questions into retrieval-friendly form using an
// LLM, biased toward the title vocabulary of the loaded statutes. Every LLM
// failure degrades to a deterministic fallback derived from the original
// query; expansion never fails a request.
type Expander struct {
	client     llm.LLMClient
	logger     *zerolog.Logger
	titleTerms []string
}

func NewExpander(client llm.LLMClient, logger *zerolog.Logger, titleTerms []string) *Expander {
	return &Expander{client: client, logger: logger, titleTerms: titleTerms}
}

// Expand runs keyword expansion and similar-question generation for one
// query.
func (e *Expander) Expand(ctx context.Context, query string, weights models.SearchWeights) Expansion {
	return Expansion{
		Keywords:  e.ExpandKeywords(ctx, query, weights),
		Questions: e.SimilarQuestions(ctx, query, weights),
	}
}

// ExpandKeywords asks the model for search keywords and synonyms. With a
// positive title weight the prompt pins the answer to the statute title
// vocabulary; with title search disabled it asks for content-oriented terms
// including decomposed compounds.
func (e *Expander) ExpandKeywords(ctx context.Context, query string, weights models.SearchWeights) string {
	prompt := e.keywordPrompt(query, weights)

	resp, err := e.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   keywordMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		e.logger.Warn().Err(err).Msg("keyword expansion failed, falling back to query terms")
		return extractKeywords(query)
	}

	keywords := extractKeywords(resp.Content)
	if keywords == "" {
		return extractKeywords(query)
	}
	return keywords
}

// SimilarQuestions asks for up to three rewordings of the query. On any
// failure the original question is the only variant.
func (e *Expander) SimilarQuestions(ctx context.Context, query string, weights models.SearchWeights) []string {
	prompt := e.questionPrompt(query, weights)

	resp, err := e.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   questionMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		e.logger.Warn().Err(err).Msg("similar question generation failed")
		return []string{query}
	}

	questions := parseNumberedLines(resp.Content)
	if len(questions) == 0 {
		return []string{query}
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

func (e *Expander) titleTermsText() string {
	if len(e.titleTerms) == 0 {
		return "없음"
	}
	return strings.Join(e.titleTerms, ", ")
}

func (e *Expander) keywordPrompt(query string, weights models.SearchWeights) string {
	if weights.Title > 0 {
		return fmt.Sprintf(`당신은 대한민국 법령 전문가입니다. 다음 질문을 분석하여 법령에서 참고조문 검색에 도움이 되는 키워드를 생성해주세요.

질문: "%s"

다음 작업을 수행해주세요:
1. 질문에서 핵심 키워드 및 유사어, 동의어, 관련어 추출
2. 반드시 아래 법령 제목 용어들 중에서 핵심 키워드, 유사어, 동의어, 관련어를 우선적으로 선택

우선적으로 참고할 법령 제목 용어들:
%s

응답 형식: 키워드와 유사어들을 공백으로 구분하여 한 줄로 나열해주세요.
예시: 관세조사 세액심사 관세법 세관장 세액 통관 사후심사

단어들만 나열하고 다른 설명은 하지 마세요.`, query, e.titleTermsText())
	}

	return fmt.Sprintf(`당신은 대한민국 법령 전문가입니다. 다음 질문을 분석하여 법령에서 참고조문 검색에 도움이 되는 키워드와 유사어를 생성해주세요.

질문: "%s"

다음 작업을 수행해주세요:
1. 질문에서 핵심 키워드 및 유사어, 동의어, 관련어 추출
2. 반드시 아래 법령 제목 용어들 중에서 핵심 키워드, 유사어, 동의어, 관련어를 우선적으로 선택
3. 복합어의 경우 단어 분리도 포함하고, 검색에 유용한 관련 단어들을 추가

우선적으로 참고할 법령 제목 용어들:
%s

응답 형식: 키워드와 유사어들을 공백으로 구분하여 한 줄로 나열해주세요.
예시: 관세조사 세액심사 관세법 세관장 세액 통관 사후심사

단어들만 나열하고 다른 설명은 하지 마세요.`, query, e.titleTermsText())
}

func (e *Expander) questionPrompt(query string, weights models.SearchWeights) string {
	if weights.Title > 0 {
		return fmt.Sprintf(`원본 질문: "%s"

[법령 제목 용어]: %s

위 [법령 제목 용어]들을 최대한 활용하여 짧고 간결한 유사 질문 3개를 생성하세요.

생성 규칙:
1. [법령 제목 용어] 최우선 사용 (일반 용어 → [법령 제목 용어]로 교체)
2. 15단어 이내의 간결한 질문
3. 핵심 내용만 포함, 부연설명 제거
4. "~인가?", "~은?", "~기준은?" 등 단순 형태

형식:
1. (간결한 유사질문)
2. (간결한 유사질문)
3. (간결한 유사질문)`, query, e.titleTermsText())
	}

	return fmt.Sprintf(`원본 질문: "%s"

[법령 제목 용어]: %s

위 원본 질문과 유사한 의미를 가진 질문들을 3개 생성해주세요.

생성 규칙:
1. [법령 제목 용어] 최우선 사용 (일반 용어 → [법령 제목 용어]로 교체)
2. 그외에 법령 검색에 도움이 되도록 다양한 표현과 용어를 사용해주세요.

유사 질문 3개를 다음 형식으로 생성해주세요:
1. (첫 번째 유사 질문)
2. (두 번째 유사 질문)
3. (세 번째 유사 질문)

각 질문은 원본과 의미는 같지만 다른 표현이나 용어를 사용해주세요.`, query, e.titleTermsText())
}

// extractKeywords pulls Hangul words of two or more syllables from text and
// joins the unique ones in first-seen order.
func extractKeywords(text string) string {
	seen := make(map[string]bool)
	var keywords []string
	for _, word := range hangulWordPattern.FindAllString(text, -1) {
		if seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return strings.Join(keywords, " ")
}

var numberedLinePattern = regexp.MustCompile(`^\d+\.\s*(.+)`)

func parseNumberedLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if m := numberedLinePattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			out = append(out, strings.TrimSpace(m[1]))
		}
	}
	return out
}
