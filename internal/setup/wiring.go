package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/agent"
	"github.com/lawhub-kr/statute-agent/internal/config"
	"github.com/lawhub-kr/statute-agent/internal/executor"
	"github.com/lawhub-kr/statute-agent/internal/expand"
	"github.com/lawhub-kr/statute-agent/internal/index"
	"github.com/lawhub-kr/statute-agent/internal/llm"
	"github.com/lawhub-kr/statute-agent/internal/llm/bedrock"
	"github.com/lawhub-kr/statute-agent/internal/llm/gpt"
	"github.com/lawhub-kr/statute-agent/internal/store"
)

type Config struct {
	AWSRegion       string
	ClaudeModelID   string
	OpenAIKey       string
	OpenAIModelID   string
	DefaultProvider string

	RedisAddr     string
	RedisPassword string
	RequestStream string
	ResultStream  string
	ConsumerGroup string
	ConsumerName  string

	IndexSnapshotTTLHours float64
}

type Dependencies struct {
	ChatExecutor   *executor.ChatExecutor
	SearchExecutor *executor.SearchExecutor
	Store          *store.Store
	Logger         *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:   getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:       getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:   getEnv("OPEN_AI_MODEL_ID", ""),
		DefaultProvider: getEnv("DEFAULT_LLM_PROVIDER", "bedrock"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RequestStream: getEnv("CHAT_REQUEST_STREAM", "statute:chat:requests"),
		ResultStream:  getEnv("CHAT_RESULT_STREAM", "statute:chat:results"),
		ConsumerGroup: getEnv("CHAT_CONSUMER_GROUP", "statute-agents"),
		ConsumerName:  getEnv("CHAT_CONSUMER_NAME", "consumer-1"),

		IndexSnapshotTTLHours: getEnvFloat("INDEX_SNAPSHOT_TTL_HOURS", 24),
	}
}

// Wire builds the full pipeline: LLM client, statute store with the default
// packages, index builder, expander and the executors. snapshot may be nil
// to keep indexes in process memory only.
func Wire(ctx context.Context, cfg *Config, snapshot index.Snapshotter, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	packagesConfig, err := config.LoadPackagesConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load packages config: %w", err)
	}

	st := store.NewStore(logger, packagesConfig)
	if err := st.LoadPackages(packagesConfig.DefaultPackageIDs()); err != nil {
		// The service can still start empty; packages load later via the API.
		logger.Warn().Err(err).Msg("default packages not loaded")
	}

	builder := index.NewBuilder(logger, snapshot)
	expander := expand.NewExpander(llmClient, logger, expand.TitleTerms(st.Laws()))
	lawAgent := agent.NewLawAgent(llmClient, logger)
	headAgent := agent.NewHeadAgent(llmClient, logger)

	chatExec := executor.NewChatExecutor(expander, builder, lawAgent, headAgent, st, logger)
	searchExec := executor.NewSearchExecutor(expander, builder, st, logger)

	return &Dependencies{
		ChatExecutor:   chatExec,
		SearchExecutor: searchExec,
		Store:          st,
		Logger:         logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "openai":
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	default:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	}
}
