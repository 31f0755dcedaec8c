package stream

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/executor"
	connect "github.com/lawhub-kr/statute-agent/internal/redis"
	"github.com/lawhub-kr/statute-agent/internal/stream/redis"
)

type StreamConfig struct {
	Provider    string // redis, kafka, sqs, etc
	RedisConfig *redis.RedisStreamConfig
}

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	exec *executor.ChatExecutor,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := connect.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			5,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(
			client,
			cfg.RedisConfig.Stream,
			cfg.RedisConfig.ResultStream,
			cfg.RedisConfig.Group,
			cfg.RedisConfig.ConsumerName,
			exec,
			logger,
		), nil

	// Future providers:
	// case "kafka":
	//     return kafka.NewConsumer(...)

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
