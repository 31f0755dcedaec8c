package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lawhub-kr/statute-agent/internal/index"
	connect "github.com/lawhub-kr/statute-agent/internal/redis"
	"github.com/lawhub-kr/statute-agent/internal/setup"
	"github.com/lawhub-kr/statute-agent/internal/stream"
	"github.com/lawhub-kr/statute-agent/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := setup.LoadConfig()

	// Snapshot indexes in Redis so restarts skip the vectorizer fit.
	redisClient, err := connect.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	snapshotTTL := time.Duration(cfg.IndexSnapshotTTLHours * float64(time.Hour))
	snapshot := index.NewRedisStore(redisClient, &logger, snapshotTTL)

	// Wire Components
	deps, err := setup.Wire(ctx, cfg, snapshot, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	consumerName := cfg.ConsumerName
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		consumerName = hostname
	}

	streamCfg := &stream.StreamConfig{
		Provider: os.Getenv("STREAM_PROVIDER"),
		RedisConfig: redis.NewRedisStreamConfig(
			cfg.RedisAddr,
			cfg.RedisPassword,
			cfg.RequestStream,
			cfg.ResultStream,
			cfg.ConsumerGroup,
			consumerName,
		),
	}

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.ChatExecutor, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}

	// Setup consumer
	err = consumer.Setup(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	// Start consumer
	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	// Wait for context to be done
	<-ctx.Done()
	logger.Info().Msg("Shutting down...")

	log.Info().Msg("Statute Agent stopped")
}
