package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lawhub-kr/statute-agent/internal/executor"
	"github.com/lawhub-kr/statute-agent/internal/models"
)

type Consumer struct {
	client       *redis.Client
	stream       string
	resultStream string
	groupID      string
	consumerName string
	executor     *executor.ChatExecutor
	logger       *zerolog.Logger
}

func NewConsumer(client *redis.Client, stream string, resultStream string, groupID string, consumerName string, exec *executor.ChatExecutor, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       stream,
		resultStream: resultStream,
		groupID:      groupID,
		consumerName: consumerName,
		executor:     exec,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
		}
	}
}

func (c *Consumer) Stop() error {
	// No-op
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var chatRequest models.ChatRequest
	if err := json.Unmarshal([]byte(payload), &chatRequest); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message — ACK to skip it
		return
	}
	if chatRequest.RequestID == "" {
		chatRequest.RequestID = msg.ID
	}

	result := c.executor.Execute(ctx, chatRequest)

	c.logger.Info().
		Str("id", msg.ID).
		Str("request_id", result.RequestID).
		Int("experts", len(result.Agents)).
		Msg("Chat complete")

	c.publish(ctx, result)
	c.ack(ctx, msg.ID)
}

// publish writes the answer to the result stream so producers can pick it up
// asynchronously. Publish failures are logged, not retried; the request is
// still acked.
func (c *Consumer) publish(ctx context.Context, result models.ChatResult) {
	if c.resultStream == "" {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", result.RequestID).Msg("Failed to encode result")
		return
	}

	err = c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: map[string]any{"payload": string(raw)},
	}).Err()
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", result.RequestID).Msg("Failed to publish result")
	}
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
