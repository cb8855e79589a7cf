package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/search-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultStream = "query-events"

func ConnectRedis(ctx context.Context, addr string, password string, maxRetries int, logger *zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              0,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	})

	var err error
	for i := range maxRetries {
		if i > 0 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			logger.Info().Dur("backoff", backoff).Msg("Waiting before Redis retry")
			time.Sleep(backoff)
		}

		logger.Info().Int("attempt", i+1).Int("max_retries", maxRetries).Msg("Connecting to Redis")

		err = client.Ping(ctx).Err()
		if err == nil {
			logger.Info().Int("attempts_needed", i+1).Msg("Redis connected")
			return client, nil
		}

		logger.Warn().Err(err).Int("attempt", i+1).Msg("Redis ping failed")
	}

	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, err)
}

// RedisRecorder appends entries to a Redis stream with XADD.
type RedisRecorder struct {
	client *redis.Client
	stream string
	maxLen int64
	logger *zerolog.Logger
}

func NewRedisRecorder(client *redis.Client, stream string, logger *zerolog.Logger) *RedisRecorder {
	if stream == "" {
		stream = defaultStream
	}

	return &RedisRecorder{
		client: client,
		stream: stream,
		maxLen: 1000,
		logger: logger,
	}
}

func (r *RedisRecorder) Record(ctx context.Context, entry models.HistoryEntry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		r.logger.Error().Err(err).Str("requestID", entry.RequestID).Msg("Failed to encode history entry")
		return
	}

	err = r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		MaxLen: r.maxLen,
		Approx: true,
		Values: map[string]interface{}{"payload": string(payload)},
	}).Err()

	if err != nil {
		r.logger.Error().Err(err).Str("requestID", entry.RequestID).Msg("Failed to journal query")
	}
}

func (r *RedisRecorder) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	msgs, err := r.client.XRevRangeN(ctx, r.stream, "+", "-", int64(limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read query journal: %w", err)
	}

	entries := make([]models.HistoryEntry, 0, len(msgs))
	for _, msg := range msgs {
		payload, ok := msg.Values["payload"].(string)
		if !ok {
			r.logger.Warn().Str("id", msg.ID).Msg("Journal message missing payload field")
			continue
		}

		var entry models.HistoryEntry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			r.logger.Warn().Err(err).Str("id", msg.ID).Msg("Failed to decode journal entry")
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
