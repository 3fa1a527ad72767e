package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/BG-legacy/TimeWell/internal/logger"
)

// Suggestion lifecycle events published to subscribers (mobile push workers,
// analytics consumers). Payloads are JSON-encoded SuggestionEvent values.
const (
	EventSuggestionCreated   = "suggestion.created"
	EventSuggestionApplied   = "suggestion.applied"
	EventSuggestionUnapplied = "suggestion.unapplied"
)

type SuggestionEvent struct {
	Kind         string `json:"kind"`
	SuggestionID string `json:"suggestion_id"`
	UserID       string `json:"user_id"`
	EventID      string `json:"event_id,omitempty"`
	Fallback     bool   `json:"fallback,omitempty"`
}

type Notifier interface {
	Publish(ctx context.Context, evt SuggestionEvent) error
	Close() error
}

type notifier struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

// NewNotifier connects to Redis using REDIS_ADDR and verifies the connection
// with a ping. Callers that want the server to run without Redis should
// check for the missing-address error and substitute NewNoopNotifier.
func NewNotifier(log *logger.Logger) (Notifier, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ch := strings.TrimSpace(os.Getenv("REDIS_CHANNEL"))
	if ch == "" {
		ch = "suggestions"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &notifier{
		log:     log.With("service", "RedisNotifier"),
		rdb:     rdb,
		channel: ch,
	}, nil
}

func (n *notifier) Publish(ctx context.Context, evt SuggestionEvent) error {
	if n == nil || n.rdb == nil {
		return fmt.Errorf("redis notifier not initialized")
	}
	raw, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, n.channel, raw).Err()
}

func (n *notifier) Close() error {
	if n == nil || n.rdb == nil {
		return nil
	}
	return n.rdb.Close()
}

type noopNotifier struct{}

// NewNoopNotifier is used when REDIS_ADDR is unset; publishes are dropped.
func NewNoopNotifier() Notifier { return noopNotifier{} }

func (noopNotifier) Publish(ctx context.Context, evt SuggestionEvent) error { return nil }
func (noopNotifier) Close() error                                           { return nil }
