// Package redis publishes study notifications onto a Redis list consumed by
// the notification worker.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studyset-backend/internal/config"
	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// NewClient connects to Redis and pings it for fail-fast validation.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Notifier pushes mastery events as JSON onto a queue list. Each
// (user, set, term) is announced at most once per dedupe window.
type Notifier struct {
	rdb       *goredis.Client
	log       *slog.Logger
	queue     string
	keyPrefix string
	dedupeTTL time.Duration
}

// NewNotifier creates a Notifier. A nil *Notifier is valid and publishes nothing.
func NewNotifier(rdb *goredis.Client, log *slog.Logger, cfg config.RedisConfig) *Notifier {
	return &Notifier{
		rdb:       rdb,
		log:       log.With("adapter", "redis_notifier"),
		queue:     cfg.Queue,
		keyPrefix: cfg.KeyPrefix,
		dedupeTTL: cfg.DedupeTTL,
	}
}

// TermMastered enqueues a mastery event unless the same term was already
// announced within the dedupe window.
func (n *Notifier) TermMastered(ctx context.Context, event domain.MasteryEvent) error {
	if n == nil || n.rdb == nil {
		return nil
	}

	key := n.dedupeKey(event)
	fresh, err := n.rdb.SetNX(ctx, key, event.MasteredAt.Unix(), n.dedupeTTL).Result()
	if err != nil {
		return fmt.Errorf("redis setnx %s: %w", key, err)
	}
	if !fresh {
		n.log.DebugContext(ctx, "mastery already announced",
			slog.Int64("user_id", event.UserID),
			slog.Int64("term_id", event.TermID),
		)
		return nil
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal mastery event: %w", err)
	}

	if err := n.rdb.RPush(ctx, n.queue, raw).Err(); err != nil {
		// Release the key so a later mastery can be announced.
		_ = n.rdb.Del(ctx, key).Err()
		return fmt.Errorf("redis rpush %s: %w", n.queue, err)
	}
	return nil
}

func (n *Notifier) dedupeKey(e domain.MasteryEvent) string {
	return fmt.Sprintf("%smastered:%d:%d:%d", n.keyPrefix, e.UserID, e.StudySetID, e.TermID)
}
