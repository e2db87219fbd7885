package cache

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// invalidationChannel is the Pub/Sub channel listing invalidations fan out on.
const invalidationChannel = "dashboard:listing:invalidate"

// RedisListingInvalidator broadcasts listing invalidations over Redis Pub/Sub
// so every instance serving cached pages drops the stale listing. Publishing
// is fire and forget: a Redis outage must never fail the mutation that
// triggered the invalidation.
type RedisListingInvalidator struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisListingInvalidator(client *redis.Client, logger *zap.Logger) *RedisListingInvalidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisListingInvalidator{client: client, logger: logger}
}

// Invalidate publishes the listing path. Failures are logged, never surfaced.
func (r *RedisListingInvalidator) Invalidate(ctx context.Context, path string) {
	if err := r.client.Publish(ctx, invalidationChannel, path).Err(); err != nil {
		r.logger.Warn("Failed to publish listing invalidation",
			zap.String("path", path),
			zap.Error(err))
	}
}

// Subscribe listens for invalidations until ctx is cancelled and calls fn for
// each invalidated path. Runs in the calling goroutine.
func (r *RedisListingInvalidator) Subscribe(ctx context.Context, fn func(path string)) error {
	sub := r.client.Subscribe(ctx, invalidationChannel)
	defer func() { _ = sub.Close() }()

	return consumeInvalidations(ctx, sub.Channel(), fn)
}

func consumeInvalidations(ctx context.Context, ch <-chan *redis.Message, fn func(path string)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			fn(msg.Payload)
		}
	}
}

// RecordingInvalidator records invalidated paths in memory. It backs tests
// and single-instance deployments that run without Redis.
type RecordingInvalidator struct {
	mu    sync.Mutex
	paths []string
}

func NewRecordingInvalidator() *RecordingInvalidator {
	return &RecordingInvalidator{}
}

func (r *RecordingInvalidator) Invalidate(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

// Paths returns the invalidated paths in order.
func (r *RecordingInvalidator) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Reset clears the recorded paths.
func (r *RecordingInvalidator) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = nil
}
