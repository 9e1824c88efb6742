// Package trustcache puts a Redis read-through cache in front of the trust
// graph store. Only positive edges are cached: edges are never removed, so a
// cached "trusted" can never go stale, while a miss always falls through to
// the store.
package trustcache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

const keyPrefix = "trust:"

type trustStore interface {
	MarkTrusted(ctx context.Context, student, reviewer string) error
	IsTrusted(ctx context.Context, student, reviewer string) (bool, error)
	TrustedAmong(ctx context.Context, student string, reviewers []string) (map[string]bool, error)
	ListByStudent(ctx context.Context, student string) ([]domain.TrustEdge, error)
}

type redisClient interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
	SMIsMember(ctx context.Context, key string, members ...any) *redis.BoolSliceCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Cache decorates a trust store. Redis failures are logged and the call is
// served from the store.
type Cache struct {
	store trustStore
	rdb   redisClient
	ttl   time.Duration
	log   *slog.Logger
}

// New creates a trust cache. ttl bounds how long a student's cached set
// lives after its last write.
func New(store trustStore, rdb redisClient, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		store: store,
		rdb:   rdb,
		ttl:   ttl,
		log:   logger.With("component", "trustcache"),
	}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func key(student string) string { return keyPrefix + student }

// MarkTrusted writes the edge to the store, then to the cache.
func (c *Cache) MarkTrusted(ctx context.Context, student, reviewer string) error {
	if err := c.store.MarkTrusted(ctx, student, reviewer); err != nil {
		return err
	}
	c.remember(ctx, student, reviewer)
	return nil
}

// IsTrusted answers from the cache when the edge is cached, else from the store.
func (c *Cache) IsTrusted(ctx context.Context, student, reviewer string) (bool, error) {
	hit, err := c.rdb.SIsMember(ctx, key(student), reviewer).Result()
	if err != nil {
		c.log.WarnContext(ctx, "trust cache read failed", slog.String("error", err.Error()))
	} else if hit {
		return true, nil
	}

	trusted, err := c.store.IsTrusted(ctx, student, reviewer)
	if err != nil {
		return false, err
	}
	if trusted {
		c.remember(ctx, student, reviewer)
	}
	return trusted, nil
}

// TrustedAmong resolves cached reviewers from Redis and asks the store only
// about the rest.
func (c *Cache) TrustedAmong(ctx context.Context, student string, reviewers []string) (map[string]bool, error) {
	if len(reviewers) == 0 {
		return map[string]bool{}, nil
	}

	members := make([]any, len(reviewers))
	for i, r := range reviewers {
		members[i] = r
	}

	result := make(map[string]bool, len(reviewers))
	missing := reviewers

	hits, err := c.rdb.SMIsMember(ctx, key(student), members...).Result()
	switch {
	case err != nil:
		c.log.WarnContext(ctx, "trust cache read failed", slog.String("error", err.Error()))
	case len(hits) == len(reviewers):
		missing = make([]string, 0, len(reviewers))
		for i, hit := range hits {
			if hit {
				result[reviewers[i]] = true
			} else {
				missing = append(missing, reviewers[i])
			}
		}
	}

	if len(missing) == 0 {
		return result, nil
	}

	fromStore, err := c.store.TrustedAmong(ctx, student, missing)
	if err != nil {
		return nil, err
	}
	fresh := make([]string, 0, len(fromStore))
	for name, trusted := range fromStore {
		if trusted {
			result[name] = true
			fresh = append(fresh, name)
		}
	}
	c.remember(ctx, student, fresh...)

	return result, nil
}

// ListByStudent is served by the store; the cache holds partial sets only.
func (c *Cache) ListByStudent(ctx context.Context, student string) ([]domain.TrustEdge, error) {
	return c.store.ListByStudent(ctx, student)
}

func (c *Cache) remember(ctx context.Context, student string, reviewers ...string) {
	if len(reviewers) == 0 {
		return
	}
	members := make([]any, len(reviewers))
	for i, r := range reviewers {
		members[i] = r
	}

	k := key(student)
	if err := c.rdb.SAdd(ctx, k, members...).Err(); err != nil {
		c.log.WarnContext(ctx, "trust cache write failed", slog.String("error", err.Error()))
		return
	}
	if c.ttl > 0 {
		if err := c.rdb.Expire(ctx, k, c.ttl).Err(); err != nil {
			c.log.WarnContext(ctx, "trust cache expire failed", slog.String("error", err.Error()))
		}
	}
}
