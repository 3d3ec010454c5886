package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/userhub/account-service/internal/api/metrics"
	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

// IdentityCache caches resolved accounts by token subject, bounded by a TTL
// that callers cap at the token TTL. Resolution staleness within that window
// is already accepted by the protocol, so a cache hit adds no new staleness.
//
// Every operation is best effort: Redis failures degrade to cache misses.
// Key format: identity:<subject>
type IdentityCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewIdentityCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *IdentityCache {
	return &IdentityCache{client: client, ttl: ttl, log: log}
}

// cachedIdentity is the stored projection. The password hash is deliberately
// absent; resolve never needs it.
type cachedIdentity struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *IdentityCache) Get(ctx context.Context, subject string) (*domain.User, bool) {
	raw, err := c.client.Get(ctx, c.key(subject)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("subject", subject).Msg("identity cache read failed")
		}
		metrics.IdentityCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var ci cachedIdentity
	if err := json.Unmarshal(raw, &ci); err != nil {
		c.log.Warn().Err(err).Str("subject", subject).Msg("identity cache entry corrupt")
		metrics.IdentityCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.IdentityCacheTotal.WithLabelValues("hit").Inc()
	return &domain.User{
		ID:        ci.ID,
		Name:      ci.Name,
		Email:     ci.Email,
		Active:    ci.Active,
		CreatedAt: ci.CreatedAt,
		UpdatedAt: ci.UpdatedAt,
	}, true
}

func (c *IdentityCache) Set(ctx context.Context, subject string, user *domain.User) {
	if user == nil || !user.Active {
		return
	}
	raw, err := json.Marshal(cachedIdentity{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(subject), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("subject", subject).Msg("identity cache write failed")
	}
}

func (c *IdentityCache) Invalidate(ctx context.Context, subject string) {
	if err := c.client.Del(ctx, c.key(subject)).Err(); err != nil {
		c.log.Warn().Err(err).Str("subject", subject).Msg("identity cache invalidation failed")
	}
}

func (c *IdentityCache) key(subject string) string {
	return "identity:" + subject
}

var _ ports.IdentityCache = (*IdentityCache)(nil)
