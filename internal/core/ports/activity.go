package ports

import (
	"context"

	"github.com/userhub/account-service/internal/core/domain"
)

// ActivityRecorder accepts activity events for asynchronous persistence.
// Record must never block the calling request and must never fail it.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityStore persists and queries the account activity trail.
type ActivityStore interface {
	Append(ctx context.Context, event domain.ActivityEvent) error
	FindBySubject(ctx context.Context, subject string, limit int64) ([]domain.ActivityEvent, error)
}

// ActivityService processes recorded activity events and serves reads.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
	Recent(ctx context.Context, subject string, limit int64) ([]domain.ActivityEvent, error)
}

// IdentityCache is a best-effort, TTL-bounded cache of resolved accounts.
// Misses and backend failures are indistinguishable to callers.
type IdentityCache interface {
	Get(ctx context.Context, subject string) (*domain.User, bool)
	Set(ctx context.Context, subject string, user *domain.User)
	Invalidate(ctx context.Context, subject string)
}
