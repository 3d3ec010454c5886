package ports

import (
	"context"

	"github.com/userhub/account-service/internal/core/domain"
)

// UserStore is the durable mapping from identity to account record.
//
// Uniqueness of name and email is enforced by the store itself (unique
// indexes), never by a prior existence check, so concurrent duplicate
// inserts cannot both succeed.
type UserStore interface {
	// CreateUser inserts a new active record with a store-assigned id and
	// timestamps. Returns domain.ErrDuplicateIdentity when name or email is
	// already taken, domain.ErrStoreUnavailable on infrastructure faults.
	CreateUser(ctx context.Context, name, email, passwordHash string) (*domain.User, error)

	// FindByName looks up a record by exact name. Does not filter on the
	// active flag; callers decide. Returns domain.ErrIdentityNotFound when
	// no record exists.
	FindByName(ctx context.Context, name string) (*domain.User, error)

	// FindByID looks up a record by its stable surrogate id.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// Deactivate flips the record's active flag to false and bumps
	// updated_at. The record is never physically removed.
	Deactivate(ctx context.Context, id int64) error
}
