package ports

import (
	"context"

	"github.com/userhub/account-service/internal/core/domain"
)

// AccountService implements the registration and authentication protocol.
type AccountService interface {
	// Register creates a new account from plaintext credentials. The
	// returned record never exposes the password hash on serialization.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login authenticates the name/password pair and returns a signed
	// bearer token. Every failure mode that is the caller's fault surfaces
	// as the same domain.ErrAuthenticationFailed.
	Login(ctx context.Context, name, password string) (string, error)

	// Resolve maps a validated token subject back to its account. Fails
	// with domain.ErrIdentityNotFound when the account was deactivated
	// after the token was issued.
	Resolve(ctx context.Context, subject string) (*domain.User, error)

	// ResolveID is the id-keyed variant of Resolve, used by protected
	// lookups of other accounts.
	ResolveID(ctx context.Context, id int64) (*domain.User, error)

	// Deactivate soft-deletes the subject's account.
	Deactivate(ctx context.Context, subject string) error
}
