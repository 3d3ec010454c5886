package domain

import (
	"errors"
	"time"
)

// User is the persisted account record backing authentication.
//
// PasswordHash is the opaque output of the password hasher and is never
// serialized outward. Active is a soft-delete flag: an inactive record still
// exists (and still occupies its unique name/email) but cannot authenticate.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ErrInvalidInput flags caller-fixable input problems.
var ErrInvalidInput = errors.New("invalid input")

// ErrAuthenticationFailed is the uniform login failure. Missing user, wrong
// password, and deactivated account all surface as this exact error so the
// response carries no account-enumeration signal.
var ErrAuthenticationFailed = errors.New("authentication failed")

// ErrDuplicateIdentity is the storage-level uniqueness violation on name or email.
var ErrDuplicateIdentity = errors.New("duplicate identity")

// ErrRegistrationConflict is the service-facing translation of
// ErrDuplicateIdentity during registration.
var ErrRegistrationConflict = errors.New("registration conflict")

// ErrStoreUnavailable is a transient storage fault, retryable by the caller
// and distinct from any bad-request condition.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrIdentityNotFound means the subject of a cryptographically valid token no
// longer resolves to an active account.
var ErrIdentityNotFound = errors.New("identity not found")

// Token-layer faults. All three map to one generic unauthorized response at
// the API boundary.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)
