package ports

import "time"

// TokenIssuer creates and validates signed, expiring bearer tokens. Signing
// is stateless: one process-wide secret, no per-token server-side state and
// no revocation list.
type TokenIssuer interface {
	// Issue creates a token bound to subject, stamped with the current time
	// and expiring after ttl.
	Issue(subject string, ttl time.Duration) (string, error)

	// Validate parses raw and verifies signature and expiry, returning the
	// subject on success. Fails with domain.ErrTokenMalformed,
	// domain.ErrTokenExpired or domain.ErrTokenSignatureInvalid.
	Validate(raw string) (string, error)
}
