package ports

import (
	"context"
	"time"
)

// ResetTokenStore records password-reset token consumption so that a token
// is honoured at most once within its lifetime. Consume returns true on
// first use and false when the jti has already been spent.
type ResetTokenStore interface {
	Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error)
}
