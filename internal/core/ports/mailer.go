package ports

import (
	"context"

	"github.com/moviebag/movie-bag/internal/core/domain"
)

// Mailer delivers a single transactional email synchronously.
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}

// MailEnqueuer hands an email to the async dispatcher. Enqueue never blocks
// the caller on delivery; failures are logged and counted, not propagated.
type MailEnqueuer interface {
	Enqueue(email domain.Email)
}
