package ports

import (
	"context"

	"github.com/moviebag/movie-bag/internal/core/domain"
)

// UserRepository persists user identities and credentials. Create must be
// atomic with respect to email uniqueness: the storage layer enforces a
// unique constraint, not an application-level pre-check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	AppendMovie(ctx context.Context, userID, movieID string) error
	Delete(ctx context.Context, id string) error
}
