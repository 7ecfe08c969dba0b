package ports

import (
	"context"

	"github.com/moviebag/movie-bag/internal/core/domain"
)

// MovieRepository persists catalog entries. Update and Delete are
// conditional single-document writes filtered on both the movie id and the
// owning user; a non-owner request matches nothing and reports
// domain.ErrMovieNotFound.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	FindAll(ctx context.Context) ([]domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	Update(ctx context.Context, id, ownerID string, movie *domain.Movie) error
	Delete(ctx context.Context, id, ownerID string) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}
