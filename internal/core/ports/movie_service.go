package ports

import (
	"context"

	"github.com/moviebag/movie-bag/internal/core/domain"
)

// MovieInput carries the client-supplied movie fields.
type MovieInput struct {
	Name   string
	Casts  []string
	Genres []string
}

// MovieService exposes catalog reads and ownership-gated mutations.
type MovieService interface {
	Create(ctx context.Context, ownerID string, input MovieInput) (string, error)
	List(ctx context.Context) ([]domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	Update(ctx context.Context, requesterID, id string, input MovieInput) error
	Delete(ctx context.Context, requesterID, id string) error
}
