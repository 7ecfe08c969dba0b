package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/moviebag/movie-bag/internal/api/metrics"
	"github.com/moviebag/movie-bag/internal/core/domain"
	"github.com/moviebag/movie-bag/internal/core/ports"
)

// MovieService implements catalog reads and ownership-gated mutations.
// Mutations never reveal to a non-owner whether the movie exists: the
// repository's conditional write matches nothing and the caller sees
// domain.ErrMovieNotFound either way.
type MovieService struct {
	movies ports.MovieRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewMovieService(movies ports.MovieRepository, users ports.UserRepository, logger zerolog.Logger) *MovieService {
	return &MovieService{movies: movies, users: users, logger: logger}
}

// Create inserts a movie owned by ownerID and appends the reference to the
// owner's movie list.
func (s *MovieService) Create(ctx context.Context, ownerID string, input ports.MovieInput) (string, error) {
	if input.Name == "" || len(input.Casts) == 0 || len(input.Genres) == 0 {
		return "", domain.ErrValidation
	}

	created, err := s.movies.Create(ctx, &domain.Movie{
		Name:    input.Name,
		Casts:   input.Casts,
		Genres:  input.Genres,
		AddedBy: ownerID,
	})
	if err != nil {
		return "", err
	}

	if err := s.users.AppendMovie(ctx, ownerID, created.ID); err != nil {
		// The movie document is the source of truth for ownership; a failed
		// back-reference append is recoverable and must not fail the create.
		s.logger.Error().Err(err).Str("movie_id", created.ID).Msg("failed to append movie to owner")
	}

	metrics.MoviesCreatedTotal.Inc()
	s.logger.Info().Str("movie_id", created.ID).Str("user_id", ownerID).Msg("movie created")
	return created.ID, nil
}

func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.movies.FindAll(ctx)
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

// Update replaces the movie's fields. The write is conditioned on
// requesterID matching the recorded owner.
func (s *MovieService) Update(ctx context.Context, requesterID, id string, input ports.MovieInput) error {
	if input.Name == "" || len(input.Casts) == 0 || len(input.Genres) == 0 {
		return domain.ErrValidation
	}

	return s.movies.Update(ctx, id, requesterID, &domain.Movie{
		Name:   input.Name,
		Casts:  input.Casts,
		Genres: input.Genres,
	})
}

// Delete removes the movie, conditioned on requesterID being the owner.
func (s *MovieService) Delete(ctx context.Context, requesterID, id string) error {
	return s.movies.Delete(ctx, id, requesterID)
}
