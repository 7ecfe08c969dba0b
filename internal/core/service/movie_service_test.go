package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/moviebag/movie-bag/internal/core/domain"
	"github.com/moviebag/movie-bag/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type stubMovieRepo struct {
	movies map[string]*domain.Movie
	nextID int
}

func newStubMovieRepo() *stubMovieRepo {
	return &stubMovieRepo{movies: make(map[string]*domain.Movie)}
}

func (r *stubMovieRepo) Create(_ context.Context, movie *domain.Movie) (*domain.Movie, error) {
	for _, m := range r.movies {
		if m.Name == movie.Name {
			return nil, domain.ErrMovieExists
		}
	}
	r.nextID++
	created := *movie
	created.ID = fmt.Sprintf("movie-%d", r.nextID)
	clone := created
	r.movies[created.ID] = &clone
	return &created, nil
}

func (r *stubMovieRepo) FindAll(_ context.Context) ([]domain.Movie, error) {
	all := make([]domain.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		all = append(all, *m)
	}
	return all, nil
}

func (r *stubMovieRepo) FindByID(_ context.Context, id string) (*domain.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	clone := *m
	return &clone, nil
}

// Update mirrors the conditional {_id, added_by} write: a non-owner match
// reports not-found, indistinguishable from a missing movie.
func (r *stubMovieRepo) Update(_ context.Context, id, ownerID string, movie *domain.Movie) error {
	m, ok := r.movies[id]
	if !ok || m.AddedBy == "" || m.AddedBy != ownerID {
		return domain.ErrMovieNotFound
	}
	m.Name = movie.Name
	m.Casts = movie.Casts
	m.Genres = movie.Genres
	return nil
}

func (r *stubMovieRepo) Delete(_ context.Context, id, ownerID string) error {
	m, ok := r.movies[id]
	if !ok || m.AddedBy == "" || m.AddedBy != ownerID {
		return domain.ErrMovieNotFound
	}
	delete(r.movies, id)
	return nil
}

func (r *stubMovieRepo) DeleteByOwner(_ context.Context, ownerID string) error {
	for id, m := range r.movies {
		if m.AddedBy == ownerID {
			delete(r.movies, id)
		}
	}
	return nil
}

var starWars = ports.MovieInput{
	Name:   "Star Wars: The Rise of Skywalker",
	Casts:  []string{"Daisy Ridley", "Adam Driver"},
	Genres: []string{"Fantasy", "Sci-fi"},
}

func newMovieFixture() (*MovieService, *stubMovieRepo, *stubUserRepo) {
	movies := newStubMovieRepo()
	users := newStubUserRepo()
	return NewMovieService(movies, users, testLogger()), movies, users
}

func seedUser(t *testing.T, users *stubUserRepo, email string) string {
	t.Helper()
	u, err := users.Create(context.Background(), &domain.User{Email: email, PasswordHash: "x"})
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return u.ID
}

func TestMovieService_Create_SetsOwnerAndBackReference(t *testing.T) {
	svc, movies, users := newMovieFixture()
	ownerID := seedUser(t, users, "a@x.com")

	id, err := svc.Create(context.Background(), ownerID, starWars)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty movie id")
	}

	stored := movies.movies[id]
	if stored == nil {
		t.Fatalf("movie not persisted")
	}
	if stored.AddedBy != ownerID {
		t.Fatalf("expected added_by %s, got %s", ownerID, stored.AddedBy)
	}

	owner := users.users[ownerID]
	if len(owner.MovieIDs) != 1 || owner.MovieIDs[0] != id {
		t.Fatalf("movie reference not appended to owner: %v", owner.MovieIDs)
	}
}

func TestMovieService_Create_Validation(t *testing.T) {
	svc, movies, users := newMovieFixture()
	ownerID := seedUser(t, users, "a@x.com")

	cases := []ports.MovieInput{
		{Casts: starWars.Casts, Genres: starWars.Genres},
		{Name: starWars.Name, Genres: starWars.Genres},
		{Name: starWars.Name, Casts: starWars.Casts},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), ownerID, input); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", input, err)
		}
	}
	if len(movies.movies) != 0 {
		t.Fatalf("expected no movie persisted")
	}
}

func TestMovieService_Create_DuplicateName(t *testing.T) {
	svc, _, users := newMovieFixture()
	ownerID := seedUser(t, users, "a@x.com")

	if _, err := svc.Create(context.Background(), ownerID, starWars); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ownerID, starWars); !errors.Is(err, domain.ErrMovieExists) {
		t.Fatalf("expected ErrMovieExists, got %v", err)
	}
}

func TestMovieService_Update_OwnerSucceeds(t *testing.T) {
	svc, movies, users := newMovieFixture()
	ownerID := seedUser(t, users, "a@x.com")

	id, err := svc.Create(context.Background(), ownerID, starWars)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated := starWars
	updated.Genres = []string{"Space opera"}
	if err := svc.Update(context.Background(), ownerID, id, updated); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got := movies.movies[id].Genres[0]; got != "Space opera" {
		t.Fatalf("update not applied, genres: %v", movies.movies[id].Genres)
	}
}

func TestMovieService_Update_NonOwnerDenied(t *testing.T) {
	svc, movies, users := newMovieFixture()
	ownerID := seedUser(t, users, "a@x.com")
	otherID := seedUser(t, users, "b@x.com")

	id, err := svc.Create(context.Background(), ownerID, starWars)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Non-owner on an existing movie and anyone on a missing movie must be
	// indistinguishable.
	errExisting := svc.Update(context.Background(), otherID, id, starWars)
	errMissing := svc.Update(context.Background(), otherID, "movie-999", starWars)

	if !errors.Is(errExisting, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound for non-owner, got %v", errExisting)
	}
	if !errors.Is(errMissing, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound for missing movie, got %v", errMissing)
	}
	if movies.movies[id].Genres[0] != "Fantasy" {
		t.Fatalf("movie mutated by non-owner")
	}
}

func TestMovieService_Delete_NonOwnerDenied(t *testing.T) {
	svc, movies, users := newMovieFixture()
	ownerID := seedUser(t, users, "a@x.com")
	otherID := seedUser(t, users, "b@x.com")

	id, err := svc.Create(context.Background(), ownerID, starWars)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), otherID, id); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
	if _, ok := movies.movies[id]; !ok {
		t.Fatalf("movie deleted by non-owner")
	}

	if err := svc.Delete(context.Background(), ownerID, id); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestMovieService_Update_UnownedMovieDenied(t *testing.T) {
	svc, movies, users := newMovieFixture()
	requesterID := seedUser(t, users, "a@x.com")

	// Movies created before ownership existed have no added_by; nobody may
	// mutate them.
	movies.movies["legacy"] = &domain.Movie{ID: "legacy", Name: "Metropolis", Casts: []string{"Brigitte Helm"}, Genres: []string{"Sci-fi"}}

	if err := svc.Update(context.Background(), requesterID, "legacy", starWars); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieService_ListAndGet(t *testing.T) {
	svc, _, users := newMovieFixture()
	ownerID := seedUser(t, users, "a@x.com")

	id, err := svc.Create(context.Background(), ownerID, starWars)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 || all[0].Name != starWars.Name || all[0].AddedBy != ownerID {
		t.Fatalf("unexpected listing: %+v", all)
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != starWars.Name {
		t.Fatalf("unexpected movie: %+v", got)
	}

	if _, err := svc.Get(context.Background(), "movie-999"); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}
