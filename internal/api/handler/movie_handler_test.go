package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/moviebag/movie-bag/internal/api/middleware"
	"github.com/moviebag/movie-bag/internal/core/domain"
	"github.com/moviebag/movie-bag/internal/core/ports"
)

type stubMovieService struct {
	createFn func(ctx context.Context, ownerID string, input ports.MovieInput) (string, error)
	listFn   func(ctx context.Context) ([]domain.Movie, error)
	getFn    func(ctx context.Context, id string) (*domain.Movie, error)
	updateFn func(ctx context.Context, requesterID, id string, input ports.MovieInput) error
	deleteFn func(ctx context.Context, requesterID, id string) error
}

func (s *stubMovieService) Create(ctx context.Context, ownerID string, input ports.MovieInput) (string, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubMovieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.listFn(ctx)
}

func (s *stubMovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.getFn(ctx, id)
}

func (s *stubMovieService) Update(ctx context.Context, requesterID, id string, input ports.MovieInput) error {
	return s.updateFn(ctx, requesterID, id, input)
}

func (s *stubMovieService) Delete(ctx context.Context, requesterID, id string) error {
	return s.deleteFn(ctx, requesterID, id)
}

const movieBody = `{"name":"Star Wars: The Rise of Skywalker","casts":["Daisy Ridley","Adam Driver"],"genres":["Fantasy","Sci-fi"]}`

func newAuthedContext(t *testing.T, method, path, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, path, body)
	if userID != "" {
		c.Set(middleware.UserIDKey, userID)
	}
	return c, rec
}

func TestMovieHandler_Create_Success(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, ownerID string, input ports.MovieInput) (string, error) {
			if ownerID != "user-1" {
				t.Fatalf("unexpected owner: %s", ownerID)
			}
			if input.Name != "Star Wars: The Rise of Skywalker" || len(input.Casts) != 2 || len(input.Genres) != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "movie-1", nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/api/movies", movieBody, "user-1")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "movie-1" {
		t.Fatalf("unexpected id: %q", resp["id"])
	}
}

func TestMovieHandler_Create_Unauthenticated(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, ownerID string, input ports.MovieInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/api/movies", movieBody, "")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestMovieHandler_Create_MissingFields(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, ownerID string, input ports.MovieInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/api/movies", `{"name":"Alien"}`, "user-1")
	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestMovieHandler_List(t *testing.T) {
	stub := &stubMovieService{
		listFn: func(ctx context.Context) ([]domain.Movie, error) {
			return []domain.Movie{{ID: "movie-1", Name: "Alien", Casts: []string{"Sigourney Weaver"}, Genres: []string{"Sci-fi"}, AddedBy: "user-1"}}, nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/movies", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "Alien" || resp[0]["added_by"] != "user-1" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMovieHandler_List_Empty(t *testing.T) {
	stub := &stubMovieService{
		listFn: func(ctx context.Context) ([]domain.Movie, error) {
			return []domain.Movie{}, nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/movies", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestMovieHandler_Update_NotOwner(t *testing.T) {
	stub := &stubMovieService{
		updateFn: func(ctx context.Context, requesterID, id string, input ports.MovieInput) error {
			return domain.ErrMovieNotFound
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPut, "/api/movies/movie-1", movieBody, "user-2")
	c.SetParamNames("id")
	c.SetParamValues("movie-1")

	if err := h.Update(c); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieHandler_Delete_Owner(t *testing.T) {
	var gotRequester, gotID string
	stub := &stubMovieService{
		deleteFn: func(ctx context.Context, requesterID, id string) error {
			gotRequester, gotID = requesterID, id
			return nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newAuthedContext(t, http.MethodDelete, "/api/movies/movie-1", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("movie-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotRequester != "user-1" || gotID != "movie-1" {
		t.Fatalf("unexpected args: %q %q", gotRequester, gotID)
	}
}

func TestMovieHandler_Get_NotFound(t *testing.T) {
	stub := &stubMovieService{
		getFn: func(ctx context.Context, id string) (*domain.Movie, error) {
			return nil, domain.ErrMovieNotFound
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/movies/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Get(c); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}
