package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviebag/movie-bag/internal/core/domain"
	"github.com/moviebag/movie-bag/internal/core/ports"
)

// MovieHandler handles HTTP requests for catalog operations.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

type movieRequest struct {
	Name   string   `json:"name" validate:"required"`
	Casts  []string `json:"casts" validate:"required,min=1"`
	Genres []string `json:"genres" validate:"required,min=1"`
}

// List handles GET /api/movies.
//
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Success      200  {array}  domain.Movie
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Get handles GET /api/movies/:id.
//
// @Summary      Get a movie by id
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  domain.Movie
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Create handles POST /api/movies. The authenticated user becomes the
// movie's owner.
//
// @Summary      Create a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      200   {object}  idResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrValidation
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrValidation
	}

	id, err := h.service.Create(c.Request().Context(), userID, ports.MovieInput{
		Name:   req.Name,
		Casts:  req.Casts,
		Genres: req.Genres,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, idResponse{ID: id})
}

// Update handles PUT /api/movies/:id. Only the owner may update; a
// non-owner gets the same not-found outcome as a missing movie.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Movie id"
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /movies/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrValidation
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrValidation
	}

	if err := h.service.Update(c.Request().Context(), userID, c.Param("id"), ports.MovieInput{
		Name:   req.Name,
		Casts:  req.Casts,
		Genres: req.Genres,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{})
}

// Delete handles DELETE /api/movies/:id, with the same ownership gating as
// Update.
//
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{})
}
