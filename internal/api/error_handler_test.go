package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/moviebag/movie-bag/internal/core/domain"
)

// The status/message pairs are part of the API contract; clients and the
// original test suite assert on the exact message text.
func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{domain.ErrValidation, http.StatusBadRequest, "Request is missing required fields"},
		{domain.ErrEmailExists, http.StatusBadRequest, "User with given email address already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{domain.ErrUserNotFound, http.StatusNotFound, "Couldn't find the user with given email address"},
		{domain.ErrTokenInvalid, http.StatusBadRequest, "Invalid token"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{domain.ErrMovieExists, http.StatusBadRequest, "Movie with given name already exists"},
		{domain.ErrMovieNotFound, http.StatusNotFound, "Movie with given id doesn't exist"},
		{errors.New("database exploded"), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tc := range cases {
		e := echo.New()
		handler := NewHTTPErrorHandler(zerolog.Nop())

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, rec.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%v: invalid json: %v", tc.err, err)
		}
		if resp["message"] != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, resp["message"])
		}
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "invalid token" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = c.NoContent(http.StatusOK)
	handler(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response overwritten: %d", rec.Code)
	}
}
