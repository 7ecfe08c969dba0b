package domain

import "errors"

// Sentinel domain errors. The API layer translates each of these into a
// stable status code and message; anything else surfaces as a generic 500.
var (
	ErrValidation         = errors.New("request is missing required fields")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrMovieExists        = errors.New("movie already exists")
	ErrMovieNotFound      = errors.New("movie not found")
)
