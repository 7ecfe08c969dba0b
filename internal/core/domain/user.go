package domain

import "time"

// User models an account holder. Email is the login key and is unique at
// the storage layer. PasswordHash is never serialised to clients.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	MovieIDs     []string  `json:"movies,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
