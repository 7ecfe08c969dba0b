package ports

import "context"

// AuthService orchestrates the account flows. Each call is a single
// request/response transaction; the only state that survives it is the
// persisted user document and the token handed back to the client.
type AuthService interface {
	Signup(ctx context.Context, email, plainPassword string) (string, error)
	Login(ctx context.Context, email, plainPassword string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	DeleteAccount(ctx context.Context, userID string) error
}
