package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/moviebag/movie-bag/internal/api/metrics"
	"github.com/moviebag/movie-bag/internal/core/domain"
	"github.com/moviebag/movie-bag/internal/core/password"
	"github.com/moviebag/movie-bag/internal/core/ports"
	"github.com/moviebag/movie-bag/internal/core/token"
)

// AuthService implements signup, login and the password-reset flow.
type AuthService struct {
	users       ports.UserRepository
	movies      ports.MovieRepository
	hasher      *password.Hasher
	tokens      *token.Service
	resetTokens ports.ResetTokenStore
	mail        ports.MailEnqueuer
	resetURL    string
	logger      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	movies ports.MovieRepository,
	hasher *password.Hasher,
	tokens *token.Service,
	resetTokens ports.ResetTokenStore,
	mail ports.MailEnqueuer,
	resetURL string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		movies:      movies,
		hasher:      hasher,
		tokens:      tokens,
		resetTokens: resetTokens,
		mail:        mail,
		resetURL:    resetURL,
		logger:      logger,
	}
}

// Signup creates an account and returns the new user id. Email uniqueness
// is enforced by the repository's storage-level constraint, so two
// concurrent signups with the same email cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, email, plainPassword string) (string, error) {
	if email == "" || len(plainPassword) < 6 {
		return "", domain.ErrValidation
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues("error").Inc()
		}
		return "", err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created.ID, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password produce the same error so the response does not leak
// which part failed.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, error) {
	if email == "" || plainPassword == "" {
		return "", domain.ErrValidation
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.hasher.Verify(plainPassword, user.PasswordHash); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return "", err
	}

	signed, err := s.tokens.Issue(user.ID, token.PurposeSession, 0)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return signed, nil
}

// ForgotPassword issues a 24-hour reset token bound to the account and
// enqueues the reset email. An unknown email reports ErrUserNotFound and
// never issues a token.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrValidation
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	resetToken, err := s.tokens.Issue(user.ID, token.PurposePasswordReset, token.ResetTTL)
	if err != nil {
		return err
	}

	link := s.resetURL + resetToken
	s.mail.Enqueue(domain.Email{
		Kind:     domain.EmailPasswordReset,
		To:       user.Email,
		Subject:  "[Movie-bag] Reset Your Password",
		TextBody: fmt.Sprintf("To reset your password visit %s\n\nIf you did not request a reset, ignore this email.", link),
		HTMLBody: fmt.Sprintf(`<p>To reset your password <a href=%q>click here</a>.</p><p>If you did not request a reset, ignore this email.</p>`, link),
	})

	metrics.PasswordResetsTotal.WithLabelValues("requested").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("password reset requested")
	return nil
}

// ResetPassword verifies the reset token, consumes it so it cannot be
// replayed, persists the new password hash, and enqueues a confirmation
// email. A failed token check never mutates the stored password.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || len(newPassword) < 6 {
		return domain.ErrValidation
	}

	claims, err := s.tokens.Verify(resetToken, token.PurposePasswordReset)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			metrics.PasswordResetsTotal.WithLabelValues("expired_token").Inc()
		case errors.Is(err, domain.ErrTokenInvalid):
			metrics.PasswordResetsTotal.WithLabelValues("bad_token").Inc()
		}
		return err
	}

	// Single use: spend the jti before touching the password. Remaining
	// lifetime bounds how long the consumption record must outlive the token.
	remaining := time.Until(claims.ExpiresAt.Time)
	firstUse, err := s.resetTokens.Consume(ctx, claims.ID, remaining)
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	if !firstUse {
		metrics.PasswordResetsTotal.WithLabelValues("bad_token").Inc()
		return domain.ErrTokenInvalid
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrTokenInvalid
		}
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.mail.Enqueue(domain.Email{
		Kind:     domain.EmailPasswordConfirmed,
		To:       user.Email,
		Subject:  "[Movie-bag] Password reset successful",
		TextBody: "Password reset was successful",
		HTMLBody: "<p>Password reset was successful</p>",
	})

	metrics.PasswordResetsTotal.WithLabelValues("completed").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("password reset completed")
	return nil
}

// DeleteAccount removes the user and cascades deletion of the movies they
// added, mirroring the catalog's reverse-delete rule.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	// Movies first: a failure here leaves the account intact and the
	// operation retryable, rather than orphaning owned movies.
	if err := s.movies.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}
