package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// Login authenticates an account with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong;
// the two cases are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in",
		slog.String("account_id", account.ID.String()))

	return &AuthResult{AccessToken: token, Account: account}, nil
}
