package auth

import "github.com/rajdhanitech/tuition-backend/internal/domain"

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	AccessToken string
	Account     *domain.Account
}
