package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// ValidateToken checks an access token and returns the account ID and role
// for the request context. Any token defect maps to ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	accountID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return accountID, role.String(), nil
}
