package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/config"
	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// accountRepo defines the account repository interface needed by auth service.
type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID, role domain.Role) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.Role, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		accounts: accounts,
		jwt:      jwt,
		cfg:      cfg,
	}
}
