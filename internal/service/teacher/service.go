// Package teacher manages teacher subject profiles and the admin roster.
package teacher

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// profileRepo defines the teacher profile repository interface needed by this service.
type profileRepo interface {
	Upsert(ctx context.Context, p *domain.TeacherProfile) (*domain.TeacherProfile, error)
	GetByTeacherID(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherProfile, error)
}

// accountRepo defines the account repository interface needed by this service.
type accountRepo interface {
	ListByRole(ctx context.Context, role domain.Role) ([]domain.Account, error)
}

// Service implements teacher profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	accounts accountRepo
}

// NewService creates a new teacher service instance.
func NewService(logger *slog.Logger, profiles profileRepo, accounts accountRepo) *Service {
	return &Service{
		log:      logger.With("service", "teacher"),
		profiles: profiles,
		accounts: accounts,
	}
}
