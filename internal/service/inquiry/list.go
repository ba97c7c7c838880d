package inquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// List returns the inquiries visible to the caller: all of them for admins,
// own submissions for parents, assigned ones for teachers.
func (s *Service) List(ctx context.Context) ([]domain.Inquiry, error) {
	_, cap, err := capabilityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	inquiries, err := s.inquiries.ListByScope(ctx, cap.Scope)
	if err != nil {
		return nil, fmt.Errorf("inquiry.List: %w", err)
	}

	return inquiries, nil
}

// Get returns a single inquiry if it falls inside the caller's scope.
// Out-of-scope inquiries are reported as not found, so a caller cannot
// distinguish them from absent ones.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	callerID, cap, err := capabilityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	inq, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("inquiry.Get: %w", err)
	}

	switch {
	case cap.Scope.All:
	case cap.Scope.ParentID == callerID && inq.ParentID == callerID:
	case cap.Scope.TeacherID == callerID && inq.TeacherID != nil && *inq.TeacherID == callerID:
	default:
		return nil, domain.ErrNotFound
	}

	return inq, nil
}
