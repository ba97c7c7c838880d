package inquiry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// Update applies an admin mutation to an inquiry: status transition, teacher
// assignment, fee, in any combination. Status moves are forward-only along
// Pending -> Assigned -> Completed unless input.Force is set. The read and
// write run in one transaction so concurrent updates cannot interleave.
func (s *Service) Update(ctx context.Context, inquiryID uuid.UUID, input UpdateInput) (*domain.Inquiry, error) {
	_, cap, err := capabilityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !cap.CanMutate {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Inquiry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.inquiries.GetByID(txCtx, inquiryID)
		if err != nil {
			return fmt.Errorf("get inquiry: %w", err)
		}

		upd := domain.InquiryUpdate{
			TeacherID: input.TeacherID,
			Fee:       input.Fee,
		}

		if input.Status != nil {
			next := domain.InquiryStatus(*input.Status)
			if !input.Force && !current.Status.CanTransitionTo(next) {
				return domain.NewValidationError("status",
					fmt.Sprintf("cannot move from %s to %s", current.Status, next))
			}
			upd.Status = &next
		}

		if input.TeacherID != nil {
			if err := s.checkTeacher(txCtx, *input.TeacherID); err != nil {
				return err
			}
		}

		updated, err = s.inquiries.Update(txCtx, inquiryID, upd)
		if err != nil {
			return fmt.Errorf("update inquiry: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("inquiry.Update: %w", err)
	}

	s.log.InfoContext(ctx, "inquiry updated",
		slog.String("inquiry_id", inquiryID.String()),
		slog.Bool("forced", input.Force))

	return updated, nil
}

// checkTeacher verifies the assigned account exists and holds the teacher role.
func (s *Service) checkTeacher(ctx context.Context, teacherID uuid.UUID) error {
	account, err := s.accounts.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("teacher_id", "no such account")
		}
		return fmt.Errorf("get teacher account: %w", err)
	}
	if account.Role != domain.RoleTeacher {
		return domain.NewValidationError("teacher_id", "account is not a teacher")
	}
	return nil
}
