package inquiry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// Submit creates a new pending inquiry for the calling parent and fires the
// admin notification. Returns ErrForbidden for roles that cannot submit.
// A notification outage never fails the submission.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Inquiry, error) {
	callerID, cap, err := capabilityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !cap.CanSubmit {
		return nil, domain.ErrForbidden
	}

	// Normalize input before validation.
	input.StudentName = strings.TrimSpace(input.StudentName)
	input.Location = strings.TrimSpace(input.Location)
	input.Contact = strings.TrimSpace(input.Contact)
	subjects := make([]string, 0, len(input.Subjects))
	for _, subj := range input.Subjects {
		if subj = strings.TrimSpace(subj); subj != "" {
			subjects = append(subjects, subj)
		}
	}
	input.Subjects = subjects

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	created, err := s.inquiries.Create(ctx, &domain.Inquiry{
		ID:          uuid.New(),
		ParentID:    callerID,
		StudentName: input.StudentName,
		ClassLevel:  input.ClassLevel,
		Subjects:    input.Subjects,
		Location:    input.Location,
		Contact:     input.Contact,
		Status:      domain.InquiryStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("inquiry.Submit create: %w", err)
	}

	parentName := s.parentName(ctx, callerID)
	s.notify.InquiryCreated(*created, parentName)

	s.log.InfoContext(ctx, "inquiry submitted",
		slog.String("inquiry_id", created.ID.String()),
		slog.String("parent_id", callerID.String()),
		slog.String("class_level", created.ClassLevel))

	return created, nil
}

// parentName resolves the parent's display name for notifications; the
// account ID stands in when the lookup fails.
func (s *Service) parentName(ctx context.Context, parentID uuid.UUID) string {
	account, err := s.accounts.GetByID(ctx, parentID)
	if err != nil {
		s.log.WarnContext(ctx, "parent lookup for notification failed",
			slog.String("parent_id", parentID.String()),
			slog.Any("error", err))
		return parentID.String()
	}
	return account.Name
}
