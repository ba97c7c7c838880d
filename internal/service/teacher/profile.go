package teacher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
	"github.com/rajdhanitech/tuition-backend/pkg/ctxutil"
)

// SaveProfileInput holds parameters for saving a teacher's subject profile.
type SaveProfileInput struct {
	Subjects []string
}

// Validate validates the profile input.
func (i SaveProfileInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Subjects) == 0 {
		errs = append(errs, domain.FieldError{Field: "subjects", Message: "at least one subject required"})
	}
	for _, s := range i.Subjects {
		if s == "" {
			errs = append(errs, domain.FieldError{Field: "subjects", Message: "subject names must not be empty"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SaveProfile replaces the calling teacher's subject list. Saving again
// overwrites the previous list; subjects never accumulate across saves.
func (s *Service) SaveProfile(ctx context.Context, input SaveProfileInput) (*domain.TeacherProfile, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if domain.Role(ctxutil.RoleFromCtx(ctx)) != domain.RoleTeacher {
		return nil, domain.ErrForbidden
	}

	subjects := make([]string, 0, len(input.Subjects))
	for _, subj := range input.Subjects {
		subjects = append(subjects, strings.TrimSpace(subj))
	}
	input.Subjects = subjects

	if err := input.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.profiles.Upsert(ctx, &domain.TeacherProfile{
		TeacherID: callerID,
		Subjects:  input.Subjects,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("teacher.SaveProfile: %w", err)
	}

	s.log.InfoContext(ctx, "teacher profile saved",
		slog.String("teacher_id", callerID.String()),
		slog.Int("subjects", len(saved.Subjects)))

	return saved, nil
}

// GetProfile returns a teacher's profile. Teachers can read their own,
// admins can read any.
func (s *Service) GetProfile(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherProfile, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) && callerID != teacherID {
		return nil, domain.ErrForbidden
	}

	p, err := s.profiles.GetByTeacherID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("teacher.GetProfile: %w", err)
	}
	return p, nil
}
