package teacher

import (
	"context"
	"errors"
	"fmt"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
	"github.com/rajdhanitech/tuition-backend/pkg/ctxutil"
)

// RosterEntry pairs a teacher account with its subject profile, when one exists.
type RosterEntry struct {
	Account  domain.Account
	Subjects []string
}

// ListTeachers returns the full teacher roster with subjects (admin only).
// Teachers without a saved profile appear with an empty subject list.
func (s *Service) ListTeachers(ctx context.Context) ([]RosterEntry, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	accounts, err := s.accounts.ListByRole(ctx, domain.RoleTeacher)
	if err != nil {
		return nil, fmt.Errorf("teacher.ListTeachers: %w", err)
	}

	roster := make([]RosterEntry, 0, len(accounts))
	for _, a := range accounts {
		entry := RosterEntry{Account: a, Subjects: []string{}}

		p, err := s.profiles.GetByTeacherID(ctx, a.ID)
		switch {
		case err == nil:
			entry.Subjects = p.Subjects
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, fmt.Errorf("teacher.ListTeachers profile %s: %w", a.ID, err)
		}

		roster = append(roster, entry)
	}

	return roster, nil
}
