package teacher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
	"github.com/rajdhanitech/tuition-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go -pkg teacher . profileRepo accountRepo

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedCtx(id uuid.UUID, role domain.Role) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), id)
	return ctxutil.WithRole(ctx, role.String())
}

func TestService_SaveProfile_Success(t *testing.T) {
	t.Parallel()

	teacherID := uuid.New()
	profiles := &profileRepoMock{
		UpsertFunc: func(ctx context.Context, p *domain.TeacherProfile) (*domain.TeacherProfile, error) {
			saved := *p
			return &saved, nil
		},
	}
	svc := NewService(testLogger(), profiles, &accountRepoMock{})

	got, err := svc.SaveProfile(authedCtx(teacherID, domain.RoleTeacher), SaveProfileInput{
		Subjects: []string{" Maths ", "Physics"},
	})
	if err != nil {
		t.Fatalf("SaveProfile: unexpected error: %v", err)
	}

	if got.TeacherID != teacherID {
		t.Errorf("TeacherID mismatch: got %s", got.TeacherID)
	}
	if got.Subjects[0] != "Maths" {
		t.Errorf("subject not trimmed: %q", got.Subjects[0])
	}

	calls := profiles.UpsertCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(calls))
	}
}

func TestService_SaveProfile_NonTeacherForbidden(t *testing.T) {
	t.Parallel()

	for _, role := range []domain.Role{domain.RoleParent, domain.RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			t.Parallel()
			svc := NewService(testLogger(), &profileRepoMock{}, &accountRepoMock{})

			_, err := svc.SaveProfile(authedCtx(uuid.New(), role), SaveProfileInput{Subjects: []string{"Maths"}})
			if !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("expected ErrForbidden for %s, got: %v", role, err)
			}
		})
	}
}

func TestService_SaveProfile_EmptySubjects(t *testing.T) {
	t.Parallel()
	svc := NewService(testLogger(), &profileRepoMock{}, &accountRepoMock{})

	_, err := svc.SaveProfile(authedCtx(uuid.New(), domain.RoleTeacher), SaveProfileInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestService_GetProfile_Access(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	profiles := &profileRepoMock{
		GetByTeacherIDFunc: func(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherProfile, error) {
			return &domain.TeacherProfile{TeacherID: teacherID, Subjects: []string{"Maths"}}, nil
		},
	}
	svc := NewService(testLogger(), profiles, &accountRepoMock{})

	if _, err := svc.GetProfile(authedCtx(ownerID, domain.RoleTeacher), ownerID); err != nil {
		t.Errorf("own profile: unexpected error: %v", err)
	}
	if _, err := svc.GetProfile(authedCtx(uuid.New(), domain.RoleAdmin), ownerID); err != nil {
		t.Errorf("admin read: unexpected error: %v", err)
	}
	if _, err := svc.GetProfile(authedCtx(uuid.New(), domain.RoleTeacher), ownerID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("other teacher: expected ErrForbidden, got: %v", err)
	}
}

func TestService_ListTeachers_AdminOnly(t *testing.T) {
	t.Parallel()

	withProfile := domain.Account{ID: uuid.New(), Name: "Meena", Role: domain.RoleTeacher}
	withoutProfile := domain.Account{ID: uuid.New(), Name: "Ravi", Role: domain.RoleTeacher}

	accounts := &accountRepoMock{
		ListByRoleFunc: func(ctx context.Context, role domain.Role) ([]domain.Account, error) {
			if role != domain.RoleTeacher {
				t.Errorf("ListByRole called with %s", role)
			}
			return []domain.Account{withProfile, withoutProfile}, nil
		},
	}
	profiles := &profileRepoMock{
		GetByTeacherIDFunc: func(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherProfile, error) {
			if teacherID == withProfile.ID {
				return &domain.TeacherProfile{TeacherID: teacherID, Subjects: []string{"Maths", "Physics"}}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), profiles, accounts)

	roster, err := svc.ListTeachers(authedCtx(uuid.New(), domain.RoleAdmin))
	if err != nil {
		t.Fatalf("ListTeachers: unexpected error: %v", err)
	}

	if len(roster) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(roster))
	}
	if len(roster[0].Subjects) != 2 {
		t.Errorf("expected subjects for %s, got %v", roster[0].Account.Name, roster[0].Subjects)
	}
	if len(roster[1].Subjects) != 0 {
		t.Errorf("expected empty subjects for %s, got %v", roster[1].Account.Name, roster[1].Subjects)
	}

	// Non-admin callers are rejected.
	if _, err := svc.ListTeachers(authedCtx(uuid.New(), domain.RoleTeacher)); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for teacher, got: %v", err)
	}
}
