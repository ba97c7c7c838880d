package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account with the given role and returns the filled
// domain.Account. The password hash is a placeholder; seeded accounts are not
// meant to pass credential checks.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	account := domain.Account{
		ID:           uuid.New(),
		Name:         "Test " + string(role) + " " + suffix,
		Email:        string(role) + "-" + suffix + "@example.com",
		PasswordHash: "seeded-hash-" + suffix,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO accounts (id, name, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.ID, account.Name, account.Email, account.PasswordHash, account.Role.String(), account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return account
}

// SeedInquiry creates a pending inquiry owned by the given parent account.
func SeedInquiry(t *testing.T, pool *pgxpool.Pool, parentID uuid.UUID) domain.Inquiry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	inquiry := domain.Inquiry{
		ID:          uuid.New(),
		ParentID:    parentID,
		StudentName: "Student " + suffix,
		ClassLevel:  "5th",
		Subjects:    []string{"Maths", "Science"},
		Location:    "Sector " + suffix,
		Contact:     "+911234567890",
		Status:      domain.InquiryStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO inquiries (id, parent_id, student_name, class_level, subjects, location, contact, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		inquiry.ID, inquiry.ParentID, inquiry.StudentName, inquiry.ClassLevel, inquiry.Subjects,
		inquiry.Location, inquiry.Contact, inquiry.Status.String(), inquiry.CreatedAt, inquiry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInquiry insert: %v", err)
	}

	return inquiry
}
