package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered identity with exactly one role.
// Accounts are never deleted and the role is immutable after signup.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TeacherProfile holds the subject list a teacher offers.
// At most one profile exists per teacher; saving again replaces it.
type TeacherProfile struct {
	TeacherID uuid.UUID
	Subjects  []string
	UpdatedAt time.Time
}
