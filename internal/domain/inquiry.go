package domain

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a parent's request for a home tutor, tracked through
// Pending -> Assigned -> Completed. Teacher and Fee stay nil until an
// admin assigns them.
type Inquiry struct {
	ID          uuid.UUID
	ParentID    uuid.UUID
	StudentName string
	ClassLevel  string
	Subjects    []string
	Location    string
	Contact     string
	Status      InquiryStatus
	TeacherID   *uuid.UUID
	Fee         *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InquiryUpdate carries the admin-mutable fields. Non-nil fields are
// written in a single statement; nil fields are left untouched.
type InquiryUpdate struct {
	Status    *InquiryStatus
	TeacherID *uuid.UUID
	Fee       *int
}
