package inquiry

import (
	"github.com/google/uuid"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// MaxFee bounds the monthly fee an admin can record against an inquiry.
const MaxFee = 100000

// SubmitInput holds parameters for submitting a new inquiry.
type SubmitInput struct {
	StudentName string
	ClassLevel  string
	Subjects    []string
	Location    string
	Contact     string
}

// Validate validates the submit input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.StudentName == "" {
		errs = append(errs, domain.FieldError{Field: "student_name", Message: "required"})
	} else if len(i.StudentName) > 200 {
		errs = append(errs, domain.FieldError{Field: "student_name", Message: "too long"})
	}

	if i.ClassLevel == "" {
		errs = append(errs, domain.FieldError{Field: "class_level", Message: "required"})
	} else if !domain.IsValidClassLevel(i.ClassLevel) {
		errs = append(errs, domain.FieldError{Field: "class_level", Message: "must be one of 1st through 12th"})
	}

	// Subjects, location and contact are free-form and may be empty.
	if len(i.Contact) > 50 {
		errs = append(errs, domain.FieldError{Field: "contact", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for an admin update of an inquiry. Nil fields
// are left untouched. Force skips the forward-only status transition check.
type UpdateInput struct {
	Status    *string
	TeacherID *uuid.UUID
	Fee       *int
	Force     bool
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Status == nil && i.TeacherID == nil && i.Fee == nil {
		errs = append(errs, domain.FieldError{Field: "update", Message: "at least one field required"})
	}

	if i.Status != nil && !domain.InquiryStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be Pending, Assigned or Completed"})
	}

	if i.Fee != nil && (*i.Fee < 0 || *i.Fee > MaxFee) {
		errs = append(errs, domain.FieldError{Field: "fee", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
