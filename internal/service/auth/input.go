package auth

import (
	"net/mail"
	"strings"

	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

// NormalizeEmail lowercases and trims an address. Every write and lookup of
// accounts.email goes through this, so stored values and lookup keys always
// compare exactly.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Validate validates the registration input. Admin accounts are provisioned
// out of band, so only parent and teacher roles are accepted here.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		// bcrypt truncates input beyond 72 bytes
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	switch domain.Role(i.Role) {
	case domain.RoleParent, domain.RoleTeacher:
	case domain.RoleAdmin:
		errs = append(errs, domain.FieldError{Field: "role", Message: "admin registration is not allowed"})
	default:
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be parent or teacher"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
