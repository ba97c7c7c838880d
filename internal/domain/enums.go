package domain

// Role represents the authorization level of an account.
type Role string

const (
	RoleParent  Role = "parent"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleParent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// InquiryStatus represents the lifecycle state of a tuition inquiry.
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "Pending"
	InquiryStatusAssigned  InquiryStatus = "Assigned"
	InquiryStatusCompleted InquiryStatus = "Completed"
)

func (s InquiryStatus) String() string { return string(s) }

func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusAssigned, InquiryStatusCompleted:
		return true
	}
	return false
}

// rank orders statuses along the Pending -> Assigned -> Completed progression.
func (s InquiryStatus) rank() int {
	switch s {
	case InquiryStatusPending:
		return 0
	case InquiryStatusAssigned:
		return 1
	case InquiryStatusCompleted:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next is a forward step.
// Staying on the same status counts as forward (a no-op update is allowed).
// Backward moves require the admin override flag at the service layer.
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	return next.rank() >= s.rank()
}

// ClassLevels is the fixed domain of school grades an inquiry may target.
var ClassLevels = []string{
	"1st", "2nd", "3rd", "4th", "5th", "6th",
	"7th", "8th", "9th", "10th", "11th", "12th",
}

// IsValidClassLevel reports whether level is one of the twelve grades.
func IsValidClassLevel(level string) bool {
	for _, l := range ClassLevels {
		if l == level {
			return true
		}
	}
	return false
}
