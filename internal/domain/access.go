package domain

import "github.com/google/uuid"

// InquiryScope describes which inquiry records a caller may read.
// Exactly one of All, ParentID, TeacherID is meaningful.
type InquiryScope struct {
	All       bool
	ParentID  uuid.UUID
	TeacherID uuid.UUID
}

// InquiryCapability is the per-request access descriptor for inquiry data:
// the visible record scope plus the permitted mutations. It is derived once
// from the caller's identity and role, and handlers and repositories consume
// it instead of re-checking roles.
type InquiryCapability struct {
	Scope InquiryScope

	// CanSubmit permits creating new inquiries (parents).
	CanSubmit bool
	// CanMutate permits overwriting status, teacher and fee (admins).
	CanMutate bool
}

// CapabilityFor evaluates the access policy for a caller.
// Admins see and mutate everything; teachers see inquiries assigned to them;
// parents see inquiries they submitted and may create new ones.
// An unknown role yields an empty capability (sees nothing, may do nothing).
func CapabilityFor(accountID uuid.UUID, role Role) InquiryCapability {
	switch role {
	case RoleAdmin:
		return InquiryCapability{
			Scope:     InquiryScope{All: true},
			CanMutate: true,
		}
	case RoleTeacher:
		return InquiryCapability{
			Scope: InquiryScope{TeacherID: accountID},
		}
	case RoleParent:
		return InquiryCapability{
			Scope:     InquiryScope{ParentID: accountID},
			CanSubmit: true,
		}
	}
	return InquiryCapability{}
}
