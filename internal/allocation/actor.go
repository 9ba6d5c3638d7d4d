package allocation

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// NormalizeRole maps unknown roles to the viewer role.
func NormalizeRole(role string) Role {
	switch Role(role) {
	case RoleOwner, RoleEditor, RoleViewer:
		return Role(role)
	default:
		return RoleViewer
	}
}

// Actor is the caller of an operation. Role resolution happens outside of
// the allocation engine, the result is passed in with every call.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// CanWrite reports if the actor may create, replace or remove allocations.
func (a Actor) CanWrite() bool {
	if a.UserID == uuid.Nil {
		return false
	}

	return a.Role == RoleOwner || a.Role == RoleEditor
}
