package domain

// Role is the coarse capability tier assigned to a user. There is no
// hierarchy between roles: every operation enumerates the exact roles it
// accepts, and super_admin only satisfies checks that list it explicitly.
type Role string

const (
	RoleUser       Role = "user"
	RoleToolAdmin  Role = "tool_admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleToolAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// AllRoles lists every valid role, used by endpoints open to any
// authenticated caller.
var AllRoles = []Role{RoleUser, RoleToolAdmin, RoleSuperAdmin}

// ToolStatus is the availability state of a tool.
type ToolStatus string

const (
	ToolStatusAvailable  ToolStatus = "available"
	ToolStatusCheckedOut ToolStatus = "checked_out"
)

func (s ToolStatus) String() string { return string(s) }

func (s ToolStatus) IsValid() bool {
	switch s {
	case ToolStatusAvailable, ToolStatusCheckedOut:
		return true
	}
	return false
}
