package authorization

import "strings"

type UserRole string

const (
	RoleUser      UserRole = "USER"
	RoleModerator UserRole = "MODERATOR"
	RoleSupport   UserRole = "SUPPORT"
	RoleAdmin     UserRole = "ADMIN"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleSupport, RoleAdmin:
		return true
	}
	return false
}

// ParseUserRole accepts any casing; unknown values degrade to RoleUser.
func ParseUserRole(s string) UserRole {
	role := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// AllRoles lists roles from least to most privileged.
func AllRoles() []UserRole {
	return []UserRole{RoleUser, RoleSupport, RoleModerator, RoleAdmin}
}
