package sdk

// Role is the closed set of role identifiers the server issues and accepts
// on login. The wire value is an exact lowercase string; anything else is
// outside the set and routes to fallback behavior client-side.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleTeacher      Role = "teacher"
	RoleStudent      Role = "student"
	RoleParent       Role = "parent"
	RoleAccountant   Role = "accountant"
	RoleReceptionist Role = "receptionist"
	RoleThirdParty   Role = "thirdparty"
)

// Roles returns the known roles in display order.
func Roles() []Role {
	return []Role{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
		RoleAccountant,
		RoleReceptionist,
		RoleThirdParty,
	}
}

// ParseRole maps a server-supplied role string onto the closed set. The
// second return is false for unrecognized strings.
func ParseRole(s string) (Role, bool) {
	for _, role := range Roles() {
		if string(role) == s {
			return role, true
		}
	}
	return "", false
}
