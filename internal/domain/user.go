package domain

type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin, UserRoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role is admin or above.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

// IsSuperAdmin reports whether the role is the top-level role.
func (r UserRole) IsSuperAdmin() bool {
	return r == UserRoleSuperAdmin
}

// CanManageUsers reports whether the role may create, update or list other
// users' accounts.
func (r UserRole) CanManageUsers() bool {
	return r.IsAdmin()
}

// CanViewActivityLogs reports whether the role may read the audit trail.
func (r UserRole) CanViewActivityLogs() bool {
	return r.IsAdmin()
}

type User struct {
	ID           int32    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"` // opt-in projection only, never in default reads
	Role         UserRole `json:"role"`
	CreatedOn    string   `json:"created_on"`
	UpdatedOn    string   `json:"updated_on"`
}
