package user

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// AtLeast reports whether r grants the privileges of min.
// staff < manager < admin.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank()
}

func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleStaff:
		return 1
	default:
		return 0
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
