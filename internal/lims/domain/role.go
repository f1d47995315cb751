package domain

import "fmt"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleResearcher Role = "researcher"
	RoleLabTech    Role = "lab_tech"
)

// roleRanks orders the roles; a higher rank implies every lower privilege.
var roleRanks = map[Role]int{
	RoleAdmin:      3,
	RoleResearcher: 2,
	RoleLabTech:    1,
}

// Rank returns the position of r in the hierarchy, or 0 for an unknown role.
func (r Role) Rank() int { return roleRanks[r] }

func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
	return r, nil
}

// CanPerformAction reports whether u holds required or a role above it.
// An absent user is never allowed.
func CanPerformAction(u *User, required Role) bool {
	if u == nil {
		return false
	}
	return outranks(u.Role, required)
}

func outranks(have, required Role) bool {
	h, ok := roleRanks[have]
	if !ok {
		return false
	}
	r, ok := roleRanks[required]
	if !ok {
		return false
	}
	return h >= r
}
