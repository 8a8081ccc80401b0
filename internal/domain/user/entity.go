package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // back-office admin - full access
	RoleQA    Role = "qa"    // can grade sales and apply docks
	RoleAgent Role = "agent" // floor agent - own records only
)

// User is a back-office login (admin or QA). Agents authenticate against
// the roster instead; see the auth service.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanEvaluate checks if the user may edit QA fields on sales
func (u *User) CanEvaluate() bool {
	return u.Role == RoleAdmin || u.Role == RoleQA
}
