package user

import "time"

type Role string

const (
	RoleAdminHR  Role = "admin_hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdminHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
