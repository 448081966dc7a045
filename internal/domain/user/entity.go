package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Full access, manages system users
	RoleManager Role = "manager" // Manages attendance data
	RoleViewer  Role = "viewer"  // Read-only dashboards and reports
)

var Roles = []string{string(RoleAdmin), string(RoleManager), string(RoleViewer)}

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManage checks if user can change attendance data
func (u *User) CanManage() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
