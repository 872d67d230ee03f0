package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"      // Full access, manages users
	RoleHRManager Role = "hr_manager" // Manages people, leave and recruitment
	RoleViewer    Role = "viewer"     // Read-only dashboards and exports
)

var Roles = []string{string(RoleAdmin), string(RoleHRManager), string(RoleViewer)}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can manage other users
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManage checks if user may change HR data
func (u *User) CanManage() bool {
	return u.Role == RoleAdmin || u.Role == RoleHRManager
}
