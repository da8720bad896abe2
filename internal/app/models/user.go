package models

import (
	"time"
)

// User defines the identity model based on the 'users' table. The two flags
// drive every capability check: is_superuser marks administrators, is_staff is
// true for both administrators and plain staff.
type User struct {
	ID          int64      `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	Password    string     `json:"-" db:"password"`
	FullName    string     `json:"fullName" db:"full_name"`
	IsStaff     bool       `json:"isStaff" db:"is_staff"`
	IsSuperuser bool       `json:"isSuperuser" db:"is_superuser"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
