package models

import "time"

// StaffRole is the closed set of staff role tags. Access logic compares
// against these constants, never free text.
type StaffRole string

const (
	RoleVerbalTrainer         StaffRole = "verbal_trainer"
	RoleAptitudeTrainer       StaffRole = "aptitude_trainer"
	RoleDepartmentCoordinator StaffRole = "department_coordinator"
	RoleGenericStaff          StaffRole = "generic_staff"
	RoleAdmin                 StaffRole = "admin"
)

// Valid reports whether r is one of the known staff roles.
func (r StaffRole) Valid() bool {
	switch r {
	case RoleVerbalTrainer, RoleAptitudeTrainer, RoleDepartmentCoordinator, RoleGenericStaff, RoleAdmin:
		return true
	}
	return false
}

// StaffProfile defines the staff profile attached 1:1 to an identity,
// based on the 'staff_profiles' table.
type StaffProfile struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Designation string    `json:"designation" db:"designation"`
	Role        StaffRole `json:"role" db:"role"`
	Branch      string    `json:"branch" db:"branch"`
	Mobile      string    `json:"mobile" db:"mobile"`
	Email       string    `json:"email" db:"email"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	User        *User     `json:"user,omitempty"` // Relation, no db tag
}
