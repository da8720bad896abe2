package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StaffRepository        *StaffRepository
	StudentRepository      *StudentRepository
	DriveRepository        *DriveRepository
	RegistrationRepository *RegistrationRepository
	MaterialRepository     *MaterialRepository
	ContactRepository      *ContactRepository
	TokenRepository        *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StaffRepository:        NewStaffRepository(db),
		StudentRepository:      NewStudentRepository(db),
		DriveRepository:        NewDriveRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		MaterialRepository:     NewMaterialRepository(db),
		ContactRepository:      NewContactRepository(db),
		TokenRepository:        NewTokenRepository(db),
	}
}
