package services

import (
	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/repositories"
	pkgauth "github.com/srivaishnavi26/TandP-Management-System/internal/pkg/auth"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService         IAuthService
	DriveService        IDriveService
	RegistrationService IRegistrationService
	StaffService        IStaffService
	StudentService      IStudentService
	MaterialService     IMaterialService
	ContactService      IContactService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *pkgauth.JWTService,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.StudentRepository,
			repos.StaffRepository,
			repos.TokenRepository,
			jwtService,
			logger,
		),
		DriveService: NewDriveService(repos.DriveRepository, logger),
		RegistrationService: NewRegistrationService(
			repos.RegistrationRepository,
			repos.StudentRepository,
			repos.DriveRepository,
			logger,
		),
		StaffService: NewStaffService(repos.UserRepository, repos.StaffRepository, logger),
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.UserRepository,
			repos.StaffRepository,
			storage,
			logger,
		),
		MaterialService: NewMaterialService(
			repos.MaterialRepository,
			repos.StaffRepository,
			repos.UserRepository,
			storage,
			logger,
		),
		ContactService: NewContactService(repos.ContactRepository, logger),
	}
}
