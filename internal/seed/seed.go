package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/repositories"
	pkgauth "github.com/srivaishnavi26/TandP-Management-System/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@tandp.local"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData creates the default admin identity and its staff profile
// if they don't exist. The admin password can be overridden with the
// SEED_ADMIN_PASSWORD environment variable.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	staffRepo := repositories.NewStaffRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")
	var finalErr error

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}

	if exists {
		lgr.Debug().Msg("Default admin account already present, skipping seed")
		return finalErr
	}

	lgr.Info().Msg("Creating default admin user...")

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	hashedPassword, err := pkgauth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	adminUser := &models.User{
		Email:       defaultAdminEmail,
		Password:    hashedPassword,
		FullName:    "Placement Cell Admin",
		IsStaff:     true,
		IsSuperuser: true,
		IsActive:    true,
	}

	userID, err := userRepo.CreateUser(ctx, adminUser)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return errors.Join(finalErr, err)
	}

	// Every staff identity carries a profile, the admin included. Staff
	// login refuses identities without one.
	adminProfile := &models.StaffProfile{
		UserID:      userID,
		Name:        "Placement Cell Admin",
		Designation: "Training and Placement Officer",
		Role:        models.RoleAdmin,
		Email:       defaultAdminEmail,
	}

	if _, err := staffRepo.Create(ctx, adminProfile); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin staff profile")
		finalErr = errors.Join(finalErr, err)
	} else {
		lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	}

	return finalErr
}
