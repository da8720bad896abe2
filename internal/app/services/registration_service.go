package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/repositories"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
)

// IRegistrationService defines the student-facing registration ledger.
type IRegistrationService interface {
	Register(ctx context.Context, userID, driveID int64) (*dto.RegisterResult, error)
	ListAvailableDrives(ctx context.Context, userID int64) ([]dto.DriveResponse, error)
	ListRegisteredDrives(ctx context.Context, userID int64) ([]dto.RegistrationResponse, error)
}

// RegistrationService handles drive registrations
type RegistrationService struct {
	registrationRepo repositories.IRegistrationRepository
	studentRepo      repositories.IStudentRepository
	driveRepo        repositories.IDriveRepository
	logger           zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	registrationRepo repositories.IRegistrationRepository,
	studentRepo repositories.IStudentRepository,
	driveRepo repositories.IDriveRepository,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		studentRepo:      studentRepo,
		driveRepo:        driveRepo,
		logger:           logger,
	}
}

// resolveStudent maps the caller's identity to their student record.
func (s *RegistrationService) resolveStudent(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}
	return student, nil
}

// Register records a student's interest in a drive. Registering twice for
// the same drive is not an error: the second attempt changes nothing and
// the result says so. Concurrent duplicate attempts are resolved by the
// ledger's uniqueness constraint, so exactly one row survives.
func (s *RegistrationService) Register(ctx context.Context, userID, driveID int64) (*dto.RegisterResult, error) {
	student, err := s.resolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	created, err := s.registrationRepo.CreateIfAbsent(ctx, student.ID, driveID)
	if err != nil {
		return nil, err
	}

	if created {
		s.logger.Info().
			Int64("studentId", student.ID).
			Int64("driveId", driveID).
			Msg("Student registered for drive")
	}

	return &dto.RegisterResult{
		AlreadyRegistered: !created,
		CompanyName:       drive.CompanyName,
	}, nil
}

// ListAvailableDrives returns drives the student has not yet registered
// for, soonest first.
func (s *RegistrationService) ListAvailableDrives(ctx context.Context, userID int64) ([]dto.DriveResponse, error) {
	student, err := s.resolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	drives, err := s.registrationRepo.ListAvailableDrives(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DriveResponse, 0, len(drives))
	for i := range drives {
		responses = append(responses, *mapDriveToResponse(&drives[i]))
	}
	return responses, nil
}

// ListRegisteredDrives returns the student's ledger entries joined with
// their drives, soonest first.
func (s *RegistrationService) ListRegisteredDrives(ctx context.Context, userID int64) ([]dto.RegistrationResponse, error) {
	student, err := s.resolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	registered, err := s.registrationRepo.ListRegisteredDrives(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RegistrationResponse, 0, len(registered))
	for i := range registered {
		r := &registered[i]
		responses = append(responses, dto.RegistrationResponse{
			ID:           r.Registration.ID,
			StudentID:    r.Registration.StudentID,
			RegisteredAt: r.Registration.RegisteredAt,
			Drive:        *mapDriveToResponse(&r.Drive),
		})
	}
	return responses, nil
}
