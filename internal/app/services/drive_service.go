package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/repositories"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/helpers"
)

// IDriveService defines placement drive catalog operations.
type IDriveService interface {
	CreateDrive(ctx context.Context, req *dto.CreateDriveRequest) (*dto.DriveResponse, error)
	GetDrive(ctx context.Context, id int64) (*dto.DriveResponse, error)
	ListDrives(ctx context.Context, companyName string, page, pageSize int) (*dto.DriveListResponse, error)
	UpdateDrive(ctx context.Context, id int64, req *dto.UpdateDriveRequest) (*dto.DriveResponse, error)
	DeleteDrive(ctx context.Context, id int64) error
}

// DriveService handles the placement drive catalog
type DriveService struct {
	driveRepo repositories.IDriveRepository
	logger    zerolog.Logger
}

// NewDriveService creates a new DriveService
func NewDriveService(driveRepo repositories.IDriveRepository, logger zerolog.Logger) *DriveService {
	return &DriveService{driveRepo: driveRepo, logger: logger}
}

func parseDriveDate(value string) (time.Time, error) {
	date, err := time.Parse(dto.DriveDateFormat, value)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return date, nil
}

// CreateDrive adds a drive to the catalog. Dates in the past are accepted;
// the catalog also records drives entered retroactively.
func (s *DriveService) CreateDrive(ctx context.Context, req *dto.CreateDriveRequest) (*dto.DriveResponse, error) {
	date, err := parseDriveDate(req.Date)
	if err != nil {
		return nil, err
	}

	drive := &models.PlacementDrive{
		CompanyName: req.CompanyName,
		JobRole:     req.JobRole,
		Date:        date,
		Package:     req.Package,
		Description: req.Description,
	}

	id, err := s.driveRepo.Create(ctx, drive)
	if err != nil {
		return nil, err
	}
	drive.ID = id

	s.logger.Info().Int64("driveId", id).Str("company", drive.CompanyName).Msg("Placement drive created")
	return mapDriveToResponse(drive), nil
}

// GetDrive retrieves a single drive.
func (s *DriveService) GetDrive(ctx context.Context, id int64) (*dto.DriveResponse, error) {
	drive, err := s.driveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapDriveToResponse(drive), nil
}

// ListDrives returns a page of drives, optionally filtered by company name.
func (s *DriveService) ListDrives(ctx context.Context, companyName string, page, pageSize int) (*dto.DriveListResponse, error) {
	drives, total, err := s.driveRepo.GetAll(ctx, companyName, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DriveResponse, 0, len(drives))
	for i := range drives {
		responses = append(responses, *mapDriveToResponse(&drives[i]))
	}

	return &dto.DriveListResponse{
		Drives:     responses,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// UpdateDrive replaces every field of an existing drive.
func (s *DriveService) UpdateDrive(ctx context.Context, id int64, req *dto.UpdateDriveRequest) (*dto.DriveResponse, error) {
	drive, err := s.driveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date, err := parseDriveDate(req.Date)
	if err != nil {
		return nil, err
	}

	drive.CompanyName = req.CompanyName
	drive.JobRole = req.JobRole
	drive.Date = date
	drive.Package = req.Package
	drive.Description = req.Description

	if err := s.driveRepo.Update(ctx, drive); err != nil {
		return nil, err
	}

	return mapDriveToResponse(drive), nil
}

// DeleteDrive removes a drive. Ledger entries referencing it are removed
// with it; students simply stop seeing the drive in either listing.
func (s *DriveService) DeleteDrive(ctx context.Context, id int64) error {
	if err := s.driveRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("driveId", id).Msg("Placement drive deleted")
	return nil
}

func mapDriveToResponse(drive *models.PlacementDrive) *dto.DriveResponse {
	return &dto.DriveResponse{
		ID:          drive.ID,
		CompanyName: drive.CompanyName,
		JobRole:     drive.JobRole,
		Date:        drive.Date.Format(dto.DriveDateFormat),
		Package:     drive.Package,
		Description: drive.Description,
		CreatedAt:   drive.CreatedAt,
	}
}
