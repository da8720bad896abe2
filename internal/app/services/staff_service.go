package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/repositories"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
	pkgauth "github.com/srivaishnavi26/TandP-Management-System/internal/pkg/auth"
)

// IStaffService defines staff account management operations.
type IStaffService interface {
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetStaff(ctx context.Context, id int64) (*dto.StaffResponse, error)
	ListStaff(ctx context.Context) (*dto.StaffListResponse, error)
	UpdateStaff(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	DeleteStaff(ctx context.Context, id int64) error
	PromoteToAdmin(ctx context.Context, id int64) (*dto.StaffResponse, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*dto.StaffResponse, error)
	TeamRoster(ctx context.Context) ([]dto.TeamMemberResponse, error)
}

// StaffService handles staff provisioning and profile management
type StaffService struct {
	userRepo  repositories.IUserRepository
	staffRepo repositories.IStaffRepository
	logger    zerolog.Logger
}

// NewStaffService creates a new StaffService
func NewStaffService(
	userRepo repositories.IUserRepository,
	staffRepo repositories.IStaffRepository,
	logger zerolog.Logger,
) *StaffService {
	return &StaffService{userRepo: userRepo, staffRepo: staffRepo, logger: logger}
}

// CreateStaff provisions a staff identity and its profile together. An
// identity flagged as staff without a profile cannot log in, so the two
// writes belong to the same operation.
func (s *StaffService) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	role := models.StaffRole(req.Role)
	if !role.Valid() {
		return nil, apperrors.ErrInvalidStaffRole
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		FullName: req.Name,
		IsStaff:  true,
		IsActive: true,
	}
	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	profile := &models.StaffProfile{
		UserID:      userID,
		Name:        req.Name,
		Designation: req.Designation,
		Role:        role,
		Branch:      req.Branch,
		Mobile:      req.Mobile,
		Email:       req.Email,
	}
	profileID, err := s.staffRepo.Create(ctx, profile)
	if err != nil {
		// Without a profile the identity is unusable; remove it rather
		// than leave a login that fails terminally.
		if delErr := s.userRepo.DeleteUser(ctx, userID); delErr != nil {
			s.logger.Error().Err(delErr).Int64("userId", userID).Msg("Failed to clean up identity after profile creation failure")
		}
		return nil, err
	}
	profile.ID = profileID

	s.logger.Info().
		Int64("staffId", profileID).
		Str("email", req.Email).
		Str("role", req.Role).
		Msg("Staff member provisioned")

	return mapStaffToResponse(profile, false), nil
}

// GetStaff retrieves a staff profile by ID.
func (s *StaffService) GetStaff(ctx context.Context, id int64) (*dto.StaffResponse, error) {
	profile, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	return mapStaffToResponse(profile, user.IsSuperuser), nil
}

// ListStaff lists all staff profiles ordered by name.
func (s *StaffService) ListStaff(ctx context.Context) (*dto.StaffListResponse, error) {
	profiles, err := s.staffRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StaffResponse, 0, len(profiles))
	for i := range profiles {
		isSuperuser := false
		if profiles[i].User != nil {
			isSuperuser = profiles[i].User.IsSuperuser
		}
		responses = append(responses, *mapStaffToResponse(&profiles[i], isSuperuser))
	}
	return &dto.StaffListResponse{Staff: responses}, nil
}

// UpdateStaff updates a staff profile.
func (s *StaffService) UpdateStaff(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	role := models.StaffRole(req.Role)
	if !role.Valid() {
		return nil, apperrors.ErrInvalidStaffRole
	}

	profile, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Designation = req.Designation
	profile.Role = role
	profile.Branch = req.Branch
	profile.Mobile = req.Mobile
	if req.Email != "" {
		profile.Email = req.Email
	}

	if err := s.staffRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	return mapStaffToResponse(profile, user.IsSuperuser), nil
}

// DeleteStaff removes a staff member: the identity, the profile, and every
// material they uploaded go together.
func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	profile, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Deleting the identity cascades to the profile, which cascades to
	// the uploaded materials.
	if err := s.userRepo.DeleteUser(ctx, profile.UserID); err != nil {
		return err
	}

	s.logger.Info().Int64("staffId", id).Str("name", profile.Name).Msg("Staff member deleted")
	return nil
}

// PromoteToAdmin grants superuser status to an existing staff member.
func (s *StaffService) PromoteToAdmin(ctx context.Context, id int64) (*dto.StaffResponse, error) {
	profile, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetSuperuser(ctx, profile.UserID, true); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("staffId", id).Int64("userId", profile.UserID).Msg("Staff member promoted to admin")
	return mapStaffToResponse(profile, true), nil
}

// GetProfileByUserID resolves the caller's own profile for dashboards.
func (s *StaffService) GetProfileByUserID(ctx context.Context, userID int64) (*dto.StaffResponse, error) {
	profile, err := s.staffRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapStaffToResponse(profile, user.IsSuperuser), nil
}

// TeamRoster is the public placement-team listing: name and contact
// details only, no identity information.
func (s *StaffService) TeamRoster(ctx context.Context) ([]dto.TeamMemberResponse, error) {
	profiles, err := s.staffRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	roster := make([]dto.TeamMemberResponse, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		roster = append(roster, dto.TeamMemberResponse{
			Name:        p.Name,
			Designation: p.Designation,
			Mobile:      p.Mobile,
			Email:       p.Email,
		})
	}
	return roster, nil
}

func mapStaffToResponse(profile *models.StaffProfile, isSuperuser bool) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		Name:        profile.Name,
		Designation: profile.Designation,
		Role:        string(profile.Role),
		Branch:      profile.Branch,
		Mobile:      profile.Mobile,
		Email:       profile.Email,
		IsSuperuser: isSuperuser,
	}
}
