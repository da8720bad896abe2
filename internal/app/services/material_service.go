package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/repositories"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/filestorage"
)

// IMaterialService defines preparation material operations. The same
// operations serve verbal materials and aptitude tests; the kind selects
// the collection.
type IMaterialService interface {
	Upload(ctx context.Context, kind models.MaterialKind, userID int64, title string, file *multipart.FileHeader) (*dto.MaterialResponse, error)
	List(ctx context.Context, kind models.MaterialKind) (*dto.MaterialListResponse, error)
	Delete(ctx context.Context, kind models.MaterialKind, userID, id int64) error
}

// MaterialService handles preparation material uploads
type MaterialService struct {
	materialRepo repositories.IMaterialRepository
	staffRepo    repositories.IStaffRepository
	userRepo     repositories.IUserRepository
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	materialRepo repositories.IMaterialRepository,
	staffRepo repositories.IStaffRepository,
	userRepo repositories.IUserRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		staffRepo:    staffRepo,
		userRepo:     userRepo,
		storage:      storage,
		logger:       logger,
	}
}

// uploadRole maps a material kind to the trainer role allowed to manage it.
func uploadRole(kind models.MaterialKind) models.StaffRole {
	if kind == models.MaterialAptitude {
		return models.RoleAptitudeTrainer
	}
	return models.RoleVerbalTrainer
}

func subdirFor(kind models.MaterialKind) string {
	if kind == models.MaterialAptitude {
		return filestorage.SubdirAptitude
	}
	return filestorage.SubdirVerbal
}

// resolveUploader checks that the calling user may manage materials of the
// given kind and returns their profile. Superusers may manage any kind;
// trainers only the kind matching their role.
func (s *MaterialService) resolveUploader(ctx context.Context, kind models.MaterialKind, userID int64) (*models.StaffProfile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.staffRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffProfileNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}

	if user.IsSuperuser || profile.Role == uploadRole(kind) {
		return profile, nil
	}
	return nil, apperrors.ErrPermissionDenied
}

// Upload stores a material file and records it under the uploader's profile.
func (s *MaterialService) Upload(ctx context.Context, kind models.MaterialKind, userID int64, title string, file *multipart.FileHeader) (*dto.MaterialResponse, error) {
	if !kind.Valid() {
		return nil, apperrors.NewBadRequestError("unknown material kind")
	}

	profile, err := s.resolveUploader(ctx, kind, userID)
	if err != nil {
		return nil, err
	}

	path, err := s.storage.SaveFile(file, subdirFor(kind))
	if err != nil {
		return nil, err
	}

	material := &models.Material{
		Kind:       kind,
		Title:      title,
		FilePath:   path,
		UploaderID: profile.ID,
	}
	id, err := s.materialRepo.Create(ctx, material)
	if err != nil {
		if delErr := s.storage.DeleteFile(path); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", path).Msg("Failed to remove orphaned material file")
		}
		return nil, err
	}
	material.ID = id

	s.logger.Info().
		Int64("materialId", id).
		Str("kind", string(kind)).
		Str("title", title).
		Int64("uploaderId", profile.ID).
		Msg("Material uploaded")

	return mapMaterialToResponse(material), nil
}

// List returns all materials of a kind, newest first. Any authenticated
// user may read materials.
func (s *MaterialService) List(ctx context.Context, kind models.MaterialKind) (*dto.MaterialListResponse, error) {
	if !kind.Valid() {
		return nil, apperrors.NewBadRequestError("unknown material kind")
	}

	materials, err := s.materialRepo.GetAll(ctx, kind)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MaterialResponse, 0, len(materials))
	for i := range materials {
		responses = append(responses, *mapMaterialToResponse(&materials[i]))
	}
	return &dto.MaterialListResponse{Materials: responses}, nil
}

// Delete removes a material and its file. Trainers may delete only their
// own uploads; superusers may delete any.
func (s *MaterialService) Delete(ctx context.Context, kind models.MaterialKind, userID, id int64) error {
	if !kind.Valid() {
		return apperrors.NewBadRequestError("unknown material kind")
	}

	profile, err := s.resolveUploader(ctx, kind, userID)
	if err != nil {
		return err
	}

	material, err := s.materialRepo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsSuperuser && material.UploaderID != profile.ID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.materialRepo.Delete(ctx, kind, id); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(material.FilePath); err != nil {
		s.logger.Warn().Err(err).Str("path", material.FilePath).Msg("Failed to delete material file")
	}

	s.logger.Info().Int64("materialId", id).Str("kind", string(kind)).Msg("Material deleted")
	return nil
}

func mapMaterialToResponse(material *models.Material) *dto.MaterialResponse {
	resp := &dto.MaterialResponse{
		ID:         material.ID,
		Kind:       string(material.Kind),
		Title:      material.Title,
		FilePath:   material.FilePath,
		UploaderID: material.UploaderID,
		UploadedAt: material.UploadedAt,
	}
	if material.Uploader != nil {
		resp.Uploader = material.Uploader.Name
	}
	return resp
}
