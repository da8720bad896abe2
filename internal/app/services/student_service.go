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
	pkgauth "github.com/srivaishnavi26/TandP-Management-System/internal/pkg/auth"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/filestorage"
)

// IStudentService defines student record management operations.
type IStudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context, callerUserID int64, branch string) (*dto.StudentListResponse, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id int64) error
	UploadResume(ctx context.Context, userID int64, file *multipart.FileHeader) (*dto.StudentResponse, error)
}

// StudentService handles student records
type StudentService struct {
	studentRepo repositories.IStudentRepository
	userRepo    repositories.IUserRepository
	staffRepo   repositories.IStaffRepository
	storage     filestorage.FileStorage
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	userRepo repositories.IUserRepository,
	staffRepo repositories.IStaffRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		staffRepo:   staffRepo,
		storage:     storage,
		logger:      logger,
	}
}

// CreateStudent creates a student record. When a password is supplied a
// login identity is created alongside it so the student can use the portal;
// without one the record is roster-only.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student := &models.Student{
		FullName:       req.FullName,
		RollNumber:     req.RollNumber,
		Email:          req.Email,
		Phone:          req.Phone,
		Branch:         req.Branch,
		GraduationYear: req.GraduationYear,
	}

	if req.Password != "" {
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

		userID, err := s.userRepo.CreateUser(ctx, &models.User{
			Email:    req.Email,
			Password: hashedPassword,
			FullName: req.FullName,
			IsActive: true,
		})
		if err != nil {
			return nil, err
		}
		student.UserID = &userID
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if student.UserID != nil {
			if delErr := s.userRepo.DeleteUser(ctx, *student.UserID); delErr != nil {
				s.logger.Error().Err(delErr).Int64("userId", *student.UserID).Msg("Failed to clean up identity after student creation failure")
			}
		}
		return nil, err
	}
	student.ID = id

	s.logger.Info().Int64("studentId", id).Str("rollNumber", student.RollNumber).Msg("Student created")
	return mapStudentToResponse(student), nil
}

// GetStudent retrieves a student by ID.
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapStudentToResponse(student), nil
}

// GetStudentByUserID resolves the caller's own student record.
func (s *StudentService) GetStudentByUserID(ctx context.Context, userID int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapStudentToResponse(student), nil
}

// ListStudents lists students ordered by roll number. Department
// coordinators see only their own branch; admins see everyone and may
// filter by branch explicitly.
func (s *StudentService) ListStudents(ctx context.Context, callerUserID int64, branch string) (*dto.StudentListResponse, error) {
	caller, err := s.userRepo.GetUserByID(ctx, callerUserID)
	if err != nil {
		return nil, err
	}

	if !caller.IsSuperuser {
		profile, err := s.staffRepo.GetByUserID(ctx, callerUserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStaffProfileNotFound) {
				return nil, apperrors.ErrPermissionDenied
			}
			return nil, err
		}
		if profile.Role != models.RoleDepartmentCoordinator {
			return nil, apperrors.ErrPermissionDenied
		}
		// Coordinators are scoped to the branch on their profile.
		branch = profile.Branch
	}

	students, err := s.studentRepo.GetAll(ctx, branch)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, *mapStudentToResponse(&students[i]))
	}
	return &dto.StudentListResponse{Students: responses}, nil
}

// UpdateStudent updates a student record.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RollNumber != student.RollNumber {
		exists, err := s.studentRepo.RollNumberExists(ctx, req.RollNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrRollNumberAlreadyExists
		}
	}

	student.FullName = req.FullName
	student.RollNumber = req.RollNumber
	student.Email = req.Email
	student.Phone = req.Phone
	student.Branch = req.Branch
	student.GraduationYear = req.GraduationYear

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return mapStudentToResponse(student), nil
}

// DeleteStudent removes a student record along with its login identity,
// if one exists. Ledger entries cascade at the storage layer.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if student.UserID != nil {
		if err := s.userRepo.DeleteUser(ctx, *student.UserID); err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Error().Err(err).Int64("userId", *student.UserID).Msg("Failed to delete student identity")
		}
	}

	if student.ResumePath != nil {
		if err := s.storage.DeleteFile(*student.ResumePath); err != nil {
			s.logger.Warn().Err(err).Str("path", *student.ResumePath).Msg("Failed to delete resume file")
		}
	}

	s.logger.Info().Int64("studentId", id).Str("rollNumber", student.RollNumber).Msg("Student deleted")
	return nil
}

// UploadResume stores a resume for the calling student, replacing any
// previous one.
func (s *StudentService) UploadResume(ctx context.Context, userID int64, file *multipart.FileHeader) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	path, err := s.storage.SaveFile(file, filestorage.SubdirResumes)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.UpdateResumePath(ctx, student.ID, path); err != nil {
		if delErr := s.storage.DeleteFile(path); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", path).Msg("Failed to remove orphaned resume file")
		}
		return nil, err
	}

	if student.ResumePath != nil && *student.ResumePath != path {
		if err := s.storage.DeleteFile(*student.ResumePath); err != nil {
			s.logger.Warn().Err(err).Str("path", *student.ResumePath).Msg("Failed to delete previous resume")
		}
	}

	student.ResumePath = &path
	return mapStudentToResponse(student), nil
}

func mapStudentToResponse(student *models.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:             student.ID,
		FullName:       student.FullName,
		RollNumber:     student.RollNumber,
		Email:          student.Email,
		Phone:          student.Phone,
		Branch:         student.Branch,
		GraduationYear: student.GraduationYear,
		ResumePath:     student.ResumePath,
	}
}
