package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/repositories"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
	pkgauth "github.com/srivaishnavi26/TandP-Management-System/internal/pkg/auth"
)

// IAuthService defines authentication operations. Each portal has its own
// login flow; the flows differ only in which identities they accept.
type IAuthService interface {
	LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginStaff(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo    repositories.IUserRepository
	studentRepo repositories.IStudentRepository
	staffRepo   repositories.IStaffRepository
	tokenRepo   repositories.ITokenRepository
	jwtService  *pkgauth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	staffRepo repositories.IStaffRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *pkgauth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
		tokenRepo:   tokenRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// authenticate verifies credentials and returns the matching active user.
// Credential failures and unknown emails collapse into the same error so the
// response does not reveal which one happened.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgauth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return user, nil
}

// LoginStudent authenticates a student. Staff and admin identities are
// rejected here even with valid credentials; they have their own portals.
func (s *AuthService) LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if user.IsStaff || user.IsSuperuser {
		return nil, apperrors.ErrPermissionDenied
	}

	if _, err := s.studentRepo.GetByUserID(ctx, user.ID); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			s.logger.Warn().Int64("userId", user.ID).Msg("Login rejected: identity has no student record")
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// LoginStaff authenticates a staff member. An identity flagged as staff but
// missing its profile cannot work in the portal, so the login fails and any
// outstanding refresh tokens are revoked.
func (s *AuthService) LoginStaff(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if !user.IsStaff {
		return nil, apperrors.ErrPermissionDenied
	}

	if _, err := s.staffRepo.GetByUserID(ctx, user.ID); err != nil {
		if errors.Is(err, apperrors.ErrStaffProfileNotFound) {
			s.logger.Error().Int64("userId", user.ID).Msg("Staff identity has no profile, revoking sessions")
			if revokeErr := s.tokenRepo.RevokeAllForUser(ctx, user.ID); revokeErr != nil {
				s.logger.Error().Err(revokeErr).Int64("userId", user.ID).Msg("Failed to revoke tokens")
			}
			return nil, apperrors.ErrStaffProfileMissing
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// LoginAdmin authenticates a superuser.
func (s *AuthService) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if !user.IsSuperuser {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.LoginResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Create(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login")
	}

	s.logger.Info().Int64("userId", user.ID).Str("email", user.Email).Msg("User logged in")

	return &dto.LoginResponse{
		Tokens: dto.TokenResponse{
			AccessToken:      accessToken,
			RefreshToken:     refreshToken,
			ExpiresIn:        expiresIn,
			RefreshExpiresIn: refreshExpiresIn,
			TokenType:        "Bearer",
		},
		User: dto.UserResponse{
			ID:          user.ID,
			Email:       user.Email,
			FullName:    user.FullName,
			IsStaff:     user.IsStaff,
			IsSuperuser: user.IsSuperuser,
		},
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair. The
// old token is revoked so each refresh token is single-use.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Create(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     newRefreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     newRefreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}

// Logout revokes a refresh token. Revoking an already revoked or unknown
// token is reported as such.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.Revoke(ctx, refreshToken)
}
