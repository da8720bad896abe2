package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
	pkgauth "github.com/srivaishnavi26/TandP-Management-System/internal/pkg/auth"
)

type authFixture struct {
	svc         *AuthService
	userRepo    *fakeUserRepo
	studentRepo *fakeStudentRepo
	staffRepo   *fakeStaffRepo
	tokenRepo   *fakeTokenRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	userRepo := newFakeUserRepo()
	studentRepo := newFakeStudentRepo()
	staffRepo := newFakeStaffRepo()
	tokenRepo := newFakeTokenRepo()
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "placement-cell-test",
	})
	svc := NewAuthService(userRepo, studentRepo, staffRepo, tokenRepo, jwtService, zerolog.Nop())
	return &authFixture{svc: svc, userRepo: userRepo, studentRepo: studentRepo, staffRepo: staffRepo, tokenRepo: tokenRepo}
}

func (f *authFixture) seedUser(t *testing.T, email, password string, isStaff, isSuperuser bool) int64 {
	t.Helper()
	hash, err := pkgauth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	id, err := f.userRepo.CreateUser(context.Background(), &models.User{
		Email:       email,
		Password:    hash,
		FullName:    "Test User",
		IsStaff:     isStaff,
		IsSuperuser: isSuperuser,
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

func TestLoginStudent(t *testing.T) {
	f := newAuthFixture(t)
	userID := f.seedUser(t, "s@srit.ac.in", "Secret123", false, false)
	uid := userID
	if _, err := f.studentRepo.Create(context.Background(), &models.Student{UserID: &uid, RollNumber: "R1", Email: "s@srit.ac.in"}); err != nil {
		t.Fatalf("seed student: %v", err)
	}

	resp, err := f.svc.LoginStudent(context.Background(), &dto.LoginRequest{Email: "s@srit.ac.in", Password: "Secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		t.Fatal("tokens missing from login response")
	}
	if resp.User.ID != userID {
		t.Fatalf("user id = %d, want %d", resp.User.ID, userID)
	}
}

func TestLoginStudentWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "s@srit.ac.in", "Secret123", false, false)

	_, err := f.svc.LoginStudent(context.Background(), &dto.LoginRequest{Email: "s@srit.ac.in", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginStudentUnknownEmailSameError(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.LoginStudent(context.Background(), &dto.LoginRequest{Email: "nobody@srit.ac.in", Password: "x"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginStudentRejectsStaffIdentity(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "staff@srit.ac.in", "Secret123", true, false)

	_, err := f.svc.LoginStudent(context.Background(), &dto.LoginRequest{Email: "staff@srit.ac.in", Password: "Secret123"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestLoginStudentWithoutStudentRecord(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "s@srit.ac.in", "Secret123", false, false)

	_, err := f.svc.LoginStudent(context.Background(), &dto.LoginRequest{Email: "s@srit.ac.in", Password: "Secret123"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestLoginStaff(t *testing.T) {
	f := newAuthFixture(t)
	userID := f.seedUser(t, "staff@srit.ac.in", "Secret123", true, false)
	if _, err := f.staffRepo.Create(context.Background(), &models.StaffProfile{UserID: userID, Name: "T Trainer", Role: models.RoleVerbalTrainer}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	resp, err := f.svc.LoginStaff(context.Background(), &dto.LoginRequest{Email: "staff@srit.ac.in", Password: "Secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !resp.User.IsStaff {
		t.Fatal("login response should carry the staff flag")
	}
}

func TestLoginStaffWithoutProfileRevokesTokens(t *testing.T) {
	f := newAuthFixture(t)
	userID := f.seedUser(t, "staff@srit.ac.in", "Secret123", true, false)
	if err := f.tokenRepo.Create(context.Background(), &models.RefreshToken{
		UserID:    userID,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	_, err := f.svc.LoginStaff(context.Background(), &dto.LoginRequest{Email: "staff@srit.ac.in", Password: "Secret123"})
	if !errors.Is(err, apperrors.ErrStaffProfileMissing) {
		t.Fatalf("expected staff profile missing, got %v", err)
	}

	stored, err := f.tokenRepo.GetByToken(context.Background(), "stale-token")
	if err != nil {
		t.Fatalf("get token: %v", err)
	}
	if !stored.Revoked {
		t.Fatal("outstanding tokens not revoked after terminal staff login failure")
	}
}

func TestLoginAdminRejectsNonSuperuser(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "staff@srit.ac.in", "Secret123", true, false)

	_, err := f.svc.LoginAdmin(context.Background(), &dto.LoginRequest{Email: "staff@srit.ac.in", Password: "Secret123"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	f := newAuthFixture(t)
	userID := f.seedUser(t, "a@srit.ac.in", "Secret123", false, true)
	f.userRepo.users[userID].IsActive = false

	_, err := f.svc.LoginAdmin(context.Background(), &dto.LoginRequest{Email: "a@srit.ac.in", Password: "Secret123"})
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Fatalf("expected account disabled, got %v", err)
	}
}

func TestRefreshTokenRotates(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "a@srit.ac.in", "Secret123", false, true)

	login, err := f.svc.LoginAdmin(context.Background(), &dto.LoginRequest{Email: "a@srit.ac.in", Password: "Secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := f.svc.RefreshToken(context.Background(), login.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.RefreshToken == login.Tokens.RefreshToken {
		t.Fatal("refresh token not rotated")
	}

	// The old token is now revoked and cannot be used again.
	if _, err := f.svc.RefreshToken(context.Background(), login.Tokens.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Fatalf("expected token revoked, got %v", err)
	}
}

func TestRefreshExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	userID := f.seedUser(t, "a@srit.ac.in", "Secret123", false, true)
	if err := f.tokenRepo.Create(context.Background(), &models.RefreshToken{
		UserID:    userID,
		Token:     "old-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	if _, err := f.svc.RefreshToken(context.Background(), "old-token"); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("expected token expired, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "a@srit.ac.in", "Secret123", false, true)

	login, err := f.svc.LoginAdmin(context.Background(), &dto.LoginRequest{Email: "a@srit.ac.in", Password: "Secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := f.svc.Logout(context.Background(), login.Tokens.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := f.svc.RefreshToken(context.Background(), login.Tokens.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Fatalf("expected token revoked after logout, got %v", err)
	}
}
