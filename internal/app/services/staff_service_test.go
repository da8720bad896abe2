package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
)

func newStaffFixture(t *testing.T) (*StaffService, *fakeUserRepo, *fakeStaffRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	staffRepo := newFakeStaffRepo()
	return NewStaffService(userRepo, staffRepo, zerolog.Nop()), userRepo, staffRepo
}

func TestCreateStaffProvisionsIdentityAndProfile(t *testing.T) {
	svc, userRepo, staffRepo := newStaffFixture(t)

	resp, err := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Email:       "trainer@srit.ac.in",
		Password:    "Secret123",
		Name:        "T Trainer",
		Designation: "Verbal Trainer",
		Role:        "verbal_trainer",
		Branch:      "CSE",
	})
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}

	user, err := userRepo.GetUserByID(context.Background(), resp.UserID)
	if err != nil {
		t.Fatalf("identity not created: %v", err)
	}
	if !user.IsStaff || user.IsSuperuser {
		t.Fatalf("identity flags = staff:%v super:%v, want staff only", user.IsStaff, user.IsSuperuser)
	}

	profile, err := staffRepo.GetByUserID(context.Background(), resp.UserID)
	if err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if string(profile.Role) != "verbal_trainer" {
		t.Fatalf("profile role = %q", profile.Role)
	}
}

func TestCreateStaffRejectsUnknownRole(t *testing.T) {
	svc, userRepo, _ := newStaffFixture(t)

	_, err := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Email:    "x@srit.ac.in",
		Password: "Secret123",
		Name:     "X",
		Role:     "principal",
	})
	if !errors.Is(err, apperrors.ErrInvalidStaffRole) {
		t.Fatalf("expected invalid staff role, got %v", err)
	}
	if len(userRepo.users) != 0 {
		t.Fatal("identity created despite role rejection")
	}
}

func TestCreateStaffDuplicateEmail(t *testing.T) {
	svc, _, _ := newStaffFixture(t)

	req := &dto.CreateStaffRequest{
		Email:    "t@srit.ac.in",
		Password: "Secret123",
		Name:     "T",
		Role:     "generic_staff",
	}
	if _, err := svc.CreateStaff(context.Background(), req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateStaff(context.Background(), req); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected email already exists, got %v", err)
	}
}

func TestPromoteToAdmin(t *testing.T) {
	svc, userRepo, _ := newStaffFixture(t)

	created, err := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Email:    "t@srit.ac.in",
		Password: "Secret123",
		Name:     "T",
		Role:     "department_coordinator",
	})
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}

	promoted, err := svc.PromoteToAdmin(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if !promoted.IsSuperuser {
		t.Fatal("promotion not reflected in response")
	}

	user, err := userRepo.GetUserByID(context.Background(), created.UserID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !user.IsSuperuser || !user.IsStaff {
		t.Fatalf("identity flags after promotion = staff:%v super:%v", user.IsStaff, user.IsSuperuser)
	}
}

func TestDeleteStaffRemovesIdentity(t *testing.T) {
	svc, userRepo, _ := newStaffFixture(t)

	created, err := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Email:    "t@srit.ac.in",
		Password: "Secret123",
		Name:     "T",
		Role:     "generic_staff",
	})
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}

	if err := svc.DeleteStaff(context.Background(), created.ID); err != nil {
		t.Fatalf("delete staff: %v", err)
	}
	if _, err := userRepo.GetUserByID(context.Background(), created.UserID); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("identity still present after staff deletion: %v", err)
	}
}
