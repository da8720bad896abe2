package auth

import (
	"errors"
	"testing"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
)

func activeUser(isStaff, isSuperuser bool) *models.User {
	return &models.User{ID: 1, IsStaff: isStaff, IsSuperuser: isSuperuser, IsActive: true}
}

func coordinatorProfile() *models.StaffProfile {
	return &models.StaffProfile{ID: 1, UserID: 1, Role: models.RoleDepartmentCoordinator}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		profile    *models.StaffProfile
		capability Capability
		wantAllow  bool
	}{
		{"admin passes admin", activeUser(true, true), nil, CapabilityAdmin, true},
		{"staff denied admin", activeUser(true, false), nil, CapabilityAdmin, false},
		{"student denied admin", activeUser(false, false), nil, CapabilityAdmin, false},

		{"staff passes staff", activeUser(true, false), nil, CapabilityStaff, true},
		{"admin passes staff", activeUser(false, true), nil, CapabilityStaff, true},
		{"student denied staff", activeUser(false, false), nil, CapabilityStaff, false},

		{"staff passes strict staff", activeUser(true, false), nil, CapabilityStrictStaff, true},
		{"admin denied strict staff", activeUser(true, true), nil, CapabilityStrictStaff, false},
		{"student denied strict staff", activeUser(false, false), nil, CapabilityStrictStaff, false},

		{"coordinator passes coordinator", activeUser(true, false), coordinatorProfile(), CapabilityDepartmentCoordinator, true},
		{"admin passes coordinator", activeUser(false, true), nil, CapabilityDepartmentCoordinator, true},
		{"staff without profile denied coordinator", activeUser(true, false), nil, CapabilityDepartmentCoordinator, false},
		{"staff with other role denied coordinator", activeUser(true, false), &models.StaffProfile{Role: models.RoleVerbalTrainer}, CapabilityDepartmentCoordinator, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.user, tt.profile, tt.capability)
			if tt.wantAllow && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tt.wantAllow && !errors.Is(err, apperrors.ErrPermissionDenied) {
				t.Fatalf("expected permission denied, got %v", err)
			}
		})
	}
}

func TestAuthorizeInactiveUser(t *testing.T) {
	user := &models.User{ID: 1, IsStaff: true, IsSuperuser: true, IsActive: false}
	if err := Authorize(user, nil, CapabilityAdmin); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for inactive user, got %v", err)
	}
}

func TestAuthorizeNilUser(t *testing.T) {
	if err := Authorize(nil, nil, CapabilityStaff); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for nil user, got %v", err)
	}
}

func TestAuthorizeUnknownCapability(t *testing.T) {
	if err := Authorize(activeUser(true, true), nil, Capability("owner")); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for unknown capability, got %v", err)
	}
}
