// Package auth provides capability checks for the placement portal.
//
// Every protected operation names the capability it requires and calls
// Authorize with the caller's identity and, when one exists, their staff
// profile. The decision is a pure function of those inputs so it can be
// reasoned about and tested without a database.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/repositories"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
)

// Capability names a level of access a route or operation requires.
type Capability string

const (
	// CapabilityAdmin grants access only to superusers.
	CapabilityAdmin Capability = "admin"
	// CapabilityStaff grants access to staff members and superusers.
	CapabilityStaff Capability = "staff"
	// CapabilityStrictStaff grants access to staff members who are not
	// superusers. Admin accounts are deliberately excluded.
	CapabilityStrictStaff Capability = "strict_staff"
	// CapabilityDepartmentCoordinator grants access to staff whose
	// profile role is department_coordinator, and to superusers.
	CapabilityDepartmentCoordinator Capability = "department_coordinator"
)

// Authorize decides whether a user may exercise a capability. The profile
// may be nil for users without a staff profile; capabilities that inspect
// the profile role treat a missing profile as a denial, not an error.
func Authorize(user *models.User, profile *models.StaffProfile, capability Capability) error {
	if user == nil || !user.IsActive {
		return apperrors.ErrPermissionDenied
	}

	switch capability {
	case CapabilityAdmin:
		if user.IsSuperuser {
			return nil
		}
	case CapabilityStaff:
		if user.IsStaff || user.IsSuperuser {
			return nil
		}
	case CapabilityStrictStaff:
		if user.IsStaff && !user.IsSuperuser {
			return nil
		}
	case CapabilityDepartmentCoordinator:
		if user.IsSuperuser {
			return nil
		}
		if user.IsStaff && profile != nil && profile.Role == models.RoleDepartmentCoordinator {
			return nil
		}
	default:
		return fmt.Errorf("unknown capability %q: %w", capability, apperrors.ErrPermissionDenied)
	}

	return apperrors.ErrPermissionDenied
}

// AuthorizationService resolves a caller's staff profile before delegating
// to Authorize. Controllers hold the identity from the JWT middleware but
// not the profile, which lives in storage.
type AuthorizationService struct {
	userRepo  repositories.IUserRepository
	staffRepo repositories.IStaffRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository, staffRepo repositories.IStaffRepository) *AuthorizationService {
	return &AuthorizationService{userRepo: userRepo, staffRepo: staffRepo}
}

// CheckCapability loads the user and their profile (if any) and applies
// the capability decision.
func (s *AuthorizationService) CheckCapability(ctx context.Context, userID int64, capability Capability) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrPermissionDenied
		}
		return err
	}

	var profile *models.StaffProfile
	if user.IsStaff {
		profile, err = s.staffRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, apperrors.ErrStaffProfileNotFound) {
			return err
		}
	}

	return Authorize(user, profile, capability)
}
