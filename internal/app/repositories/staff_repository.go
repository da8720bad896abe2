package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
)

// IStaffRepository defines the interface for staff profile operations.
type IStaffRepository interface {
	Create(ctx context.Context, profile *models.StaffProfile) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.StaffProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error)
	GetAll(ctx context.Context) ([]models.StaffProfile, error)
	Update(ctx context.Context, profile *models.StaffProfile) error
	Delete(ctx context.Context, id int64) error
}

// StaffRepository handles staff profile database operations
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

const staffColumns = `id, user_id, name, designation, role, branch, mobile, email, created_at, updated_at`

func scanStaffProfile(row pgx.Row) (*models.StaffProfile, error) {
	p := &models.StaffProfile{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Designation, &p.Role,
		&p.Branch, &p.Mobile, &p.Email, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffProfileNotFound
		}
		return nil, fmt.Errorf("error scanning staff profile: %w", err)
	}
	return p, nil
}

// Create inserts a staff profile and returns its ID.
func (r *StaffRepository) Create(ctx context.Context, profile *models.StaffProfile) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO staff_profiles (user_id, name, designation, role, branch, mobile, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		profile.UserID, profile.Name, profile.Designation, profile.Role,
		profile.Branch, profile.Mobile, profile.Email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating staff profile: %w", err)
	}
	return id, nil
}

// GetByID retrieves a staff profile by ID.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.StaffProfile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+staffColumns+`
		FROM staff_profiles
		WHERE id = $1`, id)
	return scanStaffProfile(row)
}

// GetByUserID retrieves the staff profile attached to an identity.
func (r *StaffRepository) GetByUserID(ctx context.Context, userID int64) (*models.StaffProfile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+staffColumns+`
		FROM staff_profiles
		WHERE user_id = $1`, userID)
	return scanStaffProfile(row)
}

// GetAll retrieves all staff profiles ordered by name, with the identity
// flags of each profile's user attached.
func (r *StaffRepository) GetAll(ctx context.Context) ([]models.StaffProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT sp.id, sp.user_id, sp.name, sp.designation, sp.role,
		       sp.branch, sp.mobile, sp.email, sp.created_at, sp.updated_at,
		       u.is_staff, u.is_superuser
		FROM staff_profiles sp
		JOIN users u ON u.id = sp.user_id
		ORDER BY sp.name`)
	if err != nil {
		return nil, fmt.Errorf("error listing staff profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.StaffProfile
	for rows.Next() {
		p := models.StaffProfile{User: &models.User{}}
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Designation, &p.Role,
			&p.Branch, &p.Mobile, &p.Email, &p.CreatedAt, &p.UpdatedAt,
			&p.User.IsStaff, &p.User.IsSuperuser); err != nil {
			return nil, fmt.Errorf("error scanning staff profile: %w", err)
		}
		p.User.ID = p.UserID
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Update replaces the mutable fields of a staff profile.
func (r *StaffRepository) Update(ctx context.Context, profile *models.StaffProfile) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE staff_profiles
		SET name = $1, designation = $2, role = $3, branch = $4, mobile = $5, email = $6, updated_at = $7
		WHERE id = $8`,
		profile.Name, profile.Designation, profile.Role, profile.Branch,
		profile.Mobile, profile.Email, time.Now(), profile.ID)
	if err != nil {
		return fmt.Errorf("error updating staff profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffProfileNotFound
	}
	return nil
}

// Delete removes a staff profile. Owned materials cascade at the storage
// layer.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM staff_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting staff profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffProfileNotFound
	}
	return nil
}
