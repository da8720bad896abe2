package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
)

// IRegistrationRepository defines the interface for the registration ledger.
type IRegistrationRepository interface {
	CreateIfAbsent(ctx context.Context, studentID, driveID int64) (bool, error)
	Exists(ctx context.Context, studentID, driveID int64) (bool, error)
	ListAvailableDrives(ctx context.Context, studentID int64) ([]models.PlacementDrive, error)
	ListRegisteredDrives(ctx context.Context, studentID int64) ([]models.RegisteredDrive, error)
}

// RegistrationRepository handles registration ledger database operations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// CreateIfAbsent inserts a ledger row unless one already exists for the
// (student, drive) pair. The uniqueness constraint makes this atomic under
// concurrent duplicate submissions; ON CONFLICT DO NOTHING turns the losing
// writer into a no-op instead of an error. Returns whether a row was written.
func (r *RegistrationRepository) CreateIfAbsent(ctx context.Context, studentID, driveID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO registrations (student_id, drive_id)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT registrations_student_drive_key DO NOTHING`,
		studentID, driveID)
	if err != nil {
		return false, fmt.Errorf("error creating registration: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Exists checks whether the ledger holds a row for the pair.
func (r *RegistrationRepository) Exists(ctx context.Context, studentID, driveID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM registrations WHERE student_id = $1 AND drive_id = $2)`,
		studentID, driveID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking registration: %w", err)
	}
	return exists, nil
}

// ListAvailableDrives returns all drives the student has not registered for,
// ordered by drive date ascending.
func (r *RegistrationRepository) ListAvailableDrives(ctx context.Context, studentID int64) ([]models.PlacementDrive, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.company_name, d.job_role, d.drive_date, d.package, d.description, d.created_at, d.updated_at
		FROM placement_drives d
		WHERE NOT EXISTS (
			SELECT 1 FROM registrations reg
			WHERE reg.drive_id = d.id AND reg.student_id = $1
		)
		ORDER BY d.drive_date ASC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing available drives: %w", err)
	}
	defer rows.Close()

	var drives []models.PlacementDrive
	for rows.Next() {
		d := models.PlacementDrive{}
		if err := rows.Scan(
			&d.ID, &d.CompanyName, &d.JobRole, &d.Date, &d.Package,
			&d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning drive: %w", err)
		}
		drives = append(drives, d)
	}
	return drives, rows.Err()
}

// ListRegisteredDrives returns the student's ledger rows joined with drive
// data, ordered by drive date ascending.
func (r *RegistrationRepository) ListRegisteredDrives(ctx context.Context, studentID int64) ([]models.RegisteredDrive, error) {
	rows, err := r.db.Query(ctx, `
		SELECT reg.id, reg.student_id, reg.drive_id, reg.registered_at,
		       d.id, d.company_name, d.job_role, d.drive_date, d.package, d.description, d.created_at, d.updated_at
		FROM registrations reg
		JOIN placement_drives d ON d.id = reg.drive_id
		WHERE reg.student_id = $1
		ORDER BY d.drive_date ASC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing registered drives: %w", err)
	}
	defer rows.Close()

	var regs []models.RegisteredDrive
	for rows.Next() {
		reg := models.RegisteredDrive{}
		if err := rows.Scan(
			&reg.ID, &reg.StudentID, &reg.DriveID, &reg.RegisteredAt,
			&reg.Drive.ID, &reg.Drive.CompanyName, &reg.Drive.JobRole, &reg.Drive.Date,
			&reg.Drive.Package, &reg.Drive.Description, &reg.Drive.CreatedAt, &reg.Drive.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
