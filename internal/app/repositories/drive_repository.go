package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
)

// IDriveRepository defines the interface for placement drive operations.
type IDriveRepository interface {
	Create(ctx context.Context, drive *models.PlacementDrive) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error)
	GetAll(ctx context.Context, companyName string, page, pageSize int) ([]models.PlacementDrive, int64, error)
	Update(ctx context.Context, drive *models.PlacementDrive) error
	Delete(ctx context.Context, id int64) error
}

// DriveRepository handles placement drive database operations
type DriveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDriveRepository creates a new DriveRepository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const driveColumns = `id, company_name, job_role, drive_date, package, description, created_at, updated_at`

func scanDrive(row pgx.Row) (*models.PlacementDrive, error) {
	d := &models.PlacementDrive{}
	err := row.Scan(
		&d.ID, &d.CompanyName, &d.JobRole, &d.Date, &d.Package,
		&d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, fmt.Errorf("error scanning drive: %w", err)
	}
	return d, nil
}

// Create inserts a placement drive and returns its ID.
func (r *DriveRepository) Create(ctx context.Context, drive *models.PlacementDrive) (int64, error) {
	query := r.sb.Insert("placement_drives").
		Columns("company_name", "job_role", "drive_date", "package", "description").
		Values(drive.CompanyName, drive.JobRole, drive.Date, drive.Package, drive.Description).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating drive: %w", err)
	}
	return id, nil
}

// GetByID retrieves a drive by ID.
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+driveColumns+`
		FROM placement_drives
		WHERE id = $1`, id)
	return scanDrive(row)
}

// GetAll retrieves drives newest-first with optional company filter and
// pagination.
func (r *DriveRepository) GetAll(ctx context.Context, companyName string, page, pageSize int) ([]models.PlacementDrive, int64, error) {
	query := r.sb.Select(
		"id", "company_name", "job_role", "drive_date", "package",
		"description", "created_at", "updated_at", "COUNT(*) OVER()").
		From("placement_drives").
		OrderBy("drive_date DESC")

	if companyName != "" {
		query = query.Where("company_name ILIKE ?", "%"+companyName+"%")
	}

	if pageSize > 0 {
		offset := (page - 1) * pageSize
		query = query.Limit(uint64(pageSize)).Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var drives []models.PlacementDrive
	var total int64
	for rows.Next() {
		d := models.PlacementDrive{}
		if err := rows.Scan(
			&d.ID, &d.CompanyName, &d.JobRole, &d.Date, &d.Package,
			&d.Description, &d.CreatedAt, &d.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		drives = append(drives, d)
	}
	return drives, total, rows.Err()
}

// Update replaces the mutable fields of a drive.
func (r *DriveRepository) Update(ctx context.Context, drive *models.PlacementDrive) error {
	query := r.sb.Update("placement_drives").
		Set("company_name", drive.CompanyName).
		Set("job_role", drive.JobRole).
		Set("drive_date", drive.Date).
		Set("package", drive.Package).
		Set("description", drive.Description).
		Set("updated_at", time.Now()).
		Where("id = ?", drive.ID)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating drive: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}
	return nil
}

// Delete removes a drive. Ledger rows cascade at the storage layer, so no
// orphaned registrations survive.
func (r *DriveRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM placement_drives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}
	return nil
}
