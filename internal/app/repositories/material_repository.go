package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
)

// IMaterialRepository defines the interface for preparation material
// operations. Verbal materials and aptitude tests share the same shape and
// are selected by kind.
type IMaterialRepository interface {
	Create(ctx context.Context, material *models.Material) (int64, error)
	GetByID(ctx context.Context, kind models.MaterialKind, id int64) (*models.Material, error)
	GetAll(ctx context.Context, kind models.MaterialKind) ([]models.Material, error)
	Delete(ctx context.Context, kind models.MaterialKind, id int64) error
}

// MaterialRepository handles material database operations
type MaterialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a material into the table selected by its kind.
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) (int64, error) {
	if !material.Kind.Valid() {
		return 0, fmt.Errorf("unknown material kind: %s", material.Kind)
	}

	query := r.sb.Insert(material.Kind.Table()).
		Columns("title", "file_path", "uploader_id").
		Values(material.Title, material.FilePath, material.UploaderID).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating material: %w", err)
	}
	return id, nil
}

// GetByID retrieves a material by kind and ID.
func (r *MaterialRepository) GetByID(ctx context.Context, kind models.MaterialKind, id int64) (*models.Material, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown material kind: %s", kind)
	}

	m := &models.Material{Kind: kind}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, file_path, uploader_id, uploaded_at
		FROM `+kind.Table()+`
		WHERE id = $1`, id).Scan(&m.ID, &m.Title, &m.FilePath, &m.UploaderID, &m.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("error scanning material: %w", err)
	}
	return m, nil
}

// GetAll retrieves materials of a kind newest-first, joined with the
// uploader's name.
func (r *MaterialRepository) GetAll(ctx context.Context, kind models.MaterialKind) ([]models.Material, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown material kind: %s", kind)
	}

	query := r.sb.Select("m.id", "m.title", "m.file_path", "m.uploader_id", "m.uploaded_at", "sp.name").
		From(kind.Table() + " m").
		Join("staff_profiles sp ON sp.id = m.uploader_id").
		OrderBy("m.uploaded_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing materials: %w", err)
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		m := models.Material{Kind: kind, Uploader: &models.StaffProfile{}}
		if err := rows.Scan(&m.ID, &m.Title, &m.FilePath, &m.UploaderID, &m.UploadedAt, &m.Uploader.Name); err != nil {
			return nil, fmt.Errorf("error scanning material: %w", err)
		}
		m.Uploader.ID = m.UploaderID
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

// Delete removes a material by kind and ID.
func (r *MaterialRepository) Delete(ctx context.Context, kind models.MaterialKind, id int64) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown material kind: %s", kind)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM `+kind.Table()+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}
	return nil
}
