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
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/dberrors"
)

// IStudentRepository defines the interface for student database operations.
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetAll(ctx context.Context, branch string) ([]models.Student, error)
	RollNumberExists(ctx context.Context, rollNumber string) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	UpdateResumePath(ctx context.Context, id int64, resumePath string) error
	Delete(ctx context.Context, id int64) error
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `id, user_id, full_name, roll_number, email, phone, branch, graduation_year, resume_path, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.FullName, &s.RollNumber, &s.Email, &s.Phone,
		&s.Branch, &s.GraduationYear, &s.ResumePath, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return s, nil
}

// Create inserts a student record and returns its ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	exists, err := r.RollNumberExists(ctx, student.RollNumber)
	if err != nil {
		return 0, fmt.Errorf("error checking roll number: %w", err)
	}
	if exists {
		return 0, apperrors.ErrRollNumberAlreadyExists
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO students (user_id, full_name, roll_number, email, phone, branch, graduation_year, resume_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		student.UserID, student.FullName, student.RollNumber, student.Email,
		student.Phone, student.Branch, student.GraduationYear, student.ResumePath).Scan(&id)
	if dberrors.IsDuplicateConstraintError(err, "students_roll_number_key") {
		return 0, apperrors.ErrRollNumberAlreadyExists
	}
	if err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE id = $1`, id)
	return scanStudent(row)
}

// GetByUserID retrieves the student record linked to an identity.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE user_id = $1`, userID)
	return scanStudent(row)
}

// GetAll retrieves students ordered by roll number. A non-empty branch
// restricts the listing to that branch (department-coordinator scope).
func (r *StudentRepository) GetAll(ctx context.Context, branch string) ([]models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		ORDER BY roll_number`
	args := []interface{}{}
	if branch != "" {
		query = `
		SELECT ` + studentColumns + `
		FROM students
		WHERE branch = $1
		ORDER BY roll_number`
		args = append(args, branch)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		s := models.Student{}
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.FullName, &s.RollNumber, &s.Email, &s.Phone,
			&s.Branch, &s.GraduationYear, &s.ResumePath, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// RollNumberExists checks if a roll number is already taken.
func (r *StudentRepository) RollNumberExists(ctx context.Context, rollNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE roll_number = $1)`, rollNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking roll number: %w", err)
	}
	return exists, nil
}

// Update replaces the mutable fields of a student record.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET full_name = $1, roll_number = $2, email = $3, phone = $4, branch = $5, graduation_year = $6, updated_at = $7
		WHERE id = $8`,
		student.FullName, student.RollNumber, student.Email, student.Phone,
		student.Branch, student.GraduationYear, time.Now(), student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateResumePath points the student at a newly stored resume file.
func (r *StudentRepository) UpdateResumePath(ctx context.Context, id int64, resumePath string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET resume_path = $1, updated_at = $2
		WHERE id = $3`,
		resumePath, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating resume path: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student. Ledger rows cascade at the storage layer.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
