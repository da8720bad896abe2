package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
)

// IContactRepository defines the interface for the contact inbox.
type IContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) (int64, error)
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ContactRepository handles contact message database operations
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create stores an inbound message and returns its ID.
func (r *ContactRepository) Create(ctx context.Context, message *models.ContactMessage) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		message.Name, message.Email, message.Subject, message.Message).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating contact message: %w", err)
	}
	return id, nil
}

// GetAll retrieves all messages newest first.
func (r *ContactRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		m := models.ContactMessage{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning contact message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Delete removes a message by ID. Returns false when no row matched; the
// caller downgrades that to a notice rather than failing the request.
func (r *ContactRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting contact message: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
