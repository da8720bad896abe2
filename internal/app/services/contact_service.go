package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/repositories"
)

// IContactService defines the public contact form and the admin inbox.
type IContactService interface {
	SubmitMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error)
	ListMessages(ctx context.Context) (*dto.ContactMessageListResponse, error)
	DeleteMessage(ctx context.Context, id int64) (bool, error)
}

// ContactService handles the contact inbox
type ContactService struct {
	contactRepo repositories.IContactRepository
	logger      zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.IContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{contactRepo: contactRepo, logger: logger}
}

// SubmitMessage stores an anonymous contact form submission verbatim.
func (s *ContactService) SubmitMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	id, err := s.contactRepo.Create(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = id

	s.logger.Info().Int64("messageId", id).Str("subject", req.Subject).Msg("Contact message received")
	return mapContactMessageToResponse(message), nil
}

// ListMessages returns the inbox, newest first.
func (s *ContactService) ListMessages(ctx context.Context) (*dto.ContactMessageListResponse, error) {
	messages, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ContactMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *mapContactMessageToResponse(&messages[i]))
	}
	return &dto.ContactMessageListResponse{Messages: responses}, nil
}

// DeleteMessage removes a message from the inbox. A missing ID is not an
// error: deleted reports whether a row was actually removed so the caller
// can surface a notice instead of a failure.
func (s *ContactService) DeleteMessage(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		s.logger.Warn().Int64("messageId", id).Msg("Delete requested for missing contact message")
	}
	return deleted, nil
}

func mapContactMessageToResponse(message *models.ContactMessage) *dto.ContactMessageResponse {
	return &dto.ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}
