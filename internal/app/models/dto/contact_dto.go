package dto

import "time"

// CreateContactMessageRequest is the anonymous contact form. Stored as
// provided; no spam filtering.
type CreateContactMessageRequest struct {
	Name    string `json:"name" binding:"required" example:"A Visitor"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactMessageResponse is the API shape of an inbox message.
type ContactMessageResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageListResponse lists inbox messages newest first.
type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
}
