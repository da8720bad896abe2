package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/services"
	"github.com/srivaishnavi26/TandP-Management-System/internal/middleware"
)

// ContactController handles the public contact form and the admin inbox
type ContactController struct {
	contactService services.IContactService
	logger         zerolog.Logger
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.IContactService, logger zerolog.Logger) *ContactController {
	return &ContactController{contactService: contactService, logger: logger}
}

// SubmitMessage accepts an anonymous contact form submission
// @Summary Submit contact message
// @Description Stores a contact form submission. No authentication required.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.ContactMessageResponse} "Message received"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /contact [post]
func (c *ContactController) SubmitMessage(ctx *gin.Context) {
	var req dto.CreateContactMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	message, err := c.contactService.SubmitMessage(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message, "Message received"))
}

// ListMessages returns the admin inbox
// @Summary List contact messages
// @Description Lists all contact messages, newest first. Admin only.
// @Tags contact
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ContactMessageListResponse}
// @Security BearerAuth
// @Router /contact [get]
func (c *ContactController) ListMessages(ctx *gin.Context) {
	list, err := c.contactService.ListMessages(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list, ""))
}

// DeleteMessage removes a message from the inbox
// @Summary Delete contact message
// @Description Deletes a contact message. A missing ID returns a notice rather than an error.
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse "Message deleted or notice"
// @Security BearerAuth
// @Router /contact/{id} [delete]
func (c *ContactController) DeleteMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.contactService.DeleteMessage(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !deleted {
		ctx.JSON(http.StatusOK, dto.NewWarningResponse("Message not found, nothing deleted"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Message deleted"))
}
