package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/services"
	"github.com/srivaishnavi26/TandP-Management-System/internal/middleware"
)

// RegistrationController handles the student-facing registration ledger
type RegistrationController struct {
	registrationService services.IRegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.IRegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{registrationService: registrationService, logger: logger}
}

func callerUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return userID, true
}

// Register records the caller's registration for a drive
// @Summary Register for a placement drive
// @Description Registers the calling student for a drive. Registering again for the same drive changes nothing and returns a notice.
// @Tags registrations
// @Produce json
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse "Already registered notice"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResult} "Registered"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Security BearerAuth
// @Router /drives/{id}/register [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	userID, ok := callerUserID(ctx)
	if !ok {
		return
	}
	driveID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	result, err := c.registrationService.Register(ctx.Request.Context(), userID, driveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if result.AlreadyRegistered {
		ctx.JSON(http.StatusOK, dto.NewWarningResponse("You have already registered for "+result.CompanyName))
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result, "Successfully registered for "+result.CompanyName))
}

// AvailableDrives lists drives the caller has not registered for
// @Summary List available drives
// @Description Lists drives the calling student has not yet registered for, soonest first.
// @Tags registrations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.DriveResponse}
// @Security BearerAuth
// @Router /drives/available [get]
func (c *RegistrationController) AvailableDrives(ctx *gin.Context) {
	userID, ok := callerUserID(ctx)
	if !ok {
		return
	}

	drives, err := c.registrationService.ListAvailableDrives(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(drives, ""))
}

// RegisteredDrives lists the caller's registrations
// @Summary List registered drives
// @Description Lists the calling student's registrations joined with their drives, soonest first.
// @Tags registrations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.RegistrationResponse}
// @Security BearerAuth
// @Router /drives/registered [get]
func (c *RegistrationController) RegisteredDrives(ctx *gin.Context) {
	userID, ok := callerUserID(ctx)
	if !ok {
		return
	}

	registrations, err := c.registrationService.ListRegisteredDrives(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(registrations, ""))
}
