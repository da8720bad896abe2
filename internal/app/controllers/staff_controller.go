package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/services"
	"github.com/srivaishnavi26/TandP-Management-System/internal/middleware"
)

// StaffController handles staff account management
type StaffController struct {
	staffService services.IStaffService
	logger       zerolog.Logger
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.IStaffService, logger zerolog.Logger) *StaffController {
	return &StaffController{staffService: staffService, logger: logger}
}

// CreateStaff provisions a staff identity and profile
// @Summary Create staff member
// @Description Creates a staff login identity together with its profile. Admin only.
// @Tags staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} dto.APIResponse{data=dto.StaffResponse} "Staff created"
// @Failure 400 {object} dto.ErrorResponse "Invalid role"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Security BearerAuth
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	staff, err := c.staffService.CreateStaff(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(staff, "Staff member created"))
}

// GetStaff retrieves a staff profile
// @Summary Get staff member
// @Tags staff
// @Produce json
// @Param id path int true "Staff profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.StaffResponse}
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Security BearerAuth
// @Router /staff/{id} [get]
func (c *StaffController) GetStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	staff, err := c.staffService.GetStaff(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// ListStaff lists all staff profiles
// @Summary List staff members
// @Tags staff
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StaffListResponse}
// @Security BearerAuth
// @Router /staff [get]
func (c *StaffController) ListStaff(ctx *gin.Context) {
	list, err := c.staffService.ListStaff(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list, ""))
}

// UpdateStaff updates a staff profile
// @Summary Update staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path int true "Staff profile ID"
// @Param request body dto.UpdateStaffRequest true "Staff details"
// @Success 200 {object} dto.APIResponse{data=dto.StaffResponse} "Staff updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid role"
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Security BearerAuth
// @Router /staff/{id} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	staff, err := c.staffService.UpdateStaff(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, "Staff member updated"))
}

// DeleteStaff removes a staff member
// @Summary Delete staff member
// @Description Deletes the staff identity, profile and every material they uploaded.
// @Tags staff
// @Produce json
// @Param id path int true "Staff profile ID"
// @Success 200 {object} dto.APIResponse "Staff deleted"
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Security BearerAuth
// @Router /staff/{id} [delete]
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.staffService.DeleteStaff(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Staff member deleted"))
}

// PromoteStaff grants superuser status
// @Summary Promote staff member to admin
// @Tags staff
// @Produce json
// @Param id path int true "Staff profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.StaffResponse} "Staff promoted"
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Security BearerAuth
// @Router /staff/{id}/promote [post]
func (c *StaffController) PromoteStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	staff, err := c.staffService.PromoteToAdmin(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, "Staff member promoted"))
}

// GetOwnProfile resolves the caller's staff profile
// @Summary Get own staff profile
// @Tags staff
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StaffResponse}
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /staff/me [get]
func (c *StaffController) GetOwnProfile(ctx *gin.Context) {
	userID, ok := callerUserID(ctx)
	if !ok {
		return
	}

	staff, err := c.staffService.GetProfileByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}
