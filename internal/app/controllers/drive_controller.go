package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/services"
	"github.com/srivaishnavi26/TandP-Management-System/internal/middleware"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/helpers"
)

// DriveController handles placement drive catalog operations
type DriveController struct {
	driveService services.IDriveService
	logger       zerolog.Logger
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService services.IDriveService, logger zerolog.Logger) *DriveController {
	return &DriveController{driveService: driveService, logger: logger}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateDrive adds a drive to the catalog
// @Summary Create placement drive
// @Description Creates a new placement drive. Staff only.
// @Tags drives
// @Accept json
// @Produce json
// @Param request body dto.CreateDriveRequest true "Drive details"
// @Success 201 {object} dto.APIResponse{data=dto.DriveResponse} "Drive created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 403 {object} dto.ErrorResponse "Staff access required"
// @Security BearerAuth
// @Router /drives [post]
func (c *DriveController) CreateDrive(ctx *gin.Context) {
	var req dto.CreateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	drive, err := c.driveService.CreateDrive(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(drive, "Drive created"))
}

// GetDrive retrieves a single drive
// @Summary Get placement drive
// @Tags drives
// @Produce json
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse}
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Security BearerAuth
// @Router /drives/{id} [get]
func (c *DriveController) GetDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	drive, err := c.driveService.GetDrive(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(drive, ""))
}

// ListDrives lists drives with pagination
// @Summary List placement drives
// @Description Lists drives most recent first, optionally filtered by company name.
// @Tags drives
// @Produce json
// @Param company query string false "Company name filter"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.DriveListResponse}
// @Security BearerAuth
// @Router /drives [get]
func (c *DriveController) ListDrives(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	company := ctx.Query("company")

	list, err := c.driveService.ListDrives(ctx.Request.Context(), company, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewSuccessResponse(list.Drives, "")
	response.Pagination = &list.Pagination
	ctx.JSON(http.StatusOK, response)
}

// UpdateDrive replaces a drive's fields
// @Summary Update placement drive
// @Tags drives
// @Accept json
// @Produce json
// @Param id path int true "Drive ID"
// @Param request body dto.UpdateDriveRequest true "Drive details"
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse} "Drive updated"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Security BearerAuth
// @Router /drives/{id} [put]
func (c *DriveController) UpdateDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	drive, err := c.driveService.UpdateDrive(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(drive, "Drive updated"))
}

// DeleteDrive removes a drive and its registrations
// @Summary Delete placement drive
// @Description Deletes a drive. Registrations referencing it are removed with it.
// @Tags drives
// @Produce json
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse "Drive deleted"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Security BearerAuth
// @Router /drives/{id} [delete]
func (c *DriveController) DeleteDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.driveService.DeleteDrive(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Drive deleted"))
}
