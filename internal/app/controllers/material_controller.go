package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/services"
	"github.com/srivaishnavi26/TandP-Management-System/internal/middleware"
)

// maxMaterialSize caps material uploads at 20 MB.
const maxMaterialSize = 20 << 20

// MaterialController handles preparation material uploads. One controller
// serves both verbal materials and aptitude tests; the route binds the kind.
type MaterialController struct {
	materialService services.IMaterialService
	kind            models.MaterialKind
	logger          zerolog.Logger
}

// NewMaterialController creates a MaterialController for a material kind
func NewMaterialController(materialService services.IMaterialService, kind models.MaterialKind, logger zerolog.Logger) *MaterialController {
	return &MaterialController{materialService: materialService, kind: kind, logger: logger}
}

// Upload stores a material file
// @Summary Upload preparation material
// @Description Uploads a verbal material or aptitude test. Only the matching trainer role or an admin may upload.
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Material title"
// @Param file formData file true "Material file"
// @Success 201 {object} dto.APIResponse{data=dto.MaterialResponse} "Material uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing title or file"
// @Failure 403 {object} dto.ErrorResponse "Wrong trainer role"
// @Security BearerAuth
// @Router /materials/{kind} [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	userID, ok := callerUserID(ctx)
	if !ok {
		return
	}

	var req dto.UploadMaterialRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Material file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if file.Size > maxMaterialSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Material file too large")
		errorDetail = errorDetail.WithDetails("Maximum material size is 20 MB")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	material, err := c.materialService.Upload(ctx.Request.Context(), c.kind, userID, req.Title, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(material, "Material uploaded"))
}

// List returns all materials of the controller's kind
// @Summary List preparation materials
// @Description Lists materials of one kind, newest first, with uploader names.
// @Tags materials
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MaterialListResponse}
// @Security BearerAuth
// @Router /materials/{kind} [get]
func (c *MaterialController) List(ctx *gin.Context) {
	list, err := c.materialService.List(ctx.Request.Context(), c.kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list, ""))
}

// Delete removes a material and its file
// @Summary Delete preparation material
// @Description Deletes a material. Trainers may delete only their own uploads; admins may delete any.
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse "Material deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{kind}/{id} [delete]
func (c *MaterialController) Delete(ctx *gin.Context) {
	userID, ok := callerUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.materialService.Delete(ctx.Request.Context(), c.kind, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Material deleted"))
}
