package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/services"
	"github.com/srivaishnavi26/TandP-Management-System/internal/middleware"
)

// PublicController serves the unauthenticated informational endpoints
type PublicController struct {
	staffService services.IStaffService
	logger       zerolog.Logger
}

// NewPublicController creates a new PublicController
func NewPublicController(staffService services.IStaffService, logger zerolog.Logger) *PublicController {
	return &PublicController{staffService: staffService, logger: logger}
}

// Home returns the landing payload
// @Summary Landing page
// @Tags public
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router / [get]
func (c *PublicController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"name":        "Training and Placement Cell",
		"description": "Placement drives, preparation material and placement team contacts",
	}, ""))
}

// About returns the about payload
// @Summary About the placement cell
// @Tags public
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /about [get]
func (c *PublicController) About(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"about": "The Training and Placement Cell prepares students for campus " +
			"recruitment: it runs placement drives with partner companies, " +
			"publishes verbal and aptitude preparation material, and coordinates " +
			"between departments and recruiters.",
	}, ""))
}

// Team returns the placement team roster
// @Summary Placement team roster
// @Description Lists the placement team's names and contact details. No authentication required.
// @Tags public
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TeamMemberResponse}
// @Router /team [get]
func (c *PublicController) Team(ctx *gin.Context) {
	roster, err := c.staffService.TeamRoster(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roster, ""))
}
