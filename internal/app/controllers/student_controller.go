package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/services"
	"github.com/srivaishnavi26/TandP-Management-System/internal/middleware"
)

// maxResumeSize caps resume uploads at 5 MB.
const maxResumeSize = 5 << 20

// StudentController handles student record management
type StudentController struct {
	studentService services.IStudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.IStudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{studentService: studentService, logger: logger}
}

// CreateStudent creates a student record
// @Summary Create student
// @Description Creates a student record. When a password is supplied a login identity is created with it.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student details"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created"
// @Failure 409 {object} dto.ErrorResponse "Roll number or email already exists"
// @Security BearerAuth
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student created"))
}

// GetStudent retrieves a student record
// @Summary Get student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// ListStudents lists student records
// @Summary List students
// @Description Lists students ordered by roll number. Department coordinators see only their branch.
// @Tags students
// @Produce json
// @Param branch query string false "Branch filter (admins only)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Security BearerAuth
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	userID, ok := callerUserID(ctx)
	if !ok {
		return
	}

	list, err := c.studentService.ListStudents(ctx.Request.Context(), userID, ctx.Query("branch"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list, ""))
}

// UpdateStudent updates a student record
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student details"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Roll number already exists"
// @Security BearerAuth
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated"))
}

// DeleteStudent removes a student record
// @Summary Delete student
// @Description Deletes the student record, its login identity and its registrations.
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted"))
}

// GetOwnRecord resolves the caller's student record
// @Summary Get own student record
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /students/me [get]
func (c *StudentController) GetOwnRecord(ctx *gin.Context) {
	userID, ok := callerUserID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// UploadResume stores the caller's resume
// @Summary Upload resume
// @Description Stores a resume for the calling student, replacing any previous one.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Resume uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing or oversized file"
// @Security BearerAuth
// @Router /students/me/resume [post]
func (c *StudentController) UploadResume(ctx *gin.Context) {
	userID, ok := callerUserID(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("resume")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Resume file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if file.Size > maxResumeSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Resume file too large")
		errorDetail = errorDetail.WithDetails("Maximum resume size is 5 MB")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UploadResume(ctx.Request.Context(), userID, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Resume uploaded"))
}
