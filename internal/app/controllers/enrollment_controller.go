package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/app/services"
	"github.com/feliperb/gympoint/internal/middleware"
	"github.com/feliperb/gympoint/internal/pkg/validation"
)

// EnrollmentController handles plan enrollments
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Index lists all enrollments with their student and plan projections
func (c *EnrollmentController) Index(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollments)
}

// Show retrieves a single enrollment
func (c *EnrollmentController) Show(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid enrollment ID"})
		return
	}

	enrollment, err := c.enrollmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}

// Store enrolls a student into a plan. The path id is the student id.
func (c *EnrollmentController) Store(ctx *gin.Context) {
	idStr := ctx.Param("id")
	studentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	var req dto.EnrollmentStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if messages := validation.Struct(req); messages != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages))
		return
	}

	enrollment, err := c.enrollmentService.Create(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}

// Update rewrites an enrollment's student, plan and start date
func (c *EnrollmentController) Update(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid enrollment ID"})
		return
	}

	var req dto.EnrollmentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if messages := validation.Struct(req); messages != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages))
		return
	}

	enrollment, err := c.enrollmentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}

// Delete removes an enrollment
func (c *EnrollmentController) Delete(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid enrollment ID"})
		return
	}

	if err := c.enrollmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}
