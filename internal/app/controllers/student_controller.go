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

// StudentController handles student management
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// Store handles student creation
func (c *StudentController) Store(ctx *gin.Context) {
	var req dto.StudentStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if messages := validation.Struct(req); messages != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages))
		return
	}

	student, err := c.studentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// Update handles student updates. The path id wins over any id in the body.
func (c *StudentController) Update(ctx *gin.Context) {
	idStr := ctx.Param("student_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	var req dto.StudentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	req.ID = id

	if messages := validation.Struct(req); messages != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages))
		return
	}

	student, err := c.studentService.Update(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}
