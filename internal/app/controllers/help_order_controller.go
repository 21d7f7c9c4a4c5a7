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

// HelpOrderController handles student questions and staff answers
type HelpOrderController struct {
	helpOrderService *services.HelpOrderService
}

// NewHelpOrderController creates a new HelpOrderController
func NewHelpOrderController(helpOrderService *services.HelpOrderService) *HelpOrderController {
	return &HelpOrderController{
		helpOrderService: helpOrderService,
	}
}

// Store registers a new question for a student
func (c *HelpOrderController) Store(ctx *gin.Context) {
	idStr := ctx.Param("student_id")
	studentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	var req dto.HelpOrderStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if messages := validation.Struct(req); messages != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages))
		return
	}

	helpOrder, err := c.helpOrderService.Create(ctx, studentID, req.Question)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, helpOrder)
}

// Index lists the open queue of unanswered questions
func (c *HelpOrderController) Index(ctx *gin.Context) {
	helpOrders, err := c.helpOrderService.GetUnanswered(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, helpOrders)
}

// IndexByStudent lists all of a student's questions
func (c *HelpOrderController) IndexByStudent(ctx *gin.Context) {
	idStr := ctx.Param("student_id")
	studentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	helpOrders, err := c.helpOrderService.GetByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, helpOrders)
}

// Answer stores the answer for an open question
func (c *HelpOrderController) Answer(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid help order ID"})
		return
	}

	var req dto.AnswerStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if messages := validation.Struct(req); messages != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages))
		return
	}

	helpOrder, err := c.helpOrderService.Answer(ctx, id, req.Answer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, helpOrder)
}
