package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/app/services"
	"github.com/feliperb/gympoint/internal/middleware"
)

// CheckinController handles gym entry check-ins
type CheckinController struct {
	checkinService *services.CheckinService
}

// NewCheckinController creates a new CheckinController
func NewCheckinController(checkinService *services.CheckinService) *CheckinController {
	return &CheckinController{
		checkinService: checkinService,
	}
}

// Store registers a check-in for a student, subject to the rolling weekly limit
func (c *CheckinController) Store(ctx *gin.Context) {
	idStr := ctx.Param("student_id")
	studentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	checkin, err := c.checkinService.Create(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, checkin)
}

// Index lists a student's check-ins
func (c *CheckinController) Index(ctx *gin.Context) {
	idStr := ctx.Param("student_id")
	studentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	checkins, err := c.checkinService.GetAllByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, checkins)
}
