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

// PlanController handles membership plan management
type PlanController struct {
	planService *services.PlanService
}

// NewPlanController creates a new PlanController
func NewPlanController(planService *services.PlanService) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// Index lists all plans
func (c *PlanController) Index(ctx *gin.Context) {
	plans, err := c.planService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plans)
}

// Show retrieves a single plan
func (c *PlanController) Show(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	plan, err := c.planService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// Store handles plan creation
func (c *PlanController) Store(ctx *gin.Context) {
	var req dto.PlanStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if messages := validation.Struct(req); messages != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages))
		return
	}

	plan, err := c.planService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// Update handles plan updates. The target plan id travels in the body.
func (c *PlanController) Update(ctx *gin.Context) {
	var req dto.PlanUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if messages := validation.Struct(req); messages != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages))
		return
	}

	plan, err := c.planService.Update(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// Delete removes a plan
func (c *PlanController) Delete(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	if err := c.planService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}
