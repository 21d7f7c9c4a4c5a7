package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/app/services"
	"github.com/feliperb/gympoint/internal/middleware"
	"github.com/feliperb/gympoint/internal/pkg/validation"
)

// SessionController handles login and token issuance
type SessionController struct {
	authService *services.AuthService
}

// NewSessionController creates a new SessionController
func NewSessionController(authService *services.AuthService) *SessionController {
	return &SessionController{
		authService: authService,
	}
}

// Store handles session creation (login)
func (c *SessionController) Store(ctx *gin.Context) {
	var req dto.SessionStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if messages := validation.Struct(req); messages != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages))
		return
	}

	session, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}
