package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to the wire error envelope. The
// message strings are part of the API contract and must not change.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not found"})
		return
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Password does not match"})
		return
	case errors.Is(err, apperrors.ErrDuplicatedEmail):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Duplicated email"})
		return
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Student does not exists"})
		return
	case errors.Is(err, apperrors.ErrPlanNotFound):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Plan does not exist"})
		return
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Enrollment does not exists"})
		return
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Studen already enrolled into a plan"})
		return
	case errors.Is(err, apperrors.ErrCheckinLimitReached):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "You can only check-in 5 times every 7 days!"})
		return
	case errors.Is(err, apperrors.ErrHelpOrderNotFound):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Help Order does not exists!"})
		return
	case errors.Is(err, apperrors.ErrHelpOrderAlreadyAnswered):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Help Order already answered!"})
		return
	case errors.Is(err, apperrors.ErrTokenNotProvided):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token not provided!"})
		return
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token invalid!"})
		return
	case errors.Is(err, apperrors.ErrBadRequest):
		var customErr *apperrors.CustomError
		message := "Bad request"
		if errors.As(err, &customErr) && customErr.Message != "" {
			message = customErr.Message
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
		return
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}
}
