package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/feliperb/gympoint/internal/pkg/apperrors"
)

func performWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorWireContract(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{apperrors.ErrUserNotFound, http.StatusUnauthorized, `{"error":"User not found"}`},
		{apperrors.ErrPasswordMismatch, http.StatusUnauthorized, `{"error":"Password does not match"}`},
		{apperrors.ErrDuplicatedEmail, http.StatusBadRequest, `{"error":"Duplicated email"}`},
		{apperrors.ErrStudentNotFound, http.StatusBadRequest, `{"error":"Student does not exists"}`},
		{apperrors.ErrPlanNotFound, http.StatusBadRequest, `{"error":"Plan does not exist"}`},
		{apperrors.ErrEnrollmentNotFound, http.StatusBadRequest, `{"error":"Enrollment does not exists"}`},
		{apperrors.ErrAlreadyEnrolled, http.StatusBadRequest, `{"error":"Studen already enrolled into a plan"}`},
		{apperrors.ErrCheckinLimitReached, http.StatusBadRequest, `{"error":"You can only check-in 5 times every 7 days!"}`},
		{apperrors.ErrHelpOrderNotFound, http.StatusBadRequest, `{"error":"Help Order does not exists!"}`},
		{apperrors.ErrHelpOrderAlreadyAnswered, http.StatusBadRequest, `{"error":"Help Order already answered!"}`},
		{apperrors.ErrTokenNotProvided, http.StatusUnauthorized, `{"error":"Token not provided!"}`},
		{apperrors.ErrTokenInvalid, http.StatusUnauthorized, `{"error":"Token invalid!"}`},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized, `{"error":"Token invalid!"}`},
		{apperrors.NewBadRequestError("Plan does not exists"), http.StatusBadRequest, `{"error":"Plan does not exists"}`},
		{errors.New("something unexpected"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			w := performWithError(tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestHandleAPIErrorUnwrapsWrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("service layer: %w", apperrors.ErrStudentNotFound)

	w := performWithError(wrapped)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Student does not exists"}`, w.Body.String())
}
