package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliperb/gympoint/internal/app/models/dto"
)

func TestStructValid(t *testing.T) {
	req := dto.StudentStoreRequest{
		Name:   "John Doe",
		Email:  "john@example.com",
		Age:    25,
		Weight: 80.5,
		Height: 1.82,
	}

	assert.Nil(t, Struct(req))
}

func TestStructUsesJSONFieldNames(t *testing.T) {
	req := dto.UserStoreRequest{Name: "Admin", Password: "123456"}

	messages := Struct(req)
	require.Len(t, messages, 1)
	assert.Equal(t, "email", messages[0].Field)
	assert.Equal(t, "email is a required field", messages[0].Message)
}

func TestStructEmailMessage(t *testing.T) {
	req := dto.SessionStoreRequest{Email: "not-an-email", Password: "123456"}

	messages := Struct(req)
	require.Len(t, messages, 1)
	assert.Equal(t, "email must be a valid email", messages[0].Message)
}

func TestStructPositiveNumberMessage(t *testing.T) {
	req := dto.PlanStoreRequest{Title: "Gold", Duration: -1, Price: 100}

	messages := Struct(req)
	require.Len(t, messages, 1)
	assert.Equal(t, "duration", messages[0].Field)
	assert.Equal(t, "duration must be a positive number", messages[0].Message)
}

func TestStructMessagesFollowDeclarationOrder(t *testing.T) {
	messages := Struct(dto.EnrollmentUpdateRequest{})
	require.Len(t, messages, 3)

	assert.Equal(t, "student_id", messages[0].Field)
	assert.Equal(t, "plan_id", messages[1].Field)
	assert.Equal(t, "start_date", messages[2].Field)
	assert.Equal(t, "student_id is a required field", messages[0].Message)
}

func TestStructEnrollmentStore(t *testing.T) {
	valid := dto.EnrollmentStoreRequest{PlanID: 1, StartDate: time.Now()}
	assert.Nil(t, Struct(valid))

	messages := Struct(dto.EnrollmentStoreRequest{PlanID: 1})
	require.Len(t, messages, 1)
	assert.Equal(t, "start_date", messages[0].Field)
}
