package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliperb/gympoint/internal/app/models"
	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
)

func TestStudentCreate(t *testing.T) {
	repo := newFakeStudentRepo()
	service := NewStudentService(repo)

	student, err := service.Create(context.Background(), &dto.StudentStoreRequest{
		Name:   "John Doe",
		Email:  "john@example.com",
		Age:    25,
		Weight: 80.5,
		Height: 1.82,
	})
	require.NoError(t, err)
	assert.NotZero(t, student.ID)
	assert.Equal(t, "john@example.com", student.Email)
}

func TestStudentCreateDuplicatedEmail(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.add(&models.Student{Name: "John Doe", Email: "john@example.com"})
	service := NewStudentService(repo)

	_, err := service.Create(context.Background(), &dto.StudentStoreRequest{
		Name:   "Other John",
		Email:  "john@example.com",
		Age:    30,
		Weight: 70,
		Height: 1.7,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicatedEmail)
}

func TestStudentUpdateUnknown(t *testing.T) {
	service := NewStudentService(newFakeStudentRepo())

	_, err := service.Update(context.Background(), &dto.StudentUpdateRequest{
		ID:     99,
		Name:   "John Doe",
		Email:  "john@example.com",
		Age:    25,
		Weight: 80,
		Height: 1.8,
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentUpdateKeepsOwnEmail(t *testing.T) {
	repo := newFakeStudentRepo()
	existing := repo.add(&models.Student{Name: "John Doe", Email: "john@example.com", Age: 25, Weight: 80, Height: 1.8})
	service := NewStudentService(repo)

	// Same email on the same record must not trip the uniqueness check
	updated, err := service.Update(context.Background(), &dto.StudentUpdateRequest{
		ID:     existing.ID,
		Name:   "John Doe",
		Email:  "john@example.com",
		Age:    26,
		Weight: 82,
		Height: 1.8,
	})
	require.NoError(t, err)
	assert.Equal(t, 26, updated.Age)
}

func TestStudentUpdateRejectsTakenEmail(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.add(&models.Student{Name: "Jane Doe", Email: "jane@example.com"})
	target := repo.add(&models.Student{Name: "John Doe", Email: "john@example.com"})
	service := NewStudentService(repo)

	_, err := service.Update(context.Background(), &dto.StudentUpdateRequest{
		ID:     target.ID,
		Name:   "John Doe",
		Email:  "jane@example.com",
		Age:    25,
		Weight: 80,
		Height: 1.8,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicatedEmail)
}
