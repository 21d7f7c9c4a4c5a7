package services

import (
	"context"
	"fmt"

	"github.com/feliperb/gympoint/internal/app/models"
	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/app/repositories"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
)

// StudentService handles student record operations
type StudentService struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// Create registers a new student after checking email uniqueness
func (s *StudentService) Create(ctx context.Context, req *dto.StudentStoreRequest) (*models.Student, error) {
	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicatedEmail
	}

	student := &models.Student{
		Name:   req.Name,
		Email:  req.Email,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// Update applies new data to an existing student. Email uniqueness is only
// re-checked when the submitted email differs from the stored one, so a
// student can always keep their current address.
func (s *StudentService) Update(ctx context.Context, req *dto.StudentUpdateRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if student.Email != req.Email {
		exists, err := s.studentRepo.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return nil, apperrors.ErrDuplicatedEmail
		}
	}

	student.Name = req.Name
	student.Email = req.Email
	student.Age = req.Age
	student.Weight = req.Weight
	student.Height = req.Height

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}
