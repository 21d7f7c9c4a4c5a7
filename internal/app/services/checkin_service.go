package services

import (
	"context"
	"fmt"
	"time"

	"github.com/feliperb/gympoint/internal/app/models"
	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/app/repositories"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
)

// checkinWindow is the trailing period the limit is evaluated over
const checkinWindow = 7 * 24 * time.Hour

// checkinLimit is the maximum number of check-ins inside the window
const checkinLimit = 5

// CheckinService handles attendance check-ins and their rate limit
type CheckinService struct {
	checkinRepo repositories.ICheckinRepository
	studentRepo repositories.IStudentRepository
	now         func() time.Time
}

// NewCheckinService creates a new CheckinService
func NewCheckinService(checkinRepo repositories.ICheckinRepository, studentRepo repositories.IStudentRepository) *CheckinService {
	return &CheckinService{
		checkinRepo: checkinRepo,
		studentRepo: studentRepo,
		now:         time.Now,
	}
}

// Create records a check-in unless the student already has checkinLimit
// check-ins inside the trailing window. The count and the insert are two
// separate statements; simultaneous requests can slip past the limit by a
// small margin.
func (s *CheckinService) Create(ctx context.Context, studentID int64) (*models.Checkin, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	now := s.now()
	count, err := s.checkinRepo.CountInWindow(ctx, studentID, now.Add(-checkinWindow), now)
	if err != nil {
		return nil, fmt.Errorf("error counting checkins: %w", err)
	}
	if count >= checkinLimit {
		return nil, apperrors.ErrCheckinLimitReached
	}

	checkin, err := s.checkinRepo.Create(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error creating checkin: %w", err)
	}

	return checkin, nil
}

// GetAllByStudent lists a student's check-ins as id/created_at projections
func (s *CheckinService) GetAllByStudent(ctx context.Context, studentID int64) ([]dto.CheckinResponse, error) {
	checkins, err := s.checkinRepo.GetAllByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving checkins: %w", err)
	}

	responses := make([]dto.CheckinResponse, 0, len(checkins))
	for _, checkin := range checkins {
		responses = append(responses, dto.CheckinResponse{
			ID:        checkin.ID,
			CreatedAt: checkin.CreatedAt,
		})
	}

	return responses, nil
}
