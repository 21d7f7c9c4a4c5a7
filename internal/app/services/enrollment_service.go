package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/feliperb/gympoint/internal/app/jobs"
	"github.com/feliperb/gympoint/internal/app/models"
	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/app/repositories"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
	"github.com/feliperb/gympoint/internal/pkg/helpers"
)

// EnrollmentService handles enrollment operations, including the derivation
// of end date and total price from the chosen plan
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	studentRepo    repositories.IStudentRepository
	planRepo       repositories.IPlanRepository
	dispatcher     *jobs.Dispatcher
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	studentRepo repositories.IStudentRepository,
	planRepo repositories.IPlanRepository,
	dispatcher *jobs.Dispatcher,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		planRepo:       planRepo,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

// Create enrolls a student into a plan. Any existing enrollment row for the
// student blocks a new one, including expired ones; that is the historical
// contract of this API.
func (s *EnrollmentService) Create(ctx context.Context, studentID int64, req *dto.EnrollmentStoreRequest) (*models.Enrollment, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	plan, err := s.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewBadRequestError("Plan does not exists")
	}

	enrolled, err := s.enrollmentRepo.ExistsForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if enrolled {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	enrollment := &models.Enrollment{
		StudentID: studentID,
		PlanID:    plan.ID,
		StartDate: req.StartDate,
		EndDate:   helpers.AddMonths(req.StartDate, plan.Duration),
		Price:     float64(plan.Duration) * plan.Price,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	// The enrollment is committed; the welcome email is fire-and-forget
	s.enqueueWelcomeMail(ctx, enrollment.ID)

	return enrollment, nil
}

// enqueueWelcomeMail re-reads the enrollment joined with student and plan and
// queues the welcome email. Failures are logged, never surfaced.
func (s *EnrollmentService) enqueueWelcomeMail(ctx context.Context, enrollmentID int64) {
	joined, err := s.enrollmentRepo.GetWithRelations(ctx, enrollmentID)
	if err != nil || joined == nil {
		s.logger.Error().Err(err).Int64("enrollmentID", enrollmentID).Msg("Failed to load enrollment for welcome email")
		return
	}

	err = s.dispatcher.EnqueueEnrollmentMail(ctx, jobs.EnrollmentMailPayload{
		StudentName:  joined.Student.Name,
		StudentEmail: joined.Student.Email,
		PlanTitle:    joined.Plan.Title,
		Price:        joined.Price,
		StartDate:    joined.StartDate,
		EndDate:      joined.EndDate,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("enrollmentID", enrollmentID).Msg("Failed to enqueue welcome email")
	}
}

// Update recomputes the end date and price from the submitted start date and
// plan, exactly as Create does. The already-enrolled rule is not re-checked.
func (s *EnrollmentService) Update(ctx context.Context, id int64, req *dto.EnrollmentUpdateRequest) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	plan, err := s.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewBadRequestError("Plan does not exists")
	}

	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	enrollment.StudentID = student.ID
	enrollment.PlanID = plan.ID
	enrollment.StartDate = req.StartDate
	enrollment.EndDate = helpers.AddMonths(req.StartDate, plan.Duration)
	enrollment.Price = float64(plan.Duration) * plan.Price

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("error updating enrollment: %w", err)
	}

	return enrollment, nil
}

// Delete removes an enrollment
func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving enrollment: %w", err)
	}
	if enrollment == nil {
		return apperrors.ErrEnrollmentNotFound
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves one enrollment with its joined projections
func (s *EnrollmentService) GetByID(ctx context.Context, id int64) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	response := toEnrollmentResponse(enrollment)
	return &response, nil
}

// GetAll retrieves every enrollment with its joined projections
func (s *EnrollmentService) GetAll(ctx context.Context) ([]dto.EnrollmentResponse, error) {
	enrollments, err := s.enrollmentRepo.GetAllWithRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	responses := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, toEnrollmentResponse(enrollment))
	}

	return responses, nil
}

// toEnrollmentResponse flattens a joined enrollment into its API projection
func toEnrollmentResponse(enrollment *models.Enrollment) dto.EnrollmentResponse {
	return dto.EnrollmentResponse{
		ID:        enrollment.ID,
		StartDate: enrollment.StartDate,
		EndDate:   enrollment.EndDate,
		Price:     enrollment.Price,
		Student: dto.StudentSummary{
			ID:    enrollment.Student.ID,
			Name:  enrollment.Student.Name,
			Email: enrollment.Student.Email,
		},
		Plan: dto.PlanSummary{
			ID:       enrollment.Plan.ID,
			Title:    enrollment.Plan.Title,
			Duration: enrollment.Plan.Duration,
			Price:    enrollment.Plan.Price,
		},
	}
}
