package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/feliperb/gympoint/internal/app/jobs"
	"github.com/feliperb/gympoint/internal/app/models"
	"github.com/feliperb/gympoint/internal/app/repositories"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
)

// HelpOrderService handles student questions and their single answer transition
type HelpOrderService struct {
	helpOrderRepo repositories.IHelpOrderRepository
	studentRepo   repositories.IStudentRepository
	dispatcher    *jobs.Dispatcher
	logger        zerolog.Logger
	now           func() time.Time
}

// NewHelpOrderService creates a new HelpOrderService
func NewHelpOrderService(
	helpOrderRepo repositories.IHelpOrderRepository,
	studentRepo repositories.IStudentRepository,
	dispatcher *jobs.Dispatcher,
	logger zerolog.Logger,
) *HelpOrderService {
	return &HelpOrderService{
		helpOrderRepo: helpOrderRepo,
		studentRepo:   studentRepo,
		dispatcher:    dispatcher,
		logger:        logger,
		now:           time.Now,
	}
}

// Create stores a new question for a student
func (s *HelpOrderService) Create(ctx context.Context, studentID int64, question string) (*models.HelpOrder, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	helpOrder := &models.HelpOrder{
		StudentID: studentID,
		Question:  question,
	}

	if err := s.helpOrderRepo.Create(ctx, helpOrder); err != nil {
		return nil, fmt.Errorf("error creating help order: %w", err)
	}

	return helpOrder, nil
}

// GetUnanswered lists the open queue of questions with no answer yet
func (s *HelpOrderService) GetUnanswered(ctx context.Context) ([]*models.HelpOrder, error) {
	helpOrders, err := s.helpOrderRepo.GetUnanswered(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving help orders: %w", err)
	}

	return helpOrders, nil
}

// GetByStudent lists all of a student's questions, answered or not
func (s *HelpOrderService) GetByStudent(ctx context.Context, studentID int64) ([]*models.HelpOrder, error) {
	helpOrders, err := s.helpOrderRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving help orders: %w", err)
	}

	return helpOrders, nil
}

// Answer sets the answer on an open help order. The transition happens at
// most once; a second answer attempt fails.
func (s *HelpOrderService) Answer(ctx context.Context, helpOrderID int64, answer string) (*models.HelpOrder, error) {
	helpOrder, err := s.helpOrderRepo.GetByID(ctx, helpOrderID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving help order: %w", err)
	}
	if helpOrder == nil {
		return nil, apperrors.ErrHelpOrderNotFound
	}
	if helpOrder.Answer != nil {
		return nil, apperrors.ErrHelpOrderAlreadyAnswered
	}

	answerAt := s.now()
	if err := s.helpOrderRepo.Answer(ctx, helpOrderID, answer, answerAt); err != nil {
		return nil, fmt.Errorf("error answering help order: %w", err)
	}

	helpOrder.Answer = &answer
	helpOrder.AnswerAt = &answerAt

	// The answer is committed; the notification email is fire-and-forget
	err = s.dispatcher.EnqueueAnswerMail(ctx, jobs.AnswerMailPayload{
		StudentName:  helpOrder.Student.Name,
		StudentEmail: helpOrder.Student.Email,
		Question:     helpOrder.Question,
		Answer:       answer,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("helpOrderID", helpOrderID).Msg("Failed to enqueue answer email")
	}

	return helpOrder, nil
}
