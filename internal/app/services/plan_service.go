package services

import (
	"context"
	"fmt"

	"github.com/feliperb/gympoint/internal/app/models"
	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/app/repositories"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
)

// PlanService handles subscription plan operations
type PlanService struct {
	planRepo repositories.IPlanRepository
}

// NewPlanService creates a new PlanService
func NewPlanService(planRepo repositories.IPlanRepository) *PlanService {
	return &PlanService{
		planRepo: planRepo,
	}
}

// Create stores a new plan
func (s *PlanService) Create(ctx context.Context, req *dto.PlanStoreRequest) (*models.Plan, error) {
	plan := &models.Plan{
		Title:    req.Title,
		Duration: req.Duration,
		Price:    req.Price,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("error creating plan: %w", err)
	}

	return plan, nil
}

// GetByID retrieves one plan
func (s *PlanService) GetByID(ctx context.Context, id int64) (*models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.ErrPlanNotFound
	}

	return plan, nil
}

// GetAll retrieves every plan, unpaginated
func (s *PlanService) GetAll(ctx context.Context) ([]*models.Plan, error) {
	plans, err := s.planRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving plans: %w", err)
	}

	return plans, nil
}

// Update applies new data to the plan identified by the request body id
func (s *PlanService) Update(ctx context.Context, req *dto.PlanUpdateRequest) (*models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.ErrPlanNotFound
	}

	plan.Title = req.Title
	plan.Duration = req.Duration
	plan.Price = req.Price

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("error updating plan: %w", err)
	}

	return plan, nil
}

// Delete removes a plan
func (s *PlanService) Delete(ctx context.Context, id int64) error {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving plan: %w", err)
	}
	if plan == nil {
		return apperrors.ErrPlanNotFound
	}

	if err := s.planRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting plan: %w", err)
	}

	return nil
}
