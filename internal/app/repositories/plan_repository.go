package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feliperb/gympoint/internal/app/models"
)

// IPlanRepository defines the plan persistence operations used by services
type IPlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) error
	GetByID(ctx context.Context, id int64) (*models.Plan, error)
	GetAll(ctx context.Context) ([]*models.Plan, error)
	Update(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, id int64) error
}

// PlanRepository handles database operations for plans
type PlanRepository struct {
	db *pgxpool.Pool
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{
		db: db,
	}
}

// Create inserts a new plan and fills in the generated fields
func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	query := `
		INSERT INTO plans (title, duration, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, plan.Title, plan.Duration, plan.Price).
		Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating plan: %w", err)
	}

	return nil
}

// GetByID retrieves a plan by ID. Returns (nil, nil) when no plan exists.
func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*models.Plan, error) {
	query := `
		SELECT id, title, duration, price, created_at, updated_at
		FROM plans
		WHERE id = $1
	`

	var plan models.Plan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID,
		&plan.Title,
		&plan.Duration,
		&plan.Price,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}

	return &plan, nil
}

// GetAll retrieves all plans
func (r *PlanRepository) GetAll(ctx context.Context) ([]*models.Plan, error) {
	query := `
		SELECT id, title, duration, price, created_at, updated_at
		FROM plans
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*models.Plan
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(
			&plan.ID,
			&plan.Title,
			&plan.Duration,
			&plan.Price,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// Update updates an existing plan
func (r *PlanRepository) Update(ctx context.Context, plan *models.Plan) error {
	query := `
		UPDATE plans
		SET title = $1, duration = $2, price = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, plan.Title, plan.Duration, plan.Price, plan.ID).
		Scan(&plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error updating plan: %w", err)
	}

	return nil
}

// Delete deletes a plan by ID
func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting plan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("error deleting plan: no rows affected")
	}

	return nil
}
