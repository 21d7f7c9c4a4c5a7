package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feliperb/gympoint/internal/app/models"
)

// IHelpOrderRepository defines the help order persistence operations used by services
type IHelpOrderRepository interface {
	Create(ctx context.Context, helpOrder *models.HelpOrder) error
	GetByID(ctx context.Context, id int64) (*models.HelpOrder, error)
	GetUnanswered(ctx context.Context) ([]*models.HelpOrder, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.HelpOrder, error)
	Answer(ctx context.Context, id int64, answer string, answerAt time.Time) error
}

// HelpOrderRepository handles database operations for help orders
type HelpOrderRepository struct {
	db *pgxpool.Pool
}

// NewHelpOrderRepository creates a new help order repository
func NewHelpOrderRepository(db *pgxpool.Pool) *HelpOrderRepository {
	return &HelpOrderRepository{
		db: db,
	}
}

const helpOrderJoinQuery = `
	SELECT h.id, h.student_id, h.question, h.answer, h.answer_at,
	       h.created_at, h.updated_at,
	       s.id, s.name, s.email
	FROM help_orders h
	JOIN students s ON s.id = h.student_id
`

// scanJoinedHelpOrder scans one row of helpOrderJoinQuery
func scanJoinedHelpOrder(row pgx.Row) (*models.HelpOrder, error) {
	var helpOrder models.HelpOrder
	var student models.Student

	err := row.Scan(
		&helpOrder.ID,
		&helpOrder.StudentID,
		&helpOrder.Question,
		&helpOrder.Answer,
		&helpOrder.AnswerAt,
		&helpOrder.CreatedAt,
		&helpOrder.UpdatedAt,
		&student.ID,
		&student.Name,
		&student.Email,
	)
	if err != nil {
		return nil, err
	}

	helpOrder.Student = &student
	return &helpOrder, nil
}

// Create inserts a new help order and fills in the generated fields
func (r *HelpOrderRepository) Create(ctx context.Context, helpOrder *models.HelpOrder) error {
	query := `
		INSERT INTO help_orders (student_id, question)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, helpOrder.StudentID, helpOrder.Question).
		Scan(&helpOrder.ID, &helpOrder.CreatedAt, &helpOrder.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating help order: %w", err)
	}

	return nil
}

// GetByID retrieves a help order joined with its student.
// Returns (nil, nil) when no help order exists.
func (r *HelpOrderRepository) GetByID(ctx context.Context, id int64) (*models.HelpOrder, error) {
	row := r.db.QueryRow(ctx, helpOrderJoinQuery+` WHERE h.id = $1`, id)

	helpOrder, err := scanJoinedHelpOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving help order: %w", err)
	}

	return helpOrder, nil
}

// queryJoined runs a helpOrderJoinQuery variant and collects the rows
func (r *HelpOrderRepository) queryJoined(ctx context.Context, query string, args ...interface{}) ([]*models.HelpOrder, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var helpOrders []*models.HelpOrder
	for rows.Next() {
		helpOrder, err := scanJoinedHelpOrder(rows)
		if err != nil {
			return nil, err
		}
		helpOrders = append(helpOrders, helpOrder)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return helpOrders, nil
}

// GetUnanswered retrieves the open queue: help orders with no answer yet
func (r *HelpOrderRepository) GetUnanswered(ctx context.Context) ([]*models.HelpOrder, error) {
	return r.queryJoined(ctx, helpOrderJoinQuery+` WHERE h.answer IS NULL ORDER BY h.id`)
}

// GetByStudent retrieves all help orders for a student regardless of answer state
func (r *HelpOrderRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.HelpOrder, error) {
	return r.queryJoined(ctx, helpOrderJoinQuery+` WHERE h.student_id = $1 ORDER BY h.id`, studentID)
}

// Answer sets the answer and answer_at on a help order
func (r *HelpOrderRepository) Answer(ctx context.Context, id int64, answer string, answerAt time.Time) error {
	query := `
		UPDATE help_orders
		SET answer = $1, answer_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, answer, answerAt, id)
	if err != nil {
		return fmt.Errorf("error answering help order: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("error answering help order: no rows affected")
	}

	return nil
}
