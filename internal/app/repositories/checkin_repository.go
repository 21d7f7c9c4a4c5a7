package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feliperb/gympoint/internal/app/models"
)

// ICheckinRepository defines the check-in persistence operations used by services
type ICheckinRepository interface {
	Create(ctx context.Context, studentID int64) (*models.Checkin, error)
	CountInWindow(ctx context.Context, studentID int64, from, to time.Time) (int, error)
	GetAllByStudent(ctx context.Context, studentID int64) ([]*models.Checkin, error)
}

// CheckinRepository handles database operations for check-ins
type CheckinRepository struct {
	db *pgxpool.Pool
}

// NewCheckinRepository creates a new check-in repository
func NewCheckinRepository(db *pgxpool.Pool) *CheckinRepository {
	return &CheckinRepository{
		db: db,
	}
}

// Create inserts a check-in stamped with the current database time
func (r *CheckinRepository) Create(ctx context.Context, studentID int64) (*models.Checkin, error) {
	query := `
		INSERT INTO checkins (student_id)
		VALUES ($1)
		RETURNING id, student_id, created_at
	`

	var checkin models.Checkin
	err := r.db.QueryRow(ctx, query, studentID).
		Scan(&checkin.ID, &checkin.StudentID, &checkin.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating checkin: %w", err)
	}

	return &checkin, nil
}

// CountInWindow counts the student's check-ins with created_at in [from, to]
func (r *CheckinRepository) CountInWindow(ctx context.Context, studentID int64, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM checkins
		WHERE student_id = $1 AND created_at BETWEEN $2 AND $3`,
		studentID, from, to).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting checkins: %w", err)
	}

	return count, nil
}

// GetAllByStudent retrieves all check-ins for a student
func (r *CheckinRepository) GetAllByStudent(ctx context.Context, studentID int64) ([]*models.Checkin, error) {
	query := `
		SELECT id, student_id, created_at
		FROM checkins
		WHERE student_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkins []*models.Checkin
	for rows.Next() {
		var checkin models.Checkin
		if err := rows.Scan(&checkin.ID, &checkin.StudentID, &checkin.CreatedAt); err != nil {
			return nil, err
		}
		checkins = append(checkins, &checkin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return checkins, nil
}
