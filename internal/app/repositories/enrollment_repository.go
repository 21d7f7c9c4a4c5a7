package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feliperb/gympoint/internal/app/models"
)

// IEnrollmentRepository defines the enrollment persistence operations used by services
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetWithRelations(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAllWithRelations(ctx context.Context) ([]*models.Enrollment, error)
	ExistsForStudent(ctx context.Context, studentID int64) (bool, error)
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment and fills in the generated fields
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, plan_id, start_date, end_date, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID, enrollment.PlanID,
		enrollment.StartDate, enrollment.EndDate, enrollment.Price).
		Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// Update updates an existing enrollment
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET student_id = $1, plan_id = $2, start_date = $3, end_date = $4, price = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID, enrollment.PlanID,
		enrollment.StartDate, enrollment.EndDate, enrollment.Price, enrollment.ID).
		Scan(&enrollment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	return nil
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("error deleting enrollment: no rows affected")
	}

	return nil
}

// GetByID retrieves an enrollment by ID without relations.
// Returns (nil, nil) when no enrollment exists.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, student_id, plan_id, start_date, end_date, price, created_at, updated_at
		FROM enrollments
		WHERE id = $1
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.PlanID,
		&enrollment.StartDate,
		&enrollment.EndDate,
		&enrollment.Price,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

const enrollmentJoinQuery = `
	SELECT e.id, e.student_id, e.plan_id, e.start_date, e.end_date, e.price,
	       e.created_at, e.updated_at,
	       s.id, s.name, s.email,
	       p.id, p.title, p.duration, p.price
	FROM enrollments e
	JOIN students s ON s.id = e.student_id
	JOIN plans p ON p.id = e.plan_id
`

// scanJoinedEnrollment scans one row of enrollmentJoinQuery
func scanJoinedEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	var student models.Student
	var plan models.Plan

	err := row.Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.PlanID,
		&enrollment.StartDate,
		&enrollment.EndDate,
		&enrollment.Price,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
		&student.ID,
		&student.Name,
		&student.Email,
		&plan.ID,
		&plan.Title,
		&plan.Duration,
		&plan.Price,
	)
	if err != nil {
		return nil, err
	}

	enrollment.Student = &student
	enrollment.Plan = &plan
	return &enrollment, nil
}

// GetWithRelations retrieves an enrollment joined with its student and plan
// projections. Returns (nil, nil) when no enrollment exists.
func (r *EnrollmentRepository) GetWithRelations(ctx context.Context, id int64) (*models.Enrollment, error) {
	row := r.db.QueryRow(ctx, enrollmentJoinQuery+` WHERE e.id = $1`, id)

	enrollment, err := scanJoinedEnrollment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// GetAllWithRelations retrieves all enrollments joined with their student and
// plan projections
func (r *EnrollmentRepository) GetAllWithRelations(ctx context.Context) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, enrollmentJoinQuery+` ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanJoinedEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ExistsForStudent checks if the student has any enrollment row at all,
// regardless of its date range
func (r *EnrollmentRepository) ExistsForStudent(ctx context.Context, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1)`,
		studentID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}
