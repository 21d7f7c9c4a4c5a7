package models

import (
	"time"
)

// Enrollment defines a student's subscription to a plan based on the
// 'enrollments' table. EndDate and Price are derived at write time from the
// submitted start date and the referenced plan.
type Enrollment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"student_id" db:"student_id"`
	PlanID    int64     `json:"plan_id" db:"plan_id"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Plan    *Plan    `json:"plan,omitempty"`
}
