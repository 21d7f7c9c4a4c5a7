package dto

import (
	"time"
)

// EnrollmentStoreRequest is the body for POST /enrollments/:id (student id in
// the path). End date and price are derived server-side.
type EnrollmentStoreRequest struct {
	PlanID    int64     `json:"plan_id" validate:"required,gt=0"`
	StartDate time.Time `json:"start_date" validate:"required"`
}

// EnrollmentUpdateRequest is the body for PUT /enrollments/:id
type EnrollmentUpdateRequest struct {
	StudentID int64     `json:"student_id" validate:"required,gt=0"`
	PlanID    int64     `json:"plan_id" validate:"required,gt=0"`
	StartDate time.Time `json:"start_date" validate:"required"`
}

// StudentSummary is the student projection joined into enrollment reads
type StudentSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PlanSummary is the plan projection joined into enrollment reads
type PlanSummary struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

// EnrollmentResponse is the joined projection returned by enrollment index/show
type EnrollmentResponse struct {
	ID        int64          `json:"id"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Price     float64        `json:"price"`
	Student   StudentSummary `json:"student"`
	Plan      PlanSummary    `json:"plan"`
}
