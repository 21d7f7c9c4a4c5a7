package models

import (
	"time"
)

// Checkin defines an attendance record based on the 'checkins' table.
// Rows are immutable once created.
type Checkin struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"student_id" db:"student_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
