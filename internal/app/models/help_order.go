package models

import (
	"time"
)

// HelpOrder defines a student question based on the 'help_orders' table.
// Answer and AnswerAt are null until staff answers; the transition happens
// exactly once.
type HelpOrder struct {
	ID        int64      `json:"id" db:"id"`
	StudentID int64      `json:"student_id" db:"student_id"`
	Question  string     `json:"question" db:"question"`
	Answer    *string    `json:"answer" db:"answer"`
	AnswerAt  *time.Time `json:"answer_at" db:"answer_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`

	// Relation (populated when needed)
	Student *Student `json:"student,omitempty"`
}
