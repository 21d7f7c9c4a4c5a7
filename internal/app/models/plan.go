package models

import (
	"time"
)

// Plan defines a subscription template based on the 'plans' table.
// Duration is in months; Price is the monthly price.
type Plan struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Duration  int       `json:"duration" db:"duration"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
