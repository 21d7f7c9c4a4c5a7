package dto

import (
	"time"
)

// CheckinResponse is the projection returned by the check-in index
type CheckinResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
