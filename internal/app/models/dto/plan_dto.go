package dto

// PlanStoreRequest is the body for POST /plans
type PlanStoreRequest struct {
	Title    string  `json:"title" validate:"required"`
	Duration int     `json:"duration" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// PlanUpdateRequest is the body for PUT /plans; the target plan id travels in
// the body, not the path.
type PlanUpdateRequest struct {
	ID       int64   `json:"id" validate:"required,gt=0"`
	Title    string  `json:"title" validate:"required"`
	Duration int     `json:"duration" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}
