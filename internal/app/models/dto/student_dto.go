package dto

// StudentStoreRequest is the body for POST /students
type StudentStoreRequest struct {
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Age    int     `json:"age" validate:"required,gt=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
}

// StudentUpdateRequest is the body for PUT /students/:student_id. The path id is
// authoritative; any id in the body is overwritten.
type StudentUpdateRequest struct {
	ID     int64   `json:"id" validate:"required,gt=0"`
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Age    int     `json:"age" validate:"required,gt=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
}
