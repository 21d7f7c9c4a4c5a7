package dto

// HelpOrderStoreRequest is the body for POST /students/:student_id/help-orders
type HelpOrderStoreRequest struct {
	Question string `json:"question" validate:"required"`
}

// AnswerStoreRequest is the body for POST /help-orders/:id/answer
type AnswerStoreRequest struct {
	Answer string `json:"answer" validate:"required"`
}
