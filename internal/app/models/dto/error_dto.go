package dto

// ErrorResponse is the standard error body: {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// ValidationMessage is a single per-field validation failure
type ValidationMessage struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ValidationErrorResponse is the body returned when request validation fails.
// Messages are ordered by schema field declaration.
type ValidationErrorResponse struct {
	Error    string              `json:"error"`
	Messages []ValidationMessage `json:"messages"`
}

// NewValidationErrorResponse creates a validation failure response
func NewValidationErrorResponse(messages []ValidationMessage) ValidationErrorResponse {
	return ValidationErrorResponse{
		Error:    "Validations fails",
		Messages: messages,
	}
}
