package dto

// SessionStoreRequest is the body for POST /sessions
type SessionStoreRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse carries the authenticated user profile and the signed token
type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
