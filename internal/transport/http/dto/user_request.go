package dto

// RegisterRequest is the payload for POST /auth/register and POST /users.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the payload for PUT /users/{id}. Both fields are
// optional; supplying neither is rejected by the service layer.
type UpdateUserRequest struct {
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=128"`
}
