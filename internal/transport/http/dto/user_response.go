package dto

import (
	"time"

	usersvc "userservice/internal/application/user"
	"userservice/internal/domain"
)

// UserResponse is the public view of a user. The password hash never
// appears here.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

func NewAuthResponse(res usersvc.LoginResult) AuthResponse {
	return AuthResponse{
		AccessToken: res.Token.AccessToken,
		TokenType:   res.Token.TokenType,
		ExpiresIn:   res.Token.ExpiresIn,
		User:        NewUserResponse(res.User),
	}
}

// ListUsersResponse is a page of users plus pagination metadata.
type ListUsersResponse struct {
	Users   []UserResponse `json:"users"`
	Total   int            `json:"total"`
	Skip    int            `json:"skip"`
	Limit   int            `json:"limit"`
	HasMore bool           `json:"has_more"`
}

func NewListUsersResponse(res usersvc.ListResult, skip, limit int) ListUsersResponse {
	users := make([]UserResponse, 0, len(res.Users))
	for _, u := range res.Users {
		users = append(users, NewUserResponse(u))
	}
	return ListUsersResponse{
		Users:   users,
		Total:   res.Total,
		Skip:    skip,
		Limit:   limit,
		HasMore: res.HasMore,
	}
}

// DeleteResponse reports the outcome of DELETE /users/{id}.
type DeleteResponse struct {
	ID   string `json:"id"`
	Hard bool   `json:"hard"`
}

// TokenValidationResponse is returned by GET /auth/validate.
type TokenValidationResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
