package identity

import (
	"time"

	"github.com/orderdesk/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CreateUserRequest represents a request to create a new user
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email,max=200"`
	LastName  string `json:"last_name" binding:"max=100"`
	FirstName string `json:"first_name" binding:"max=100"`
	Role      string `json:"role" binding:"omitempty,oneof=admin user"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url,max=500"`
}

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin user"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url,max=500"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// UserListFilter represents filter options for user list
type UserListFilter struct {
	Search   string `form:"search"`
	Role     string `form:"role" binding:"omitempty,oneof=admin user"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Version:   u.Version,
	}
}

// ToUserResponses converts a slice of domain Users to UserResponses
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = ToUserResponse(&u)
	}
	return responses
}
