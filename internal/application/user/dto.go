package user

import (
	"time"

	"github.com/shelterhq/pawhaven/internal/domain/user"
)

// CreateUserRequest represents a new admin account
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	RealName string  `json:"realName" binding:"required,min=1,max=100"`
	Role     string  `json:"role" binding:"omitempty,oneof=admin staff volunteer"`
	Avatar   *string `json:"avatar,omitempty" binding:"omitempty,max=500"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}

// UpdateUserRequest represents an update to an admin account.
// A supplied password is re-hashed before storage.
type UpdateUserRequest struct {
	Password *string `json:"password,omitempty" binding:"omitempty,min=6,max=72"`
	RealName *string `json:"realName,omitempty" binding:"omitempty,min=1,max=100"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=admin staff volunteer"`
	Avatar   *string `json:"avatar,omitempty" binding:"omitempty,max=500"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Status   *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive locked"`
}

// ResetPasswordRequest carries the replacement password
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// ListUsersQuery carries the list filters parsed from the query string
type ListUsersQuery struct {
	Search string
	Role   string
	Page   int
	Limit  int
}

// UserResponse represents an admin account in API responses.
// The password hash is never exposed.
type UserResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	RealName   string    `json:"realName"`
	Role       string    `json:"role"`
	Avatar     *string   `json:"avatar,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Status     string    `json:"status"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
}

// UserStatsResponse represents the admin account statistics
type UserStatsResponse struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Inactive  int64 `json:"inactive"`
	Locked    int64 `json:"locked"`
	Admin     int64 `json:"admin"`
	Staff     int64 `json:"staff"`
	Volunteer int64 `json:"volunteer"`
}

// ToUserResponse builds the public projection of an account
func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID(),
		Username:   u.Username(),
		RealName:   u.RealName(),
		Role:       u.Role().String(),
		Avatar:     u.Avatar(),
		Phone:      u.Phone(),
		Email:      u.Email(),
		Status:     u.Status().String(),
		CreateTime: u.CreatedAt(),
		UpdateTime: u.UpdatedAt(),
	}
}

func toUserResponses(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
