package dto

import "github.com/spec-kit/timesheet-service/internal/domain"

// CreateUserRequest payload for new accounts.
type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}

// UserResponse is the public projection of a stored account. The password
// hash is never serialized.
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	DisplayName string `json:"displayName"`
}

// UserResponseFrom projects a domain user.
func UserResponseFrom(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		Status:      string(user.Status),
		DisplayName: user.DisplayName,
	}
}

// UserListResponseFrom projects a slice of users.
func UserListResponseFrom(users []domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, UserResponseFrom(&users[i]))
	}
	return result
}
