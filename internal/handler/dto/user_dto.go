package dto

import (
	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/usecase"
)

type CreateUserRequestDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (d *CreateUserRequestDTO) ToInput() usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Username: d.Username,
		Email:    d.Email,
		Password: d.Password,
		Role:     d.Role,
	}
}

type UpdateRoleRequestDTO struct {
	Role string `json:"role"`
}

type UserResponseDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

func NewUserResponse(user *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:       user.ID(),
		Username: user.Username().String(),
		Email:    user.Email().String(),
		Role:     user.Role().String(),
		Active:   user.IsActive(),
	}
}

func NewUserListResponse(users []*domain.User) []UserResponseDTO {
	responses := make([]UserResponseDTO, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}
