package converter

import (
	"vita-server/internal/delivery/dto"
	"vita-server/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CRM:       user.CRM,
		Specialty: user.Specialty,
		Role:      user.Role,
		IsActive:  user.IsActive,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
