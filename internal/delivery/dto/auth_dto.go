package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FullName  string `json:"full_name" validate:"required,min=3,max=255"`
	CRM       string `json:"crm" validate:"omitempty,max=20"`
	Specialty string `json:"specialty" validate:"omitempty,max=100"`
	Role      string `json:"role" validate:"omitempty,oneof=admin doctor nurse"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CRM       *string   `json:"crm,omitempty"`
	Specialty *string   `json:"specialty,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfileResponse is the /auth/me payload: the account plus roster counts.
type UserProfileResponse struct {
	UserResponse
	PatientCount     int64 `json:"patient_count"`
	AppointmentCount int64 `json:"appointment_count"`
}
