package entity

import "time"

// UserRole constants
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleNurse  = "nurse"
)

// User represents a staff account (doctors, nurses, admins)
type User struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CRM            *string   `gorm:"type:varchar(20);uniqueIndex" json:"crm,omitempty"`
	Specialty      *string   `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Role           string    `gorm:"type:varchar(20);not null;default:'doctor'" json:"role"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"is_active"`
	AvatarURL      *string   `gorm:"type:varchar(500)" json:"avatar_url,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// CanManagePatients reports whether the account may access doctor-facing
// resources. Nurses record vitals through their own tooling but do not own
// patient rosters.
func (u *User) CanManagePatients() bool {
	return u.Role == RoleDoctor || u.Role == RoleAdmin
}
