package entity

import "time"

// Patient represents a patient record owned by a single doctor.
// Relations are expressed as foreign-key ids only; related rows are always
// fetched through an explicit repository call.
type Patient struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID         int       `gorm:"not null;index" json:"doctor_id"`
	FullName         string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CPF              string    `gorm:"type:varchar(14);uniqueIndex;not null" json:"cpf"`
	BirthDate        time.Time `gorm:"type:date;not null" json:"birth_date"`
	Gender           string    `gorm:"type:varchar(20);not null" json:"gender"`
	Phone            string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email            *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address          *string   `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact *string   `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	EmergencyPhone   *string   `gorm:"type:varchar(20)" json:"emergency_phone,omitempty"`
	BloodType        *string   `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Allergies        *string   `gorm:"type:text" json:"allergies,omitempty"`
	MedicalNotes     *string   `gorm:"type:text" json:"medical_notes,omitempty"`
	AvatarURL        *string   `gorm:"type:varchar(500)" json:"avatar_url,omitempty"`
	IsActive         bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
