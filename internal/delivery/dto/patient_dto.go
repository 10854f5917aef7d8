package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FullName         string  `json:"full_name" validate:"required,min=3,max=255"`
	CPF              string  `json:"cpf" validate:"required,len=14"`
	BirthDate        string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Gender           string  `json:"gender" validate:"required,max=20"`
	Phone            string  `json:"phone" validate:"required,max=20"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact" validate:"omitempty,max=255"`
	EmergencyPhone   *string `json:"emergency_phone" validate:"omitempty,max=20"`
	BloodType        *string `json:"blood_type" validate:"omitempty,max=5"`
	Allergies        *string `json:"allergies"`
	MedicalNotes     *string `json:"medical_notes"`
}

type UpdatePatientRequest struct {
	FullName         *string `json:"full_name" validate:"omitempty,min=3,max=255"`
	Phone            *string `json:"phone" validate:"omitempty,max=20"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact" validate:"omitempty,max=255"`
	EmergencyPhone   *string `json:"emergency_phone" validate:"omitempty,max=20"`
	Allergies        *string `json:"allergies"`
	MedicalNotes     *string `json:"medical_notes"`
	AvatarURL        *string `json:"avatar_url" validate:"omitempty,max=500"`
}

// Response DTOs

type PatientResponse struct {
	ID               int       `json:"id"`
	DoctorID         int       `json:"doctor_id"`
	FullName         string    `json:"full_name"`
	CPF              string    `json:"cpf"`
	BirthDate        string    `json:"birth_date"`
	Gender           string    `json:"gender"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email,omitempty"`
	Address          *string   `json:"address,omitempty"`
	EmergencyContact *string   `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string   `json:"emergency_phone,omitempty"`
	BloodType        *string   `json:"blood_type,omitempty"`
	Allergies        *string   `json:"allergies,omitempty"`
	MedicalNotes     *string   `json:"medical_notes,omitempty"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}

// PatientDetailResponse enriches a patient with the latest reading and the
// next scheduled visits.
type PatientDetailResponse struct {
	PatientResponse
	LatestVitals         *VitalSignResponse    `json:"latest_vitals,omitempty"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
}
