package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       int       `json:"patient_id" validate:"required,min=1"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,gte=15,lte=240"`
	AppointmentType string    `json:"appointment_type" validate:"omitempty,max=50"`
	Reason          *string   `json:"reason"`
	IsTelemedicine  bool      `json:"is_telemedicine"`
}

type UpdateAppointmentRequest struct {
	ScheduledAt     *time.Time `json:"scheduled_at"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gte=15,lte=240"`
	Status          *string    `json:"status" validate:"omitempty,oneof=scheduled confirmed in_progress completed cancelled no_show"`
	Reason          *string    `json:"reason"`
	Notes           *string    `json:"notes"`
	Diagnosis       *string    `json:"diagnosis"`
	Prescription    *string    `json:"prescription"`
	IsTelemedicine  *bool      `json:"is_telemedicine"`
	MeetingURL      *string    `json:"meeting_url" validate:"omitempty,max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int       `json:"id"`
	DoctorID        int       `json:"doctor_id"`
	PatientID       int       `json:"patient_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	AppointmentType string    `json:"appointment_type"`
	Reason          *string   `json:"reason,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	Diagnosis       *string   `json:"diagnosis,omitempty"`
	Prescription    *string   `json:"prescription,omitempty"`
	IsTelemedicine  bool      `json:"is_telemedicine"`
	MeetingURL      *string   `json:"meeting_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}

// AppointmentDetailResponse includes the participants for agenda views.
type AppointmentDetailResponse struct {
	AppointmentResponse
	Patient *PatientResponse `json:"patient,omitempty"`
	Doctor  *UserResponse    `json:"doctor,omitempty"`
}
