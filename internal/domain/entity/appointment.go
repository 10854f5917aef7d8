package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no_show"
)

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment represents a scheduled consultation between a doctor and a patient
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        int               `gorm:"not null;index" json:"doctor_id"`
	PatientID       int               `gorm:"not null;index" json:"patient_id"`
	ScheduledAt     time.Time         `gorm:"not null;index" json:"scheduled_at"`
	DurationMinutes int               `gorm:"not null;default:30" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	AppointmentType string            `gorm:"type:varchar(50);not null;default:'consultation'" json:"appointment_type"`
	Reason          *string           `gorm:"type:text" json:"reason,omitempty"`
	Notes           *string           `gorm:"type:text" json:"notes,omitempty"`
	Diagnosis       *string           `gorm:"type:text" json:"diagnosis,omitempty"`
	Prescription    *string           `gorm:"type:text" json:"prescription,omitempty"`
	IsTelemedicine  bool              `gorm:"not null;default:false" json:"is_telemedicine"`
	MeetingURL      *string           `gorm:"type:varchar(500)" json:"meeting_url,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// End returns the end of the appointment interval [ScheduledAt, End).
func (a *Appointment) End() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// BlocksSlot reports whether the appointment occupies its time slot for
// conflict purposes. Only scheduled and confirmed appointments block.
func (a *Appointment) BlocksSlot() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusConfirmed
}

// IsTerminal reports whether the appointment reached a final state.
// Terminal appointments cannot be modified.
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}
