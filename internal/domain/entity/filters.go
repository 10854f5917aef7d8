package entity

import "time"

// PatientFilter is a domain-level filter for paginated patient queries.
// Used by the repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	DoctorID int
	Search   string // Case-insensitive substring match on full_name or cpf
	IsActive *bool
	Page     int
	PageSize int
}

// AppointmentFilter is a domain-level filter for paginated appointment queries.
type AppointmentFilter struct {
	DoctorID  int
	Status    AppointmentStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	PatientID int
	Page      int
	PageSize  int
}

// VitalSignFilter bounds a vital-sign listing for a single patient.
type VitalSignFilter struct {
	PatientID int
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
}
