package repository

import (
	"time"

	"vita-server/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, doctorID, appointmentID int) (*entity.Appointment, error)
	FindPage(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	// FindBlocking returns the doctor's scheduled and confirmed appointments,
	// the only ones that participate in conflict detection.
	FindBlocking(db *gorm.DB, doctorID int) ([]entity.Appointment, error)
	FindBetween(db *gorm.DB, doctorID int, from, to time.Time) ([]entity.Appointment, error)
	FindUpcomingByDoctor(db *gorm.DB, doctorID int, after time.Time, limit int) ([]entity.Appointment, error)
	FindUpcomingByPatient(db *gorm.DB, patientID int, after time.Time, limit int) ([]entity.Appointment, error)
	CountByDoctor(db *gorm.DB, doctorID int) (int64, error)
	CountBetween(db *gorm.DB, doctorID int, from, to time.Time) (int64, error)
	CountByStatus(db *gorm.DB, doctorID int, status entity.AppointmentStatus) (int64, error)
	CountPending(db *gorm.DB, doctorID int, after time.Time) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
