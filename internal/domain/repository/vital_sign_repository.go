package repository

import (
	"time"

	"vita-server/internal/domain/entity"

	"gorm.io/gorm"
)

// VitalStats holds aggregate values computed by the database over a
// patient's readings in a trailing window.
type VitalStats struct {
	AvgHeartRate   *float64
	AvgSystolic    *float64
	AvgDiastolic   *float64
	AvgTemperature *float64
	AvgOxygen      *float64
	MinHeartRate   *int
	MaxHeartRate   *int
	TotalRecords   int64
}

type VitalSignRepository interface {
	Create(db *gorm.DB, vital *entity.VitalSign) error
	FindByPatient(db *gorm.DB, filter *entity.VitalSignFilter) ([]entity.VitalSign, error)
	CountByPatient(db *gorm.DB, patientID int) (int64, error)
	FindLatestByPatient(db *gorm.DB, patientID int) (*entity.VitalSign, error)
	// FindSince returns readings for the given patients recorded at or after
	// the threshold, newest first. Feeds the alert evaluator.
	FindSince(db *gorm.DB, patientIDs []int, since time.Time) ([]entity.VitalSign, error)
	FindRange(db *gorm.DB, patientID int, since time.Time) ([]entity.VitalSign, error)
	Stats(db *gorm.DB, patientID int, since time.Time) (*VitalStats, error)
}
