package repository

import (
	"errors"
	"time"

	"vita-server/internal/domain/entity"
	domainRepo "vita-server/internal/domain/repository"

	"gorm.io/gorm"
)

type vitalSignRepository struct{}

func NewVitalSignRepository() domainRepo.VitalSignRepository {
	return &vitalSignRepository{}
}

func (r *vitalSignRepository) Create(db *gorm.DB, vital *entity.VitalSign) error {
	return db.Create(vital).Error
}

func (r *vitalSignRepository) FindByPatient(db *gorm.DB, filter *entity.VitalSignFilter) ([]entity.VitalSign, error) {
	query := db.Where("patient_id = ?", filter.PatientID)

	if filter.DateFrom != nil {
		query = query.Where("recorded_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("recorded_at <= ?", *filter.DateTo)
	}

	var vitals []entity.VitalSign
	err := query.Order("recorded_at DESC").Limit(filter.Limit).Find(&vitals).Error
	if err != nil {
		return nil, err
	}
	return vitals, nil
}

func (r *vitalSignRepository) CountByPatient(db *gorm.DB, patientID int) (int64, error) {
	var count int64
	err := db.Model(&entity.VitalSign{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count, err
}

func (r *vitalSignRepository) FindLatestByPatient(db *gorm.DB, patientID int) (*entity.VitalSign, error) {
	var vital entity.VitalSign
	err := db.Where("patient_id = ?", patientID).Order("recorded_at DESC").First(&vital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vital, nil
}

func (r *vitalSignRepository) FindSince(db *gorm.DB, patientIDs []int, since time.Time) ([]entity.VitalSign, error) {
	if len(patientIDs) == 0 {
		return nil, nil
	}
	var vitals []entity.VitalSign
	err := db.Where("patient_id IN ? AND recorded_at >= ?", patientIDs, since).
		Order("recorded_at DESC").
		Find(&vitals).Error
	if err != nil {
		return nil, err
	}
	return vitals, nil
}

func (r *vitalSignRepository) FindRange(db *gorm.DB, patientID int, since time.Time) ([]entity.VitalSign, error) {
	var vitals []entity.VitalSign
	err := db.Where("patient_id = ? AND recorded_at >= ?", patientID, since).
		Order("recorded_at").
		Find(&vitals).Error
	if err != nil {
		return nil, err
	}
	return vitals, nil
}

func (r *vitalSignRepository) Stats(db *gorm.DB, patientID int, since time.Time) (*domainRepo.VitalStats, error) {
	var stats domainRepo.VitalStats
	err := db.Model(&entity.VitalSign{}).
		Select(`
			AVG(heart_rate) as avg_heart_rate,
			AVG(systolic_pressure) as avg_systolic,
			AVG(diastolic_pressure) as avg_diastolic,
			AVG(temperature) as avg_temperature,
			AVG(oxygen_saturation) as avg_oxygen,
			MIN(heart_rate) as min_heart_rate,
			MAX(heart_rate) as max_heart_rate,
			COUNT(id) as total_records
		`).
		Where("patient_id = ? AND recorded_at >= ?", patientID, since).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
