package repository

import (
	"errors"

	"vita-server/internal/domain/entity"
	domainRepo "vita-server/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

// FindByID is ownership-scoped: a patient belonging to another doctor is
// indistinguishable from a missing one. Inactive patients remain readable
// by their owning doctor.
func (r *patientRepository) FindByID(db *gorm.DB, doctorID, patientID int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ? AND doctor_id = ?", patientID, doctorID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByCPF(db *gorm.DB, cpf string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("cpf = ?", cpf).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindPage(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error) {
	query := db.Model(&entity.Patient{}).Where("doctor_id = ?", filter.DoctorID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("full_name ILIKE ? OR cpf ILIKE ?", pattern, pattern)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []entity.Patient
	offset := (filter.Page - 1) * filter.PageSize
	err := query.Order("full_name").Offset(offset).Limit(filter.PageSize).Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

func (r *patientRepository) FindIDsByDoctor(db *gorm.DB, doctorID int) ([]int, error) {
	var ids []int
	err := db.Model(&entity.Patient{}).Where("doctor_id = ?", doctorID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *patientRepository) CountByDoctor(db *gorm.DB, doctorID int, activeOnly bool) (int64, error) {
	query := db.Model(&entity.Patient{}).Where("doctor_id = ?", doctorID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

// Deactivate soft-deletes a patient. Associated vitals and appointments are
// left untouched. Returns affected rows: 0 means not found or not owned.
func (r *patientRepository) Deactivate(db *gorm.DB, doctorID, patientID int) (int64, error) {
	result := db.Model(&entity.Patient{}).
		Where("id = ? AND doctor_id = ?", patientID, doctorID).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
