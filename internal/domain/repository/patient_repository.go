package repository

import (
	"vita-server/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, doctorID, patientID int) (*entity.Patient, error)
	FindByCPF(db *gorm.DB, cpf string) (*entity.Patient, error)
	FindPage(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error)
	FindIDsByDoctor(db *gorm.DB, doctorID int) ([]int, error)
	CountByDoctor(db *gorm.DB, doctorID int, activeOnly bool) (int64, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Deactivate(db *gorm.DB, doctorID, patientID int) (int64, error)
}
