package usecase

import (
	"context"
	"errors"
	"time"

	"vita-server/internal/converter"
	"vita-server/internal/delivery/dto"
	"vita-server/internal/domain/entity"
	"vita-server/internal/domain/repository"
	"vita-server/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrCPFAlreadyExists = errors.New("CPF already registered")
)

const upcomingAppointmentsLimit = 5

type PatientUsecase interface {
	ListPatients(ctx context.Context, doctorID int, filter *entity.PatientFilter) (*dto.PatientListResponse, *response.Meta, error)
	GetPatient(ctx context.Context, doctorID, patientID int) (*dto.PatientDetailResponse, error)
	CreatePatient(ctx context.Context, doctorID int, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, doctorID, patientID int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeactivatePatient(ctx context.Context, doctorID, patientID int) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	vitalRepo       repository.VitalSignRepository
	appointmentRepo repository.AppointmentRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	vitalRepo repository.VitalSignRepository,
	appointmentRepo repository.AppointmentRepository,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		vitalRepo:       vitalRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, doctorID int, filter *entity.PatientFilter) (*dto.PatientListResponse, *response.Meta, error) {
	filter.DoctorID = doctorID

	patients, total, err := u.patientRepo.FindPage(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list patients for doctor %d: %+v", doctorID, err)
		return nil, nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
	}, response.NewMeta(filter.Page, filter.PageSize, total), nil
}

// GetPatient returns the patient with the latest reading and the next
// scheduled visits. Inactive patients are still returned to their owning
// doctor when requested by ID.
func (u *patientUsecase) GetPatient(ctx context.Context, doctorID, patientID int) (*dto.PatientDetailResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), doctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	latest, err := u.vitalRepo.FindLatestByPatient(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find latest vitals for patient %d: %+v", patientID, err)
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcomingByPatient(u.db.WithContext(ctx), patientID, time.Now().UTC(), upcomingAppointmentsLimit)
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.PatientDetailResponse{
		PatientResponse:      *converter.PatientToResponse(patient),
		LatestVitals:         converter.VitalSignToResponse(latest),
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming),
	}, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, doctorID int, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// Pre-check for a friendly error; the unique index still backstops races.
	existing, err := u.patientRepo.FindByCPF(u.db.WithContext(ctx), req.CPF)
	if err != nil {
		u.log.Warnf("Failed to check CPF: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrCPFAlreadyExists
	}

	patient := &entity.Patient{
		DoctorID:         doctorID,
		FullName:         req.FullName,
		CPF:              req.CPF,
		BirthDate:        birthDate,
		Gender:           req.Gender,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		BloodType:        req.BloodType,
		Allergies:        req.Allergies,
		MedicalNotes:     req.MedicalNotes,
		IsActive:         true,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, doctorID, patientID int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), doctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.FullName != nil {
		patient.FullName = *req.FullName
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = req.Email
	}
	if req.Address != nil {
		patient.Address = req.Address
	}
	if req.EmergencyContact != nil {
		patient.EmergencyContact = req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		patient.EmergencyPhone = req.EmergencyPhone
	}
	if req.Allergies != nil {
		patient.Allergies = req.Allergies
	}
	if req.MedicalNotes != nil {
		patient.MedicalNotes = req.MedicalNotes
	}
	if req.AvatarURL != nil {
		patient.AvatarURL = req.AvatarURL
	}

	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", patientID, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeactivatePatient soft-deletes a patient. Vitals and appointments are
// preserved.
func (u *patientUsecase) DeactivatePatient(ctx context.Context, doctorID, patientID int) error {
	affected, err := u.patientRepo.Deactivate(u.db.WithContext(ctx), doctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to deactivate patient %d: %+v", patientID, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}
