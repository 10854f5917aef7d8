package converter

import (
	"vita-server/internal/delivery/dto"
	"vita-server/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:               patient.ID,
		DoctorID:         patient.DoctorID,
		FullName:         patient.FullName,
		CPF:              patient.CPF,
		BirthDate:        patient.BirthDate.Format("2006-01-02"),
		Gender:           patient.Gender,
		Phone:            patient.Phone,
		Email:            patient.Email,
		Address:          patient.Address,
		EmergencyContact: patient.EmergencyContact,
		EmergencyPhone:   patient.EmergencyPhone,
		BloodType:        patient.BloodType,
		Allergies:        patient.Allergies,
		MedicalNotes:     patient.MedicalNotes,
		AvatarURL:        patient.AvatarURL,
		IsActive:         patient.IsActive,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
