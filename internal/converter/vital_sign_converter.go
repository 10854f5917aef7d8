package converter

import (
	"vita-server/internal/delivery/dto"
	"vita-server/internal/domain/entity"
)

// VitalSignToResponse converts a VitalSign entity to VitalSignResponse DTO
func VitalSignToResponse(vital *entity.VitalSign) *dto.VitalSignResponse {
	if vital == nil {
		return nil
	}
	return &dto.VitalSignResponse{
		ID:                vital.ID,
		PatientID:         vital.PatientID,
		RecordedBy:        vital.RecordedBy,
		RecordedAt:        vital.RecordedAt,
		HeartRate:         vital.HeartRate,
		SystolicPressure:  vital.SystolicPressure,
		DiastolicPressure: vital.DiastolicPressure,
		Temperature:       vital.Temperature,
		OxygenSaturation:  vital.OxygenSaturation,
		RespiratoryRate:   vital.RespiratoryRate,
		Weight:            vital.Weight,
		Height:            vital.Height,
		GlucoseLevel:      vital.GlucoseLevel,
		Notes:             vital.Notes,
	}
}

// VitalSignsToResponses converts a slice of VitalSign entities to response DTOs
func VitalSignsToResponses(vitals []entity.VitalSign) []dto.VitalSignResponse {
	responses := make([]dto.VitalSignResponse, len(vitals))
	for i := range vitals {
		responses[i] = *VitalSignToResponse(&vitals[i])
	}
	return responses
}
