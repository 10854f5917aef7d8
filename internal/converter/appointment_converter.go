package converter

import (
	"vita-server/internal/delivery/dto"
	"vita-server/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		ScheduledAt:     appointment.ScheduledAt,
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		AppointmentType: appointment.AppointmentType,
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		Diagnosis:       appointment.Diagnosis,
		Prescription:    appointment.Prescription,
		IsTelemedicine:  appointment.IsTelemedicine,
		MeetingURL:      appointment.MeetingURL,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToDetailResponse attaches the participants to an appointment
func AppointmentToDetailResponse(appointment *entity.Appointment, patient *entity.Patient, doctor *entity.User) *dto.AppointmentDetailResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentDetailResponse{
		AppointmentResponse: *AppointmentToResponse(appointment),
		Patient:             PatientToResponse(patient),
		Doctor:              UserToResponse(doctor),
	}
}
