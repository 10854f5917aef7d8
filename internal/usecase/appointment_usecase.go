package usecase

import (
	"context"
	"errors"
	"time"

	"vita-server/internal/converter"
	"vita-server/internal/delivery/dto"
	"vita-server/internal/domain/entity"
	"vita-server/internal/domain/repository"
	"vita-server/internal/service"
	"vita-server/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotUnavailable     = errors.New("an appointment is already scheduled in this time slot")
	ErrAppointmentClosed   = errors.New("appointment is in a terminal status and cannot be modified")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

const defaultDurationMinutes = 30

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, doctorID int, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, *response.Meta, error)
	ListTodayAppointments(ctx context.Context, doctorID int) ([]dto.AppointmentDetailResponse, error)
	ListUpcomingAppointments(ctx context.Context, doctorID, limit int) ([]dto.AppointmentDetailResponse, error)
	GetAppointment(ctx context.Context, doctorID, appointmentID int) (*dto.AppointmentDetailResponse, error)
	CreateAppointment(ctx context.Context, doctorID int, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, doctorID, appointmentID int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, doctorID, appointmentID int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	userRepo        repository.UserRepository
	conflictChecker *service.ConflictChecker
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	conflictChecker *service.ConflictChecker,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		userRepo:        userRepo,
		conflictChecker: conflictChecker,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, doctorID int, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, *response.Meta, error) {
	filter.DoctorID = doctorID

	appointments, total, err := u.appointmentRepo.FindPage(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %d: %+v", doctorID, err)
		return nil, nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, response.NewMeta(filter.Page, filter.PageSize, total), nil
}

func (u *appointmentUsecase) ListTodayAppointments(ctx context.Context, doctorID int) ([]dto.AppointmentDetailResponse, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	appointments, err := u.appointmentRepo.FindBetween(u.db.WithContext(ctx), doctorID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to list today's appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return u.attachParticipants(ctx, doctorID, appointments)
}

func (u *appointmentUsecase) ListUpcomingAppointments(ctx context.Context, doctorID, limit int) ([]dto.AppointmentDetailResponse, error) {
	appointments, err := u.appointmentRepo.FindUpcomingByDoctor(u.db.WithContext(ctx), doctorID, time.Now().UTC(), limit)
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return u.attachParticipants(ctx, doctorID, appointments)
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, doctorID, appointmentID int) (*dto.AppointmentDetailResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), doctorID, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	details, err := u.attachParticipants(ctx, doctorID, []entity.Appointment{*appointment})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, doctorID int, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), doctorID, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}

	// Point-in-time check: not atomic with the insert below. Concurrent
	// requests can both pass and both persist.
	blocking, err := u.appointmentRepo.FindBlocking(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load blocking appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if conflict := u.conflictChecker.FindConflict(blocking, req.ScheduledAt, duration, 0); conflict != nil {
		return nil, ErrSlotUnavailable
	}

	appointmentType := req.AppointmentType
	if appointmentType == "" {
		appointmentType = "consultation"
	}

	appointment := &entity.Appointment{
		DoctorID:        doctorID,
		PatientID:       req.PatientID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: duration,
		Status:          entity.AppointmentStatusScheduled,
		AppointmentType: appointmentType,
		Reason:          req.Reason,
		IsTelemedicine:  req.IsTelemedicine,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, doctor=%d, patient=%d, at=%s",
		appointment.ID, doctorID, req.PatientID, req.ScheduledAt.Format(time.RFC3339))
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, doctorID, appointmentID int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), doctorID, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsTerminal() {
		return nil, ErrAppointmentClosed
	}

	scheduledAt := appointment.ScheduledAt
	duration := appointment.DurationMinutes
	rescheduled := false

	if req.ScheduledAt != nil && !req.ScheduledAt.Equal(appointment.ScheduledAt) {
		scheduledAt = *req.ScheduledAt
		rescheduled = true
	}
	if req.DurationMinutes != nil && *req.DurationMinutes != appointment.DurationMinutes {
		duration = *req.DurationMinutes
		rescheduled = true
	}

	if rescheduled {
		blocking, err := u.appointmentRepo.FindBlocking(u.db.WithContext(ctx), doctorID)
		if err != nil {
			u.log.Warnf("Failed to load blocking appointments for doctor %d: %+v", doctorID, err)
			return nil, err
		}
		if conflict := u.conflictChecker.FindConflict(blocking, scheduledAt, duration, appointmentID); conflict != nil {
			return nil, ErrSlotUnavailable
		}
	}

	appointment.ScheduledAt = scheduledAt
	appointment.DurationMinutes = duration

	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		if !entity.ValidAppointmentStatus(status) {
			return nil, ErrInvalidStatus
		}
		appointment.Status = status
	}
	if req.Reason != nil {
		appointment.Reason = req.Reason
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}
	if req.Diagnosis != nil {
		appointment.Diagnosis = req.Diagnosis
	}
	if req.Prescription != nil {
		appointment.Prescription = req.Prescription
	}
	if req.IsTelemedicine != nil {
		appointment.IsTelemedicine = *req.IsTelemedicine
	}
	if req.MeetingURL != nil {
		appointment.MeetingURL = req.MeetingURL
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, doctorID, appointmentID int) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), doctorID, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.IsTerminal() {
		return ErrAppointmentClosed
	}

	appointment.Status = entity.AppointmentStatusCancelled
	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", appointmentID, err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%d, doctor=%d", appointmentID, doctorID)
	return nil
}

// attachParticipants builds detail responses. The doctor row is loaded once;
// patients are fetched per appointment through the scoped lookup.
func (u *appointmentUsecase) attachParticipants(ctx context.Context, doctorID int, appointments []entity.Appointment) ([]dto.AppointmentDetailResponse, error) {
	doctor, err := u.userRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}

	details := make([]dto.AppointmentDetailResponse, 0, len(appointments))
	for i := range appointments {
		patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), doctorID, appointments[i].PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient %d: %+v", appointments[i].PatientID, err)
			return nil, err
		}
		details = append(details, *converter.AppointmentToDetailResponse(&appointments[i], patient, doctor))
	}

	return details, nil
}
