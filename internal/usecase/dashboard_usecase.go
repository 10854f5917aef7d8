package usecase

import (
	"context"
	"time"

	"vita-server/internal/delivery/dto"
	"vita-server/internal/domain/entity"
	"vita-server/internal/domain/repository"
	"vita-server/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context, doctorID int) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	vitalRepo       repository.VitalSignRepository
	alertEvaluator  *service.AlertEvaluator
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	vitalRepo repository.VitalSignRepository,
	alertEvaluator *service.AlertEvaluator,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		vitalRepo:       vitalRepo,
		alertEvaluator:  alertEvaluator,
	}
}

// GetStats aggregates the doctor's landing-page counters. Each counter is a
// separate query; the numbers are not a consistent snapshot.
func (u *dashboardUsecase) GetStats(ctx context.Context, doctorID int) (*dto.DashboardStatsResponse, error) {
	db := u.db.WithContext(ctx)
	now := time.Now().UTC()

	totalPatients, err := u.patientRepo.CountByDoctor(db, doctorID, true)
	if err != nil {
		u.log.Warnf("Failed to count patients for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	totalAppointments, err := u.appointmentRepo.CountByDoctor(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to count appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	appointmentsToday, err := u.appointmentRepo.CountBetween(db, doctorID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	// Week runs Monday through Sunday.
	offset := (int(now.Weekday()) + 6) % 7
	weekStart := dayStart.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)
	appointmentsThisWeek, err := u.appointmentRepo.CountBetween(db, doctorID, weekStart, weekEnd)
	if err != nil {
		u.log.Warnf("Failed to count this week's appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	patientsWithAlerts, err := u.countPatientsWithAlerts(ctx, doctorID, now)
	if err != nil {
		return nil, err
	}

	completed, err := u.appointmentRepo.CountByStatus(db, doctorID, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to count completed appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	pending, err := u.appointmentRepo.CountPending(db, doctorID, now)
	if err != nil {
		u.log.Warnf("Failed to count pending appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalPatients:         totalPatients,
		TotalAppointments:     totalAppointments,
		AppointmentsToday:     appointmentsToday,
		AppointmentsThisWeek:  appointmentsThisWeek,
		PatientsWithAlerts:    patientsWithAlerts,
		CompletedAppointments: completed,
		PendingAppointments:   pending,
	}, nil
}

func (u *dashboardUsecase) countPatientsWithAlerts(ctx context.Context, doctorID int, now time.Time) (int, error) {
	patientIDs, err := u.patientRepo.FindIDsByDoctor(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list patient IDs for doctor %d: %+v", doctorID, err)
		return 0, err
	}
	if len(patientIDs) == 0 {
		return 0, nil
	}

	readings, err := u.vitalRepo.FindSince(u.db.WithContext(ctx), patientIDs, now.Add(-24*time.Hour))
	if err != nil {
		u.log.Warnf("Failed to load recent vitals for doctor %d: %+v", doctorID, err)
		return 0, err
	}

	return u.alertEvaluator.CountPatientsWithAlerts(readings), nil
}
