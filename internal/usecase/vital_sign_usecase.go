package usecase

import (
	"context"
	"math"
	"time"

	"vita-server/internal/converter"
	"vita-server/internal/delivery/dto"
	"vita-server/internal/domain/entity"
	"vita-server/internal/domain/repository"
	"vita-server/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultVitalsLimit = 100
	maxVitalsLimit     = 500

	defaultStatsDays = 30
	maxStatsDays     = 365

	defaultAlertHours = 24
	maxAlertHours     = 168
)

type VitalSignUsecase interface {
	ListPatientVitals(ctx context.Context, doctorID int, filter *entity.VitalSignFilter) (*dto.VitalSignListResponse, error)
	CreateVitalSign(ctx context.Context, doctorID int, req *dto.CreateVitalSignRequest) (*dto.VitalSignResponse, error)
	GetStats(ctx context.Context, doctorID, patientID, days int) (*dto.VitalStatsResponse, error)
	GetChartData(ctx context.Context, doctorID, patientID, days int) (*dto.VitalChartResponse, error)
	GetCriticalAlerts(ctx context.Context, doctorID, hours int) (*dto.VitalSignListResponse, error)
}

type vitalSignUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	vitalRepo      repository.VitalSignRepository
	patientRepo    repository.PatientRepository
	alertEvaluator *service.AlertEvaluator
}

func NewVitalSignUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vitalRepo repository.VitalSignRepository,
	patientRepo repository.PatientRepository,
	alertEvaluator *service.AlertEvaluator,
) VitalSignUsecase {
	return &vitalSignUsecase{
		db:             db,
		log:            log,
		vitalRepo:      vitalRepo,
		patientRepo:    patientRepo,
		alertEvaluator: alertEvaluator,
	}
}

func (u *vitalSignUsecase) ListPatientVitals(ctx context.Context, doctorID int, filter *entity.VitalSignFilter) (*dto.VitalSignListResponse, error) {
	if err := u.requireOwnedPatient(ctx, doctorID, filter.PatientID); err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultVitalsLimit
	}
	if filter.Limit > maxVitalsLimit {
		filter.Limit = maxVitalsLimit
	}

	vitals, err := u.vitalRepo.FindByPatient(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list vitals for patient %d: %+v", filter.PatientID, err)
		return nil, err
	}

	total, err := u.vitalRepo.CountByPatient(u.db.WithContext(ctx), filter.PatientID)
	if err != nil {
		u.log.Warnf("Failed to count vitals for patient %d: %+v", filter.PatientID, err)
		return nil, err
	}

	return &dto.VitalSignListResponse{
		Vitals: converter.VitalSignsToResponses(vitals),
		Total:  total,
	}, nil
}

func (u *vitalSignUsecase) CreateVitalSign(ctx context.Context, doctorID int, req *dto.CreateVitalSignRequest) (*dto.VitalSignResponse, error) {
	if err := u.requireOwnedPatient(ctx, doctorID, req.PatientID); err != nil {
		return nil, err
	}

	vital := &entity.VitalSign{
		PatientID:         req.PatientID,
		RecordedBy:        doctorID,
		RecordedAt:        time.Now().UTC(),
		HeartRate:         req.HeartRate,
		SystolicPressure:  req.SystolicPressure,
		DiastolicPressure: req.DiastolicPressure,
		Temperature:       req.Temperature,
		OxygenSaturation:  req.OxygenSaturation,
		RespiratoryRate:   req.RespiratoryRate,
		Weight:            req.Weight,
		Height:            req.Height,
		GlucoseLevel:      req.GlucoseLevel,
		Notes:             req.Notes,
	}

	if err := u.vitalRepo.Create(u.db.WithContext(ctx), vital); err != nil {
		u.log.Warnf("Failed to create vital sign: %+v", err)
		return nil, err
	}

	if vital.IsCritical() {
		u.log.Warnf("Critical vital sign recorded: id=%d, patient=%d", vital.ID, vital.PatientID)
	}

	return converter.VitalSignToResponse(vital), nil
}

func (u *vitalSignUsecase) GetStats(ctx context.Context, doctorID, patientID, days int) (*dto.VitalStatsResponse, error) {
	if err := u.requireOwnedPatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}

	if days <= 0 {
		days = defaultStatsDays
	}
	if days > maxStatsDays {
		days = maxStatsDays
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	stats, err := u.vitalRepo.Stats(u.db.WithContext(ctx), patientID, since)
	if err != nil {
		u.log.Warnf("Failed to compute vital stats for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.VitalStatsResponse{
		AvgHeartRate:   roundPtr(stats.AvgHeartRate, 1),
		AvgSystolic:    roundPtr(stats.AvgSystolic, 1),
		AvgDiastolic:   roundPtr(stats.AvgDiastolic, 1),
		AvgTemperature: roundPtr(stats.AvgTemperature, 2),
		AvgOxygen:      roundPtr(stats.AvgOxygen, 1),
		MinHeartRate:   stats.MinHeartRate,
		MaxHeartRate:   stats.MaxHeartRate,
		TotalRecords:   stats.TotalRecords,
	}, nil
}

func (u *vitalSignUsecase) GetChartData(ctx context.Context, doctorID, patientID, days int) (*dto.VitalChartResponse, error) {
	if err := u.requireOwnedPatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}

	if days <= 0 {
		days = defaultStatsDays
	}
	if days > maxStatsDays {
		days = maxStatsDays
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	vitals, err := u.vitalRepo.FindRange(u.db.WithContext(ctx), patientID, since)
	if err != nil {
		u.log.Warnf("Failed to load vitals range for patient %d: %+v", patientID, err)
		return nil, err
	}

	return buildVitalChart(vitals), nil
}

// buildVitalChart turns an ascending series of readings into per-field chart
// points with dd/mm labels. A blood-pressure point needs both components: a
// systolic value without its diastolic counterpart is an incomplete
// measurement and is skipped.
func buildVitalChart(vitals []entity.VitalSign) *dto.VitalChartResponse {
	chart := &dto.VitalChartResponse{
		HeartRate:        make([]dto.ChartDataPoint, 0),
		BloodPressure:    make([]dto.ChartDataPoint, 0),
		Temperature:      make([]dto.ChartDataPoint, 0),
		OxygenSaturation: make([]dto.ChartDataPoint, 0),
	}

	for i := range vitals {
		label := vitals[i].RecordedAt.Format("02/01")
		if vitals[i].HeartRate != nil {
			chart.HeartRate = append(chart.HeartRate, dto.ChartDataPoint{Name: label, Value: float64(*vitals[i].HeartRate)})
		}
		if vitals[i].SystolicPressure != nil && vitals[i].DiastolicPressure != nil {
			chart.BloodPressure = append(chart.BloodPressure, dto.ChartDataPoint{Name: label, Value: float64(*vitals[i].SystolicPressure)})
		}
		if vitals[i].Temperature != nil {
			chart.Temperature = append(chart.Temperature, dto.ChartDataPoint{Name: label, Value: *vitals[i].Temperature})
		}
		if vitals[i].OxygenSaturation != nil {
			chart.OxygenSaturation = append(chart.OxygenSaturation, dto.ChartDataPoint{Name: label, Value: float64(*vitals[i].OxygenSaturation)})
		}
	}

	return chart
}

func (u *vitalSignUsecase) GetCriticalAlerts(ctx context.Context, doctorID, hours int) (*dto.VitalSignListResponse, error) {
	if hours <= 0 {
		hours = defaultAlertHours
	}
	if hours > maxAlertHours {
		hours = maxAlertHours
	}

	patientIDs, err := u.patientRepo.FindIDsByDoctor(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list patient IDs for doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if len(patientIDs) == 0 {
		return &dto.VitalSignListResponse{Vitals: []dto.VitalSignResponse{}, Total: 0}, nil
	}

	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	readings, err := u.vitalRepo.FindSince(u.db.WithContext(ctx), patientIDs, since)
	if err != nil {
		u.log.Warnf("Failed to load recent vitals for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	critical := u.alertEvaluator.FilterCritical(readings, service.MaxCriticalAlerts)

	return &dto.VitalSignListResponse{
		Vitals: converter.VitalSignsToResponses(critical),
		Total:  int64(len(critical)),
	}, nil
}

func (u *vitalSignUsecase) requireOwnedPatient(ctx context.Context, doctorID, patientID int) error {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), doctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	return nil
}

func roundPtr(v *float64, decimals int) *float64 {
	if v == nil {
		return nil
	}
	factor := math.Pow(10, float64(decimals))
	rounded := math.Round(*v*factor) / factor
	return &rounded
}
