package dto

import "time"

// Request DTOs

type CreateVitalSignRequest struct {
	PatientID         int      `json:"patient_id" validate:"required,min=1"`
	HeartRate         *int     `json:"heart_rate" validate:"omitempty,gte=30,lte=250"`
	SystolicPressure  *int     `json:"systolic_pressure" validate:"omitempty,gte=60,lte=300"`
	DiastolicPressure *int     `json:"diastolic_pressure" validate:"omitempty,gte=30,lte=200"`
	Temperature       *float64 `json:"temperature" validate:"omitempty,gte=30,lte=45"`
	OxygenSaturation  *int     `json:"oxygen_saturation" validate:"omitempty,gte=50,lte=100"`
	RespiratoryRate   *int     `json:"respiratory_rate" validate:"omitempty,gte=5,lte=60"`
	Weight            *float64 `json:"weight" validate:"omitempty,gte=0.5,lte=500"`
	Height            *float64 `json:"height" validate:"omitempty,gte=30,lte=300"`
	GlucoseLevel      *int     `json:"glucose_level" validate:"omitempty,gte=20,lte=800"`
	Notes             *string  `json:"notes"`
}

// Response DTOs

type VitalSignResponse struct {
	ID                int       `json:"id"`
	PatientID         int       `json:"patient_id"`
	RecordedBy        int       `json:"recorded_by"`
	RecordedAt        time.Time `json:"recorded_at"`
	HeartRate         *int      `json:"heart_rate,omitempty"`
	SystolicPressure  *int      `json:"systolic_pressure,omitempty"`
	DiastolicPressure *int      `json:"diastolic_pressure,omitempty"`
	Temperature       *float64  `json:"temperature,omitempty"`
	OxygenSaturation  *int      `json:"oxygen_saturation,omitempty"`
	RespiratoryRate   *int      `json:"respiratory_rate,omitempty"`
	Weight            *float64  `json:"weight,omitempty"`
	Height            *float64  `json:"height,omitempty"`
	GlucoseLevel      *int      `json:"glucose_level,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
}

type VitalSignListResponse struct {
	Vitals []VitalSignResponse `json:"vitals"`
	Total  int64               `json:"total"`
}

type VitalStatsResponse struct {
	AvgHeartRate   *float64 `json:"avg_heart_rate,omitempty"`
	AvgSystolic    *float64 `json:"avg_systolic,omitempty"`
	AvgDiastolic   *float64 `json:"avg_diastolic,omitempty"`
	AvgTemperature *float64 `json:"avg_temperature,omitempty"`
	AvgOxygen      *float64 `json:"avg_oxygen,omitempty"`
	MinHeartRate   *int     `json:"min_heart_rate,omitempty"`
	MaxHeartRate   *int     `json:"max_heart_rate,omitempty"`
	TotalRecords   int64    `json:"total_records"`
}

type ChartDataPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type VitalChartResponse struct {
	HeartRate        []ChartDataPoint `json:"heart_rate"`
	BloodPressure    []ChartDataPoint `json:"blood_pressure"`
	Temperature      []ChartDataPoint `json:"temperature"`
	OxygenSaturation []ChartDataPoint `json:"oxygen_saturation"`
}
