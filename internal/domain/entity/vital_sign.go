package entity

import "time"

// Critical thresholds. A reading is flagged when a recorded value falls
// outside the open interval between its low and high bound; absent fields
// never flag. Diastolic pressure, respiratory rate, weight, height and
// glucose are deliberately not part of the alert rule set.
const (
	CriticalHeartRateLow   = 50
	CriticalHeartRateHigh  = 120
	CriticalSystolicLow    = 90
	CriticalSystolicHigh   = 180
	CriticalTemperatureLow = 35.0
	CriticalTemperatureMax = 39.0
	CriticalOxygenLow      = 90
)

// VitalSign represents a single vital-sign reading for a patient.
// Readings are immutable once created; there is no update path.
type VitalSign struct {
	ID                int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID         int       `gorm:"not null;index" json:"patient_id"`
	RecordedBy        int       `gorm:"not null" json:"recorded_by"`
	RecordedAt        time.Time `gorm:"not null;index" json:"recorded_at"`
	HeartRate         *int      `json:"heart_rate,omitempty"`
	SystolicPressure  *int      `json:"systolic_pressure,omitempty"`
	DiastolicPressure *int      `json:"diastolic_pressure,omitempty"`
	Temperature       *float64  `json:"temperature,omitempty"`
	OxygenSaturation  *int      `json:"oxygen_saturation,omitempty"`
	RespiratoryRate   *int      `json:"respiratory_rate,omitempty"`
	Weight            *float64  `json:"weight,omitempty"`
	Height            *float64  `json:"height,omitempty"`
	GlucoseLevel      *int      `json:"glucose_level,omitempty"`
	Notes             *string   `gorm:"type:text" json:"notes,omitempty"`
}

func (VitalSign) TableName() string {
	return "vital_signs"
}

// IsCritical reports whether any recorded value crosses an alert threshold.
func (v *VitalSign) IsCritical() bool {
	if v.HeartRate != nil && (*v.HeartRate < CriticalHeartRateLow || *v.HeartRate > CriticalHeartRateHigh) {
		return true
	}
	if v.SystolicPressure != nil && (*v.SystolicPressure < CriticalSystolicLow || *v.SystolicPressure > CriticalSystolicHigh) {
		return true
	}
	if v.Temperature != nil && (*v.Temperature < CriticalTemperatureLow || *v.Temperature > CriticalTemperatureMax) {
		return true
	}
	if v.OxygenSaturation != nil && *v.OxygenSaturation < CriticalOxygenLow {
		return true
	}
	return false
}
