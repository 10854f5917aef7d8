package service

import (
	"testing"
	"time"

	"vita-server/internal/domain/entity"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestIsCriticalThresholds(t *testing.T) {
	tests := []struct {
		name    string
		reading entity.VitalSign
		want    bool
	}{
		{"heart rate just below low", entity.VitalSign{HeartRate: intPtr(49)}, true},
		{"heart rate at low bound", entity.VitalSign{HeartRate: intPtr(50)}, false},
		{"heart rate at high bound", entity.VitalSign{HeartRate: intPtr(120)}, false},
		{"heart rate just above high", entity.VitalSign{HeartRate: intPtr(121)}, true},
		{"systolic low", entity.VitalSign{SystolicPressure: intPtr(89)}, true},
		{"systolic normal", entity.VitalSign{SystolicPressure: intPtr(90)}, false},
		{"systolic high", entity.VitalSign{SystolicPressure: intPtr(181)}, true},
		{"temperature low", entity.VitalSign{Temperature: floatPtr(34.9)}, true},
		{"temperature normal", entity.VitalSign{Temperature: floatPtr(36.8)}, false},
		{"temperature high", entity.VitalSign{Temperature: floatPtr(39.1)}, true},
		{"oxygen low", entity.VitalSign{OxygenSaturation: intPtr(89)}, true},
		{"oxygen at bound", entity.VitalSign{OxygenSaturation: intPtr(90)}, false},
		{"empty reading", entity.VitalSign{}, false},
		{
			"critical heart rate with normal oxygen",
			entity.VitalSign{HeartRate: intPtr(45), OxygenSaturation: intPtr(96)},
			true,
		},
		{
			"diastolic not in rule set",
			entity.VitalSign{HeartRate: intPtr(70), DiastolicPressure: intPtr(200)},
			false,
		},
		{
			"glucose respiratory weight height not in rule set",
			entity.VitalSign{
				GlucoseLevel:    intPtr(700),
				RespiratoryRate: intPtr(55),
				Weight:          floatPtr(400),
				Height:          floatPtr(35),
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reading.IsCritical(); got != tt.want {
				t.Errorf("IsCritical() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterCriticalKeepsOrderAndCaps(t *testing.T) {
	evaluator := NewAlertEvaluator()

	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	readings := make([]entity.VitalSign, 0, 60)
	for i := 0; i < 60; i++ {
		readings = append(readings, entity.VitalSign{
			ID:         i + 1,
			PatientID:  i%5 + 1,
			RecordedAt: base.Add(-time.Duration(i) * time.Minute),
			HeartRate:  intPtr(130),
		})
	}
	// A normal reading mixed in should be dropped, not counted toward the cap.
	readings[10].HeartRate = intPtr(80)

	critical := evaluator.FilterCritical(readings, 0)
	if len(critical) != MaxCriticalAlerts {
		t.Fatalf("len(critical) = %d, want %d", len(critical), MaxCriticalAlerts)
	}
	if critical[0].ID != 1 {
		t.Errorf("first alert id = %d, want newest reading first", critical[0].ID)
	}
	for _, v := range critical {
		if v.ID == 11 {
			t.Error("non-critical reading survived the filter")
		}
	}

	// Identical input yields an identical result set.
	again := evaluator.FilterCritical(readings, 0)
	if len(again) != len(critical) {
		t.Fatalf("second pass len = %d, want %d", len(again), len(critical))
	}
	for i := range again {
		if again[i].ID != critical[i].ID {
			t.Fatalf("second pass diverged at index %d", i)
		}
	}
}

func TestCountPatientsWithAlerts(t *testing.T) {
	evaluator := NewAlertEvaluator()

	readings := []entity.VitalSign{
		{PatientID: 1, HeartRate: intPtr(40)},
		{PatientID: 1, OxygenSaturation: intPtr(85)},
		{PatientID: 2, HeartRate: intPtr(70)},
		{PatientID: 3, Temperature: floatPtr(40.2)},
		{PatientID: 4},
	}

	if got := evaluator.CountPatientsWithAlerts(readings); got != 2 {
		t.Errorf("CountPatientsWithAlerts() = %d, want 2", got)
	}

	if got := evaluator.CountPatientsWithAlerts(nil); got != 0 {
		t.Errorf("CountPatientsWithAlerts(nil) = %d, want 0", got)
	}
}
