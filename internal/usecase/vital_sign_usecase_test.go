package usecase

import (
	"testing"
	"time"

	"vita-server/internal/domain/entity"
)

func TestBuildVitalChart(t *testing.T) {
	day1 := time.Date(2026, 2, 5, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 2, 6, 8, 0, 0, 0, time.UTC)

	vitals := []entity.VitalSign{
		{
			RecordedAt:        day1,
			HeartRate:         intPtr(72),
			SystolicPressure:  intPtr(120),
			DiastolicPressure: intPtr(80),
			Temperature:       floatPtr(36.5),
		},
		{
			RecordedAt:       day2,
			SystolicPressure: intPtr(130),
			OxygenSaturation: intPtr(97),
		},
	}

	chart := buildVitalChart(vitals)

	if len(chart.HeartRate) != 1 || chart.HeartRate[0].Value != 72 {
		t.Errorf("HeartRate = %+v, want one point of 72", chart.HeartRate)
	}
	if len(chart.Temperature) != 1 || chart.Temperature[0].Value != 36.5 {
		t.Errorf("Temperature = %+v, want one point of 36.5", chart.Temperature)
	}
	if len(chart.OxygenSaturation) != 1 || chart.OxygenSaturation[0].Value != 97 {
		t.Errorf("OxygenSaturation = %+v, want one point of 97", chart.OxygenSaturation)
	}

	// The second reading has systolic but no diastolic; it is not a complete
	// blood-pressure measurement and must not produce a point.
	if len(chart.BloodPressure) != 1 {
		t.Fatalf("BloodPressure has %d points, want 1", len(chart.BloodPressure))
	}
	if chart.BloodPressure[0].Value != 120 {
		t.Errorf("BloodPressure[0].Value = %v, want 120", chart.BloodPressure[0].Value)
	}
	if chart.BloodPressure[0].Name != "05/02" {
		t.Errorf("BloodPressure[0].Name = %q, want %q", chart.BloodPressure[0].Name, "05/02")
	}
}

func TestBuildVitalChartEmptyInput(t *testing.T) {
	chart := buildVitalChart(nil)

	for name, points := range map[string]int{
		"HeartRate":        len(chart.HeartRate),
		"BloodPressure":    len(chart.BloodPressure),
		"Temperature":      len(chart.Temperature),
		"OxygenSaturation": len(chart.OxygenSaturation),
	} {
		if points != 0 {
			t.Errorf("%s has %d points, want 0", name, points)
		}
	}
}

func TestRoundPtr(t *testing.T) {
	cases := []struct {
		value    float64
		decimals int
		want     float64
	}{
		{72.456, 1, 72.5},
		{72.44, 1, 72.4},
		{36.666666, 2, 36.67},
		{36.7, 2, 36.7},
		{98.25, 1, 98.3},
	}

	for _, c := range cases {
		got := roundPtr(&c.value, c.decimals)
		if got == nil || *got != c.want {
			t.Errorf("roundPtr(%v, %d) = %v, want %v", c.value, c.decimals, got, c.want)
		}
	}

	if roundPtr(nil, 1) != nil {
		t.Error("roundPtr(nil) must return nil")
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
