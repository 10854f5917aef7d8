package service

import "vita-server/internal/domain/entity"

// MaxCriticalAlerts caps the alert listing.
const MaxCriticalAlerts = 50

// AlertEvaluator classifies vital-sign readings against the critical
// thresholds. Purely read-time: nothing is ever written back, so repeating
// an evaluation over an unchanged dataset yields identical results.
type AlertEvaluator struct{}

func NewAlertEvaluator() *AlertEvaluator {
	return &AlertEvaluator{}
}

// FilterCritical returns the critical readings among the input, preserving
// order, capped at max entries (MaxCriticalAlerts when max <= 0). Callers
// pass readings newest first so the cap keeps the most recent alerts.
func (e *AlertEvaluator) FilterCritical(readings []entity.VitalSign, max int) []entity.VitalSign {
	if max <= 0 {
		max = MaxCriticalAlerts
	}

	critical := make([]entity.VitalSign, 0)
	for i := range readings {
		if readings[i].IsCritical() {
			critical = append(critical, readings[i])
			if len(critical) == max {
				break
			}
		}
	}
	return critical
}

// CountPatientsWithAlerts returns the number of distinct patients with at
// least one critical reading in the input.
func (e *AlertEvaluator) CountPatientsWithAlerts(readings []entity.VitalSign) int {
	seen := make(map[int]struct{})
	for i := range readings {
		if readings[i].IsCritical() {
			seen[readings[i].PatientID] = struct{}{}
		}
	}
	return len(seen)
}
