package service

import (
	"time"

	"vita-server/internal/domain/entity"
)

// ConflictWindow is the effective length attributed to every existing
// appointment when testing a candidate slot. The stored duration of the
// existing row is intentionally not consulted; this mirrors the behavior
// the API has always had, and changing it would shift which slots get
// rejected. TODO: decide whether to use the stored duration instead.
const ConflictWindow = 30 * time.Minute

// ConflictChecker decides whether a candidate appointment slot collides
// with a doctor's existing scheduled or confirmed appointments. It is
// stateless; callers fetch the candidate set and invoke it synchronously.
// There is no isolation against concurrent writers: two requests can both
// pass the check and both insert.
type ConflictChecker struct{}

func NewConflictChecker() *ConflictChecker {
	return &ConflictChecker{}
}

// FindConflict returns the first existing appointment whose window overlaps
// the candidate interval [start, start+duration), or nil when the slot is
// free. excludeID skips the appointment being rescheduled; pass 0 on create.
// Appointments that do not block their slot are ignored regardless of time.
func (c *ConflictChecker) FindConflict(existing []entity.Appointment, start time.Time, durationMinutes int, excludeID int) *entity.Appointment {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	for i := range existing {
		a := &existing[i]
		if a.ID == excludeID {
			continue
		}
		if !a.BlocksSlot() {
			continue
		}
		// Overlap test: a.scheduled_at < candidate_end AND
		// a.scheduled_at + 30min > candidate_start.
		if a.ScheduledAt.Before(end) && a.ScheduledAt.Add(ConflictWindow).After(start) {
			return a
		}
	}

	return nil
}
