package service

import (
	"testing"
	"time"

	"vita-server/internal/domain/entity"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return ts
}

func TestFindConflictOverlappingSlot(t *testing.T) {
	checker := NewConflictChecker()

	existing := []entity.Appointment{
		{
			ID:              1,
			DoctorID:        7,
			ScheduledAt:     mustTime(t, "2024-01-10T09:00:00Z"),
			DurationMinutes: 30,
			Status:          entity.AppointmentStatusConfirmed,
		},
	}

	// 09:15 for 30min: 09:00 < 09:45 and 09:30 > 09:15 -> conflict.
	conflict := checker.FindConflict(existing, mustTime(t, "2024-01-10T09:15:00Z"), 30, 0)
	if conflict == nil {
		t.Fatal("expected conflict for overlapping slot, got none")
	}
	if conflict.ID != 1 {
		t.Errorf("conflicting appointment id = %d, want 1", conflict.ID)
	}

	// 10:00 is past the 30-minute window -> accepted.
	if got := checker.FindConflict(existing, mustTime(t, "2024-01-10T10:00:00Z"), 30, 0); got != nil {
		t.Errorf("expected no conflict at 10:00, got appointment %d", got.ID)
	}
}

func TestFindConflictUsesFixedWindowNotStoredDuration(t *testing.T) {
	checker := NewConflictChecker()

	// Existing appointment runs two hours by its stored duration, but the
	// checker attributes only 30 minutes to it.
	existing := []entity.Appointment{
		{
			ID:              2,
			ScheduledAt:     mustTime(t, "2024-01-10T09:00:00Z"),
			DurationMinutes: 120,
			Status:          entity.AppointmentStatusScheduled,
		},
	}

	// 09:45 is inside the stored 2h interval but outside the fixed window.
	if got := checker.FindConflict(existing, mustTime(t, "2024-01-10T09:45:00Z"), 30, 0); got != nil {
		t.Errorf("expected fixed 30-minute window to clear 09:45, got conflict with %d", got.ID)
	}

	// 09:29 is inside the fixed window.
	if got := checker.FindConflict(existing, mustTime(t, "2024-01-10T09:29:00Z"), 30, 0); got == nil {
		t.Error("expected conflict at 09:29 inside the fixed window")
	}
}

func TestFindConflictBoundaries(t *testing.T) {
	checker := NewConflictChecker()

	existing := []entity.Appointment{
		{
			ID:              3,
			ScheduledAt:     mustTime(t, "2024-01-10T09:00:00Z"),
			DurationMinutes: 30,
			Status:          entity.AppointmentStatusScheduled,
		},
	}

	// Candidate ending exactly at the existing start does not conflict:
	// intervals are half-open.
	if got := checker.FindConflict(existing, mustTime(t, "2024-01-10T08:30:00Z"), 30, 0); got != nil {
		t.Errorf("back-to-back slot before existing should be free, got conflict with %d", got.ID)
	}

	// Candidate starting exactly when the window closes does not conflict.
	if got := checker.FindConflict(existing, mustTime(t, "2024-01-10T09:30:00Z"), 30, 0); got != nil {
		t.Errorf("slot starting at window close should be free, got conflict with %d", got.ID)
	}
}

func TestFindConflictIgnoresNonBlockingStatuses(t *testing.T) {
	checker := NewConflictChecker()
	start := mustTime(t, "2024-01-10T09:00:00Z")

	for _, status := range []entity.AppointmentStatus{
		entity.AppointmentStatusInProgress,
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
		entity.AppointmentStatusNoShow,
	} {
		existing := []entity.Appointment{
			{ID: 4, ScheduledAt: start, DurationMinutes: 30, Status: status},
		}
		if got := checker.FindConflict(existing, start, 30, 0); got != nil {
			t.Errorf("status %s should not block the slot", status)
		}
	}
}

func TestFindConflictExcludesAppointmentBeingMoved(t *testing.T) {
	checker := NewConflictChecker()
	start := mustTime(t, "2024-01-10T09:00:00Z")

	existing := []entity.Appointment{
		{ID: 5, ScheduledAt: start, DurationMinutes: 30, Status: entity.AppointmentStatusScheduled},
	}

	// Rescheduling appointment 5 onto its own slot must not self-conflict.
	if got := checker.FindConflict(existing, start, 30, 5); got != nil {
		t.Error("appointment must not conflict with itself on update")
	}

	// But another appointment still does.
	if got := checker.FindConflict(existing, start, 30, 99); got == nil {
		t.Error("expected conflict when exclusion does not match")
	}
}
