package entity

import (
	"testing"
	"time"
)

func TestAppointmentEnd(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	a := Appointment{ScheduledAt: start, DurationMinutes: 45}

	want := start.Add(45 * time.Minute)
	if got := a.End(); !got.Equal(want) {
		t.Errorf("End() = %v, want %v", got, want)
	}
}

func TestAppointmentBlocksSlot(t *testing.T) {
	cases := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentStatusScheduled, true},
		{AppointmentStatusConfirmed, true},
		{AppointmentStatusInProgress, false},
		{AppointmentStatusCompleted, false},
		{AppointmentStatusCancelled, false},
		{AppointmentStatusNoShow, false},
	}

	for _, c := range cases {
		a := Appointment{Status: c.status}
		if got := a.BlocksSlot(); got != c.want {
			t.Errorf("BlocksSlot() with status %q = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestAppointmentIsTerminal(t *testing.T) {
	cases := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentStatusScheduled, false},
		{AppointmentStatusConfirmed, false},
		{AppointmentStatusInProgress, false},
		{AppointmentStatusCompleted, true},
		{AppointmentStatusCancelled, true},
		{AppointmentStatusNoShow, true},
	}

	for _, c := range cases {
		a := Appointment{Status: c.status}
		if got := a.IsTerminal(); got != c.want {
			t.Errorf("IsTerminal() with status %q = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{
		AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow,
	} {
		if !ValidAppointmentStatus(s) {
			t.Errorf("ValidAppointmentStatus(%q) = false, want true", s)
		}
	}

	if ValidAppointmentStatus("rescheduled") {
		t.Error(`ValidAppointmentStatus("rescheduled") = true, want false`)
	}
}
