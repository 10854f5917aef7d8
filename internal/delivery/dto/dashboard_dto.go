package dto

type DashboardStatsResponse struct {
	TotalPatients         int64 `json:"total_patients"`
	TotalAppointments     int64 `json:"total_appointments"`
	AppointmentsToday     int64 `json:"appointments_today"`
	AppointmentsThisWeek  int64 `json:"appointments_this_week"`
	PatientsWithAlerts    int   `json:"patients_with_alerts"`
	CompletedAppointments int64 `json:"completed_appointments"`
	PendingAppointments   int64 `json:"pending_appointments"`
}
