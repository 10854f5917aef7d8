package http

import (
	"net/http"

	"vita-server/internal/delivery/http/handler"
	"vita-server/internal/delivery/http/middleware"
	"vita-server/pkg/response"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	PatientHandler     *handler.PatientHandler
	VitalSignHandler   *handler.VitalSignHandler
	AppointmentHandler *handler.AppointmentHandler
	DashboardHandler   *handler.DashboardHandler
	AuthMiddleware     *middleware.AuthMiddleware
	DoctorMiddleware   *middleware.DoctorMiddleware
	CORSMiddleware     *middleware.CORSMiddleware
}

func NewRouter(cfg *RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(cfg.CORSMiddleware.Handle)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, "OK", nil)
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public auth endpoints
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", cfg.AuthHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", cfg.AuthHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", cfg.AuthHandler.RefreshToken).Methods(http.MethodPost)

	// Authenticated auth endpoints
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(cfg.AuthMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", cfg.AuthHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", cfg.AuthHandler.Me).Methods(http.MethodGet)

	// Patient roster
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(cfg.AuthMiddleware.Authenticate, cfg.DoctorMiddleware.RequireActiveDoctor)
	patients.HandleFunc("", cfg.PatientHandler.List).Methods(http.MethodGet)
	patients.HandleFunc("", cfg.PatientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("/{id:[0-9]+}", cfg.PatientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}", cfg.PatientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id:[0-9]+}", cfg.PatientHandler.Deactivate).Methods(http.MethodDelete)

	// Vital signs. The alerts route is registered before the patient routes so
	// it is never captured by the {patientId} variable.
	vitals := api.PathPrefix("/vitals").Subrouter()
	vitals.Use(cfg.AuthMiddleware.Authenticate, cfg.DoctorMiddleware.RequireActiveDoctor)
	vitals.HandleFunc("/alerts/critical", cfg.VitalSignHandler.CriticalAlerts).Methods(http.MethodGet)
	vitals.HandleFunc("", cfg.VitalSignHandler.Create).Methods(http.MethodPost)
	vitals.HandleFunc("/{patientId:[0-9]+}", cfg.VitalSignHandler.ListByPatient).Methods(http.MethodGet)
	vitals.HandleFunc("/{patientId:[0-9]+}/stats", cfg.VitalSignHandler.Stats).Methods(http.MethodGet)
	vitals.HandleFunc("/{patientId:[0-9]+}/chart", cfg.VitalSignHandler.ChartData).Methods(http.MethodGet)

	// Appointments
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(cfg.AuthMiddleware.Authenticate, cfg.DoctorMiddleware.RequireActiveDoctor)
	appointments.HandleFunc("", cfg.AppointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("", cfg.AppointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("/today", cfg.AppointmentHandler.Today).Methods(http.MethodGet)
	appointments.HandleFunc("/upcoming", cfg.AppointmentHandler.Upcoming).Methods(http.MethodGet)
	appointments.HandleFunc("/{id:[0-9]+}", cfg.AppointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id:[0-9]+}", cfg.AppointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id:[0-9]+}", cfg.AppointmentHandler.Cancel).Methods(http.MethodDelete)

	// Dashboard
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(cfg.AuthMiddleware.Authenticate, cfg.DoctorMiddleware.RequireActiveDoctor)
	dashboard.HandleFunc("/stats", cfg.DashboardHandler.Stats).Methods(http.MethodGet)

	return router
}
