package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vita-server/internal/delivery/dto"
	"vita-server/internal/delivery/http/middleware"
	"vita-server/internal/domain/entity"
	"vita-server/internal/usecase"
	"vita-server/pkg/response"
	"vita-server/pkg/validator"

	"github.com/gorilla/mux"
)

type VitalSignHandler struct {
	vitalUsecase usecase.VitalSignUsecase
	validator    *validator.CustomValidator
}

func NewVitalSignHandler(vitalUsecase usecase.VitalSignUsecase, validator *validator.CustomValidator) *VitalSignHandler {
	return &VitalSignHandler{
		vitalUsecase: vitalUsecase,
		validator:    validator,
	}
}

func (h *VitalSignHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	patientID, err := strconv.Atoi(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	filter := &entity.VitalSignFilter{
		PatientID: patientID,
		DateFrom:  parseDateParam(r, "date_from"),
		DateTo:    parseEndDateParam(r, "date_to"),
		Limit:     parseIntParam(r, "limit", 0),
	}

	vitals, err := h.vitalUsecase.ListPatientVitals(r.Context(), doctorID, filter)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to list vital signs")
		return
	}

	response.Success(w, http.StatusOK, "Vital signs retrieved successfully", vitals)
}

func (h *VitalSignHandler) Create(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	var req dto.CreateVitalSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vital, err := h.vitalUsecase.CreateVitalSign(r.Context(), doctorID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to record vital sign")
		return
	}

	response.Success(w, http.StatusCreated, "Vital sign recorded successfully", vital)
}

func (h *VitalSignHandler) Stats(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	patientID, err := strconv.Atoi(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	days := parseIntParam(r, "days", 0)
	stats, err := h.vitalUsecase.GetStats(r.Context(), doctorID, patientID, days)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to compute vital statistics")
		return
	}

	response.Success(w, http.StatusOK, "Vital statistics retrieved successfully", stats)
}

func (h *VitalSignHandler) ChartData(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	patientID, err := strconv.Atoi(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	days := parseIntParam(r, "days", 0)
	chart, err := h.vitalUsecase.GetChartData(r.Context(), doctorID, patientID, days)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to build chart data")
		return
	}

	response.Success(w, http.StatusOK, "Chart data retrieved successfully", chart)
}

func (h *VitalSignHandler) CriticalAlerts(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	hours := parseIntParam(r, "hours", 0)
	alerts, err := h.vitalUsecase.GetCriticalAlerts(r.Context(), doctorID, hours)
	if err != nil {
		response.InternalServerError(w, "Failed to list critical alerts")
		return
	}

	response.Success(w, http.StatusOK, "Critical alerts retrieved successfully", alerts)
}
