package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vita-server/config"
	"vita-server/internal/delivery/http/middleware"
	"vita-server/pkg/validator"
)

func TestAppointmentListRejectsUnknownStatusFilter(t *testing.T) {
	h := NewAppointmentHandler(nil, validator.NewValidator(),
		config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=rescheduled", nil)
	r = r.WithContext(context.WithValue(r.Context(), middleware.UserIDKey, 1))
	w := httptest.NewRecorder()

	h.List(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status filter %q: got %d, want %d", "rescheduled", w.Code, http.StatusBadRequest)
	}
}
