package handler

import (
	"net/http"
	"strconv"
	"time"

	"vita-server/config"
)

// parsePagination reads page and page_size query parameters, clamping them to
// the configured bounds.
func parsePagination(r *http.Request, cfg config.PaginationConfig) (page, pageSize int) {
	page = parseIntParam(r, "page", 1)
	if page < 1 {
		page = 1
	}

	pageSize = parseIntParam(r, "page_size", cfg.DefaultPageSize)
	if pageSize < 1 {
		pageSize = cfg.DefaultPageSize
	}
	if pageSize > cfg.MaxPageSize {
		pageSize = cfg.MaxPageSize
	}
	return page, pageSize
}

func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func parseBoolParam(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func parseDateParam(r *http.Request, name string) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &value
}

// parseEndDateParam reads a YYYY-MM-DD parameter as an inclusive upper bound:
// the returned instant is the last nanosecond of that day, so records stamped
// anywhere on the named date pass a <= comparison.
func parseEndDateParam(r *http.Request, name string) *time.Time {
	day := parseDateParam(r, name)
	if day == nil {
		return nil
	}
	end := day.Add(24*time.Hour - time.Nanosecond)
	return &end
}
