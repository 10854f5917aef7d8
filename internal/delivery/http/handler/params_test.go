package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"vita-server/config"
)

func TestParsePaginationClampsBounds(t *testing.T) {
	cfg := config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}

	cases := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "/patients", 1, 20},
		{"explicit", "/patients?page=3&page_size=50", 3, 50},
		{"zero page", "/patients?page=0", 1, 20},
		{"oversized page_size", "/patients?page_size=500", 1, 100},
		{"garbage", "/patients?page=abc&page_size=xyz", 1, 20},
	}

	for _, c := range cases {
		r := httptest.NewRequest("GET", c.url, nil)
		page, pageSize := parsePagination(r, cfg)
		if page != c.wantPage || pageSize != c.wantPageSize {
			t.Errorf("%s: parsePagination = (%d, %d), want (%d, %d)",
				c.name, page, pageSize, c.wantPage, c.wantPageSize)
		}
	}
}

func TestParseDateParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/appointments?date_from=2026-01-10", nil)

	got := parseDateParam(r, "date_from")
	if got == nil {
		t.Fatal("parseDateParam returned nil for a valid date")
	}
	want := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDateParam = %v, want %v", got, want)
	}

	if parseDateParam(r, "date_to") != nil {
		t.Error("parseDateParam returned a value for an absent parameter")
	}

	bad := httptest.NewRequest("GET", "/appointments?date_from=10-01-2026", nil)
	if parseDateParam(bad, "date_from") != nil {
		t.Error("parseDateParam returned a value for a malformed date")
	}
}

// A date_to bound must cover the whole named day: a record stamped at 14:00
// on that date still satisfies a <= comparison against the parsed bound.
func TestParseEndDateParamIsEndOfDayInclusive(t *testing.T) {
	r := httptest.NewRequest("GET", "/appointments?date_to=2026-01-10", nil)

	got := parseEndDateParam(r, "date_to")
	if got == nil {
		t.Fatal("parseEndDateParam returned nil for a valid date")
	}

	afternoon := time.Date(2026, 1, 10, 14, 0, 0, 0, time.UTC)
	if afternoon.After(*got) {
		t.Errorf("bound %v excludes %v on the same day", got, afternoon)
	}

	nextDay := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	if !nextDay.After(*got) {
		t.Errorf("bound %v includes the following day", got)
	}

	if parseEndDateParam(r, "date_from") != nil {
		t.Error("parseEndDateParam returned a value for an absent parameter")
	}
}
