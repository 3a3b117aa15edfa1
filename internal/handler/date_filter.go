package handler

import (
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// dateRange validates the optional startDate/endDate pair shared by the
// list, stats and export endpoints.
func dateRange(r *http.Request) (start, end *time.Time, errMsg string) {
	start, err := parseDateQuery(r, "startDate")
	if err != nil {
		return nil, nil, "invalid startDate"
	}
	end, err = parseDateQuery(r, "endDate")
	if err != nil {
		return nil, nil, "invalid endDate"
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, "startDate must be before endDate"
	}
	return start, end, ""
}
