package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantErrMsg string
		wantStart  string
		wantEnd    string
	}{
		{name: "BothAbsent", url: "/api/transactions"},
		{
			name:      "BothPresent",
			url:       "/api/transactions?startDate=2024-03-01&endDate=2024-03-31",
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-31",
		},
		{
			name:      "StartOnly",
			url:       "/api/transactions?startDate=2024-03-01",
			wantStart: "2024-03-01",
		},
		{
			name:       "BadStart",
			url:        "/api/transactions?startDate=yesterday",
			wantErrMsg: "invalid startDate",
		},
		{
			name:       "BadEnd",
			url:        "/api/transactions?endDate=2024-3-1",
			wantErrMsg: "invalid endDate",
		},
		{
			name:       "Inverted",
			url:        "/api/transactions?startDate=2024-04-01&endDate=2024-03-01",
			wantErrMsg: "startDate must be before endDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			start, end, errMsg := dateRange(r)

			assert.Equal(t, tt.wantErrMsg, errMsg)
			if tt.wantStart == "" {
				assert.Nil(t, start)
			} else {
				require.NotNil(t, start)
				assert.Equal(t, tt.wantStart, start.Format(dateLayout))
			}
			if tt.wantEnd == "" {
				assert.Nil(t, end)
			} else {
				require.NotNil(t, end)
				assert.Equal(t, tt.wantEnd, end.Format(dateLayout))
			}
		})
	}
}
