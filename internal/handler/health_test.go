package handler_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/rahulrajrrk/finance-tracker/internal/handler"
)

type stubChecker struct {
	err error
}

func (s stubChecker) Health(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		checker    stubChecker
		wantStatus string
	}{
		{"StoreReachable", stubChecker{}, "ok"},
		{"StoreDown", stubChecker{err: errors.New("unavailable")}, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			handler.HealthHandler{Store: tt.checker}.RegisterRoutes(r)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

			assert.Equal(t, 200, rec.Code)
			assert.JSONEq(t, `{"status":"`+tt.wantStatus+`"}`, rec.Body.String())
		})
	}
}
