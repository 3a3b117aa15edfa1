package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
	"github.com/rahulrajrrk/finance-tracker/internal/service"
)

// StatsHandler serves income/expense/profit totals for the dashboard.
type StatsHandler struct {
	Stats service.StatsService
}

func (h StatsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/stats/summary", h.summary)
}

func (h StatsHandler) summary(w http.ResponseWriter, r *http.Request) {
	start, end, errMsg := dateRange(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}
	if start == nil || end == nil {
		writeError(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	income, err := h.Stats.Sum(r.Context(), domain.StatIncome, *start, *end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}
	expense, err := h.Stats.Sum(r.Context(), domain.StatExpense, *start, *end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"startDate": start.Format(dateLayout),
		"endDate":   end.Format(dateLayout),
		"income":    income.StringFixed(2),
		"expense":   expense.StringFixed(2),
		"profit":    income.Sub(expense).StringFixed(2),
	})
}
