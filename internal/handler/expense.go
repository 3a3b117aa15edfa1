package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulrajrrk/finance-tracker/internal/repository"
)

// ExpenseHandler serves expense entries, optionally filtered by an inclusive
// date range.
type ExpenseHandler struct {
	Repo repository.ExpenseRepository
}

func (h ExpenseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/expenses", h.list)
}

func (h ExpenseHandler) list(w http.ResponseWriter, r *http.Request) {
	start, end, errMsg := dateRange(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	items, err := h.Repo.ListInRange(r.Context(), start, end, 1000)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, e := range items {
		resp = append(resp, map[string]any{
			"date":        e.Date.Format(dateLayout),
			"expenseType": e.ExpenseType,
			"amount":      e.Amount.StringFixed(2),
			"paymentMode": e.PaymentMode,
			"period":      e.Period,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
