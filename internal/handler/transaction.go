package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulrajrrk/finance-tracker/internal/repository"
)

// TransactionHandler serves income transactions, optionally filtered by an
// inclusive date range.
type TransactionHandler struct {
	Repo repository.TransactionRepository
}

func (h TransactionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/transactions", h.list)
}

func (h TransactionHandler) list(w http.ResponseWriter, r *http.Request) {
	start, end, errMsg := dateRange(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	items, err := h.Repo.ListInRange(r.Context(), start, end, 1000)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, t := range items {
		resp = append(resp, map[string]any{
			"date":        t.Date.Format(dateLayout),
			"customer":    t.Customer,
			"amount":      t.Amount.StringFixed(2),
			"paymentMode": t.PaymentMode,
			"channel":     t.Channel.String(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
