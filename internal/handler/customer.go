package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulrajrrk/finance-tracker/internal/repository"
)

// CustomerHandler serves the customer list to the dashboard.
type CustomerHandler struct {
	Repo repository.CustomerRepository
}

func (h CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/customers", h.list)
}

func (h CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list customers")
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, c := range items {
		resp = append(resp, map[string]any{
			"name":           c.Name,
			"mobile":         c.Mobile,
			"services":       c.Services,
			"onboardingDate": c.OnboardingDate.Format(dateLayout),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
