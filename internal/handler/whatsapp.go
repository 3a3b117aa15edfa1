package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulrajrrk/finance-tracker/internal/repository"
)

// WhatsAppHandler serves derived WhatsApp subscriptions for the WhatsApp
// Master page, ordered by next due date.
type WhatsAppHandler struct {
	Repo repository.WhatsAppRepository
}

func (h WhatsAppHandler) RegisterRoutes(r chi.Router) {
	r.Get("/whatsapp", h.list)
}

func (h WhatsAppHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list whatsapp subscriptions")
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, s := range items {
		resp = append(resp, map[string]any{
			"customerName":   s.CustomerName,
			"mobile":         s.Mobile,
			"plan":           s.Plan,
			"status":         string(s.Status),
			"onboardingDate": s.OnboardingDate.Format(dateLayout),
			"nextDueDate":    s.NextDueDate.Format(dateLayout),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
