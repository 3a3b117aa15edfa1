package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahulrajrrk/finance-tracker/internal/catalog"
)

// ServicesHandler exposes the static service master.
type ServicesHandler struct {
	Catalog catalog.Provider
}

func (h ServicesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/services", h.list)
}

func (h ServicesHandler) list(w http.ResponseWriter, r *http.Request) {
	items := h.Catalog.List()
	resp := make([]map[string]any, 0, len(items))
	for _, svc := range items {
		entry := map[string]any{
			"name": svc.Name,
			"type": string(svc.Type),
		}
		if svc.Type == catalog.TypeUnit {
			entry["sellingRate"] = svc.SellingRate.String()
			entry["baseCost"] = svc.BaseCost.String()
		}
		resp = append(resp, entry)
	}
	writeJSON(w, http.StatusOK, resp)
}
