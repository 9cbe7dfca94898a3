package analytics

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bizsuite/internal/analytics"
)

type Handler struct {
	svc *analytics.Service
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/sales", h.sales)
	r.Get("/balance", h.balance)
	r.Get("/customers", h.customers)
}

func (h *Handler) sales(w http.ResponseWriter, r *http.Request) {
	days := analytics.DefaultWindowDays

	if s := r.URL.Query().Get("days"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			days = n
		}
	}

	writeJSON(w, h.svc.Sales(days))
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Balance())
}

func (h *Handler) customers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Customers())
}

// Dashboard serves the combined dashboard read; wired outside the
// /analytics subtree.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Dashboard())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
