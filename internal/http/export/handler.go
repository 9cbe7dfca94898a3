package export

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bizsuite/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/csv/{type}", h.csv)
}

func (h *Handler) csv(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.svc.CSV(export.Kind(chi.URLParam(r, "type")))
	if err != nil {
		if errors.Is(err, export.ErrUnknownKind) {
			http.Error(w, "invalid export type", http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
