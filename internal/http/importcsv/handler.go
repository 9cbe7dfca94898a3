package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bizsuite/internal/document"
	"bizsuite/internal/importer"
	"bizsuite/internal/product"
)

const maxUploadBytes = 16 << 20

type Handler struct {
	parser     *importer.Parser
	productSvc *product.Service
}

func NewHandler(parser *importer.Parser, productSvc *product.Service) *Handler {
	return &Handler{parser: parser, productSvc: productSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/csv/products", h.importProducts)
}

type importResponse struct {
	Imported int                `json:"imported"`
	Products []document.Product `json:"products"`
}

func (h *Handler) importProducts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "no file provided", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	parsed, err := h.parser.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.productSvc.CreateBatch(parsed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if stored == nil {
		stored = []document.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{Imported: len(stored), Products: stored}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
