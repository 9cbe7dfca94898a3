package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"bizsuite/internal/backup"
)

// maxUploadBytes bounds restore uploads; the whole document of a small
// business fits in a fraction of this.
const maxUploadBytes = 16 << 20

type Handler struct {
	svc *backup.Service
}

func NewHandler(svc *backup.Service) *Handler {
	return &Handler{svc: svc}
}

// Backup streams the current document as a timestamped JSON download.
func (h *Handler) Backup(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.svc.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}

// Restore replaces the stored document with an uploaded .json backup.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "no file provided", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".json") {
		http.Error(w, "invalid file format, please upload a JSON file", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "reading upload failed", http.StatusBadRequest)
		return
	}

	if err := h.svc.Restore(data); err != nil {
		http.Error(w, "invalid JSON file", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Data restored successfully"}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
