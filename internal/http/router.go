package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"bizsuite/internal/http/analytics"
	"bizsuite/internal/http/backup"
	"bizsuite/internal/http/customer"
	"bizsuite/internal/http/export"
	"bizsuite/internal/http/importcsv"
	"bizsuite/internal/http/note"
	"bizsuite/internal/http/product"
	"bizsuite/internal/http/supplier"
	"bizsuite/internal/http/transaction"
)

func New(
	products *product.Handler,
	customers *customer.Handler,
	transactions *transaction.Handler,
	suppliers *supplier.Handler,
	notes *note.Handler,
	analyticsH *analytics.Handler,
	exportH *export.Handler,
	backupH *backup.Handler,
	importH *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The browser frontend is served from elsewhere.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Route("/products", products.Routes)
		r.Route("/customers", customers.Routes)
		r.Route("/transactions", transactions.Routes)
		r.Route("/suppliers", suppliers.Routes)
		r.Route("/notes", notes.Routes)

		r.Route("/analytics", analyticsH.Routes)
		r.Get("/dashboard", analyticsH.Dashboard)

		r.Route("/export", exportH.Routes)
		r.Get("/backup", backupH.Backup)
		r.Post("/restore", backupH.Restore)
		r.Route("/import", importH.Routes)

		r.Get("/health", health)
	})

	return router
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
