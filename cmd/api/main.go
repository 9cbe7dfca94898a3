package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"bizsuite/internal/analytics"
	"bizsuite/internal/backup"
	"bizsuite/internal/config"
	"bizsuite/internal/customer"
	"bizsuite/internal/document/store"
	"bizsuite/internal/export"
	bizHttp "bizsuite/internal/http"
	analyticsHandler "bizsuite/internal/http/analytics"
	backupHandler "bizsuite/internal/http/backup"
	customerHandler "bizsuite/internal/http/customer"
	exportHandler "bizsuite/internal/http/export"
	importHandler "bizsuite/internal/http/importcsv"
	noteHandler "bizsuite/internal/http/note"
	productHandler "bizsuite/internal/http/product"
	supplierHandler "bizsuite/internal/http/supplier"
	txHandler "bizsuite/internal/http/transaction"
	"bizsuite/internal/importer"
	"bizsuite/internal/note"
	"bizsuite/internal/product"
	"bizsuite/internal/supplier"
	"bizsuite/internal/transaction"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	documentStore := store.New(cfg.Data.File)

	// Make sure the data file exists before the first request hits.
	if _, err := documentStore.Load(); err != nil {
		slog.Error("failed to initialize data file", "path", cfg.Data.File, "error", err)
		os.Exit(1)
	}

	var (
		productService     = product.NewService(documentStore)
		customerService    = customer.NewService(documentStore)
		transactionService = transaction.NewService(documentStore)
		supplierService    = supplier.NewService(documentStore)
		noteService        = note.NewService(documentStore)
		analyticsService   = analytics.NewService(documentStore)
		exportService      = export.NewService(documentStore)
		backupService      = backup.NewService(documentStore)
	)

	router := bizHttp.New(
		productHandler.NewHandler(productService),
		customerHandler.NewHandler(customerService),
		txHandler.NewHandler(transactionService),
		supplierHandler.NewHandler(supplierService),
		noteHandler.NewHandler(noteService),
		analyticsHandler.NewHandler(analyticsService),
		exportHandler.NewHandler(exportService),
		backupHandler.NewHandler(backupService),
		importHandler.NewHandler(importer.NewParser(), productService),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port, "data_file", cfg.Data.File)

	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
