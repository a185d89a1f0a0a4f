package router

import (
	"net/http"

	"credcheck/internal/handlers"
	"credcheck/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Document verification (public)
	r.Post("/verify", handlers.VerifyDocument)

	r.Get("/logs", handlers.RecentLogs)
	r.Get("/registry-count", handlers.RegistryCount)
	r.Get("/export-logs.csv", handlers.ExportLogsCSV)
	r.Get("/records/{certificateId}/qrcode", handlers.RecordQRCode)

	// Institutional writes and bulk exports
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)
		r.Post("/publish-record", handlers.PublishRecord)
		r.Post("/publish-records-csv", handlers.BulkPublishHandler)
		r.Get("/export-logs.xlsx", handlers.ExportLogsXLSX)
	})

	return r
}
