package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	files_http "github.com/yago/fileuploadd/internal/modules/files/interfaces/http"
)

// RouterConfig holds the handlers needed for routing
type RouterConfig struct {
	FileHandler *files_http.FileHandler
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// File Routes
	mux.HandleFunc("POST /api/files/upload", config.FileHandler.Upload)
	mux.HandleFunc("GET /api/files", config.FileHandler.List)
	mux.HandleFunc("GET /api/files/{fileId}", config.FileHandler.Download)
	mux.HandleFunc("DELETE /api/files/{fileId}", config.FileHandler.Delete)

	return mux
}
