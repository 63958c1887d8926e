package server

import (
	"log"
	"net/http"
	"time"
)

// Server is the hold detection HTTP service.
type Server struct {
	cfg     Config
	mux     *http.ServeMux
	started time.Time
}

// Config holds the settings the server needs. Zero values select the
// documented defaults.
type Config struct {
	Port        string
	MinArea     int
	MaxUploadMB int64
	OutputDir   string
}

// New creates a server with all routes registered.
func New(cfg Config) *Server {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 10
	}

	s := &Server{
		cfg:     cfg,
		mux:     http.NewServeMux(),
		started: time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/api/v1/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/upload", s.handleUpload)
	s.mux.HandleFunc("/api/v1/identify-route", s.handleIdentifyRoute)
	s.mux.HandleFunc("/api/v1/identify-all-routes", s.handleIdentifyAllRoutes)
	s.mux.HandleFunc("/api/v1/visualize-route", s.handleVisualizeRoute)
	s.mux.HandleFunc("/api/v1/visualize-all-routes", s.handleVisualizeAllRoutes)
	s.mux.HandleFunc("/api/v1/remove-background", s.handleRemoveBackground)
}

// Handler returns the server's handler chain, ready to serve.
func (s *Server) Handler() http.Handler {
	return withCORS(s.mux)
}

// ListenAndServe blocks serving HTTP on the configured port.
func (s *Server) ListenAndServe() error {
	addr := ":" + s.cfg.Port
	log.Printf("holdscan listening on %s (min area %d, upload cap %dMB)",
		addr, s.cfg.MinArea, s.cfg.MaxUploadMB)
	return http.ListenAndServe(addr, s.Handler())
}

// withCORS allows browser clients on any origin to call the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
