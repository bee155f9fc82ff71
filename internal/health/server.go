// Package health serves the status endpoints the container exposes on
// its HTTP port.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Yab112/BemniTelegeramBot/internal/store"
)

// StatusResponse reports a healthy bot
type StatusResponse struct {
	Status string `json:"status"`
}

// StatusErrorResponse reports a failed health check
type StatusErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Server exposes the banner and health endpoints.
type Server struct {
	Router *mux.Router
	srv    *http.Server
}

// NewServer wires the health endpoints on the given port.
func NewServer(health store.HealthStore, port int) *Server {
	router := mux.NewRouter()
	srv := &http.Server{
		Handler:      handlers.LoggingHandler(os.Stdout, router),
		Addr:         fmt.Sprintf(":%d", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	router.HandleFunc("/", handleRoot()).Methods("GET")
	router.HandleFunc("/healthz", handleHealthz(health)).Methods("GET")

	return &Server{Router: router, srv: srv}
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops the listener, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = fmt.Fprintln(w, "Deadline Countdown Bot is running!")
	}
}

func handleHealthz(health store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := health.CheckConnectivity(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(StatusErrorResponse{
				Status: "error",
				Error:  "database connectivity check failed",
			})
			return
		}

		_ = json.NewEncoder(w).Encode(StatusResponse{Status: "ok"})
	}
}
