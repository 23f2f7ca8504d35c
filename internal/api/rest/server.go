package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/store"
)

// Server exposes built collections and their exports over HTTP.
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer wires the REST routes. db may be nil when persistence is not
// configured.
func NewServer(port string, p provider.Provider, db *store.Database) *Server {
	handler := NewHandler(p, db)

	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/export", handler.ExportTeams).Methods("GET")
	api.HandleFunc("/teams/{abbr}", handler.GetTeam).Methods("GET")
	api.HandleFunc("/teams/{abbr}/roster", handler.GetRoster).Methods("GET")

	api.HandleFunc("/boxscores", handler.GetBoxscores).Methods("GET")
	api.HandleFunc("/boxscores/export", handler.ExportBoxscores).Methods("GET")
	api.HandleFunc("/boxscores/{key}", handler.GetBoxscore).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
