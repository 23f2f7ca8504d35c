// Package websocket streams season exports row by row, so a consumer can
// take a full table without buffering it or polling the CSV endpoint.
package websocket

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fortuna/athena/internal/boxscore"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
	"github.com/fortuna/athena/internal/team"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server streams export rows over WebSocket connections.
type Server struct {
	port       string
	server     *http.Server
	provider   provider.Provider
	teamScheme *scheme.Scheme
	boxScheme  *scheme.Scheme
}

// NewServer creates the streaming server.
func NewServer(p provider.Provider) *Server {
	return &Server{
		provider:   p,
		teamScheme: scheme.TeamSeason(),
		boxScheme:  scheme.BoxscoreGame(),
	}
}

// Start starts the WebSocket server.
func (s *Server) Start(port string) error {
	s.port = port

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/teams/export", s.handleTeamExport)
	mux.HandleFunc("/ws/boxscores/export", s.handleBoxscoreExport)
	mux.HandleFunc("/ws/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
	}

	log.Printf("WebSocket server listening on :%s", port)
	return s.server.ListenAndServe()
}

// handleTeamExport streams one message per team row for a season.
func (s *Server) handleTeamExport(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year query parameter is required", http.StatusBadRequest)
		return
	}

	teams, err := team.Build(r.Context(), s.provider, s.teamScheme, year)
	if err != nil {
		http.Error(w, "failed to build season index", http.StatusBadGateway)
		return
	}

	s.streamRecords(w, r, teams.Export().Records())
}

// handleBoxscoreExport streams one message per game row for a date range.
func (s *Server) handleBoxscoreExport(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "start query parameter is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, "end query parameter is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	games, err := boxscore.Build(r.Context(), s.provider, s.boxScheme, from, to)
	if err != nil {
		http.Error(w, "failed to build scoreboard", http.StatusBadGateway)
		return
	}

	s.streamRecords(w, r, games.Export().Records())
}

func (s *Server) streamRecords(w http.ResponseWriter, r *http.Request, records []map[string]interface{}) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	for _, rec := range records {
		if err := conn.WriteJSON(rec); err != nil {
			log.Printf("[ws] client gone after partial stream: %v", err)
			return
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "export complete")
	_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
}

// handleHealth returns WebSocket server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status": "healthy"}`)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
