package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fortuna/athena/internal/boxscore"
	"github.com/fortuna/athena/internal/player"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
	"github.com/fortuna/athena/internal/store"
	"github.com/fortuna/athena/internal/team"
)

// Handler carries the provider, the parsing schemes (built once at
// startup, shared read-only), and the optional export store.
type Handler struct {
	provider     provider.Provider
	teamScheme   *scheme.Scheme
	boxScheme    *scheme.Scheme
	playerScheme *scheme.Scheme
	db           *store.Database
}

// NewHandler creates a handler.
func NewHandler(p provider.Provider, db *store.Database) *Handler {
	return &Handler{
		provider:     p,
		teamScheme:   scheme.TeamSeason(),
		boxScheme:    scheme.BoxscoreGame(),
		playerScheme: scheme.PlayerSeason(),
		db:           db,
	}
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "healthy",
		"service": "athena",
	}
	if h.db != nil {
		if err := h.db.HealthCheck(); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
		} else {
			status["database"] = "ok"
		}
	}
	respondJSON(w, http.StatusOK, status)
}

// GetTeams returns every team in a season's index.
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	teams, err := team.Build(r.Context(), h.provider, h.teamScheme, year)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build season index", err)
		return
	}

	out := make([]map[string]interface{}, 0, teams.Len())
	for _, t := range teams.All() {
		out = append(out, teamJSON(t))
	}
	respondJSON(w, http.StatusOK, out)
}

// GetTeam returns one team by abbreviation.
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	abbr := mux.Vars(r)["abbr"]

	teams, err := team.Build(r.Context(), h.provider, h.teamScheme, year)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build season index", err)
		return
	}

	t, err := teams.Lookup(abbr)
	if err != nil {
		var notFound *team.NotFoundError
		if errors.As(err, &notFound) {
			respondError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Lookup failed", err)
		return
	}

	respondJSON(w, http.StatusOK, teamJSON(t))
}

// GetRoster returns one team's players for a season.
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	abbr := mux.Vars(r)["abbr"]

	roster, err := player.Build(r.Context(), h.provider, h.playerScheme, year, abbr)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build roster", err)
		return
	}

	respondJSON(w, http.StatusOK, roster.Export().Records())
}

// GetBoxscores returns every game in a date range.
func (h *Handler) GetBoxscores(w http.ResponseWriter, r *http.Request) {
	from, to, err := rangeParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date range (use start/end YYYY-MM-DD)", err)
		return
	}

	games, err := boxscore.Build(r.Context(), h.provider, h.boxScheme, from, to)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build scoreboard", err)
		return
	}

	respondJSON(w, http.StatusOK, games.Export().Records())
}

// GetBoxscore returns a single game by composite key.
func (h *Handler) GetBoxscore(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	b := boxscore.Fetch(r.Context(), h.provider, h.boxScheme, key)
	if !b.Date().Valid && !b.Home().Points().Valid {
		// All-null boxscore: the provider had nothing for this key.
		respondError(w, http.StatusNotFound, fmt.Sprintf("boxscore %q has no data", key), nil)
		return
	}

	respondJSON(w, http.StatusOK, b.Record())
}

// ExportTeams streams a season's team table as CSV and optionally
// persists it.
func (h *Handler) ExportTeams(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	teams, err := team.Build(r.Context(), h.provider, h.teamScheme, year)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build season index", err)
		return
	}

	f := teams.Export()

	if r.URL.Query().Get("persist") == "true" && h.db != nil {
		if err := h.db.SaveFrame(r.Context(), "teams", strconv.Itoa(year), f); err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to persist export", err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=teams-%d.csv", year))
	if err := f.WriteCSV(w); err != nil {
		// Headers are gone; nothing to do but log via middleware recovery path.
		return
	}
}

// ExportBoxscores streams a date range's games as CSV.
func (h *Handler) ExportBoxscores(w http.ResponseWriter, r *http.Request) {
	from, to, err := rangeParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date range (use start/end YYYY-MM-DD)", err)
		return
	}

	games, err := boxscore.Build(r.Context(), h.provider, h.boxScheme, from, to)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build scoreboard", err)
		return
	}

	f := games.Export()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=boxscores.csv")
	_ = f.WriteCSV(w)
}

func teamJSON(t *team.Team) map[string]interface{} {
	out := t.Record()
	out["abbreviation"] = t.Abbreviation()
	out["name"] = t.Name()
	out["year"] = t.Year()
	out["conference"] = t.Conference()
	if rank := t.Rank(); rank.Valid {
		out["rank"] = rank.Int64
	} else {
		out["rank"] = nil
	}
	return out
}

func yearParam(r *http.Request) (int, error) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return 0, fmt.Errorf("year query parameter is required")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1900 || year > 2100 {
		return 0, fmt.Errorf("year %q is not a valid season", yearStr)
	}
	return year, nil
}

func rangeParams(r *http.Request) (from, to time.Time, err error) {
	from, err = time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		return from, to, err
	}
	to, err = time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		return from, to, err
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("end precedes start")
	}
	return from, to, nil
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
