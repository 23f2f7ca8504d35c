package sportsref

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/athena/internal/scheme"
)

// fixtureServer serves saved copies of the season pages at the paths the
// client requests.
func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()

	pages := map[string]string{
		"/seasons/2024-school-stats.html": "school_stats.html",
		"/schools/duke/2024.html":         "roster.html",
		"/boxscores/index.cgi":            "scoreboard.html",
		"/boxscores/2024-03-09-duke.html": "boxscore.html",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		data, err := os.ReadFile(filepath.Join("testdata", file))
		require.NoError(t, err)
		w.Header().Set("Content-Type", "text/html")
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSeasonIndexTeams(t *testing.T) {
	c := New(fixtureServer(t).URL)

	rows, err := c.SeasonIndex(context.Background(), scheme.KindTeamSeason, "2024")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	duke := rows[0]
	assert.Equal(t, "DUKE", duke.Key)
	assert.Equal(t, "Duke", duke.Name)
	assert.Equal(t, "ACC", duke.Conference)
	assert.Equal(t, sql.NullInt64{Int64: 1, Valid: true}, duke.Rank)

	wins, ok := duke.Row.Cell("wins")
	require.True(t, ok)
	assert.Equal(t, "27", wins)

	// Keys come from the school href slug, uppercased.
	assert.Equal(t, "NORTH-CAROLINA", rows[1].Key)

	// The conference cell can be empty; the row is still returned and the
	// collection layer decides what to do with it.
	assert.Empty(t, rows[2].Conference)
}

func TestSeasonIndexRoster(t *testing.T) {
	c := New(fixtureServer(t).URL)

	rows, err := c.SeasonIndex(context.Background(), scheme.KindPlayerSeason, "2024/DUKE")
	require.NoError(t, err)
	require.Len(t, rows, 2, "the totals line is not a player")

	assert.Equal(t, "kyle-filipowski-1", rows[0].Key)
	assert.Equal(t, "Kyle Filipowski", rows[0].Name)

	pts, ok := rows[0].Row.Cell("pts")
	require.True(t, ok)
	assert.Equal(t, "598", pts)
}

func TestSeasonIndexRosterBadIdentifier(t *testing.T) {
	c := New(fixtureServer(t).URL)
	_, err := c.SeasonIndex(context.Background(), scheme.KindPlayerSeason, "2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want year/team")
}

func TestSeasonIndexScoreboard(t *testing.T) {
	c := New(fixtureServer(t).URL)

	rows, err := c.SeasonIndex(context.Background(), scheme.KindBoxscore, "2024-03-09:2024-03-09")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	game := rows[0]
	assert.Equal(t, "2024-03-09-duke", game.Key)
	assert.Equal(t, "North Carolina at Duke", game.Name)

	home, ok := game.Row.Cell("home_pts")
	require.True(t, ok)
	assert.Equal(t, "84", home)
	away, ok := game.Row.Cell("away_pts")
	require.True(t, ok)
	assert.Equal(t, "79", away)

	// A card without a boxscore link gets a synthesized stable key.
	assert.Equal(t, "2024-03-09-kansas", rows[1].Key)
}

func TestEntityBoxscore(t *testing.T) {
	c := New(fixtureServer(t).URL)

	row, err := c.Entity(context.Background(), scheme.KindBoxscore, "", "2024-03-09-DUKE")
	require.NoError(t, err)
	require.NotNil(t, row)

	tests := map[string]string{
		"date":      "2024-03-09",
		"home_name": "Duke",
		"home_pts":  "84",
		"home_fg":   "30",
		"away_name": "North Carolina",
		"away_pts":  "79",
		"away_trb":  "33",
	}
	for cell, want := range tests {
		got, ok := row.Cell(cell)
		require.True(t, ok, cell)
		assert.Equal(t, want, got, cell)
	}
}

func TestEntityTeamScansIndex(t *testing.T) {
	c := New(fixtureServer(t).URL)

	row, err := c.Entity(context.Background(), scheme.KindTeamSeason, "2024", "duke")
	require.NoError(t, err)
	require.NotNil(t, row)

	wins, ok := row.Cell("wins")
	require.True(t, ok)
	assert.Equal(t, "27", wins)

	missing, err := c.Entity(context.Background(), scheme.KindTeamSeason, "2024", "GONZAGA")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	_, err := c.SeasonIndex(context.Background(), scheme.KindTeamSeason, "2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 429")
}

func TestSlugFromHref(t *testing.T) {
	assert.Equal(t, "purdue", slugFromHref("/cbb/schools/purdue/2024.html", false))
	assert.Equal(t, "jamal-shead-1", slugFromHref("/cbb/players/jamal-shead-1.html", true))
	assert.Equal(t, "", slugFromHref("", false))
}

func TestNameFromTableID(t *testing.T) {
	assert.Equal(t, "North Carolina", nameFromTableID("box-score-basic-north-carolina"))
	assert.Equal(t, "Duke", nameFromTableID("box-score-basic-duke"))
}
