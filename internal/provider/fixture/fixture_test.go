package fixture

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/athena/internal/scheme"
)

func TestSeasonIndex(t *testing.T) {
	p := New("testdata")

	rows, err := p.SeasonIndex(context.Background(), scheme.KindTeamSeason, "2024")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	duke := rows[0]
	assert.Equal(t, "DUKE", duke.Key)
	assert.Equal(t, "Duke", duke.Name)
	assert.Equal(t, sql.NullInt64{Int64: 9, Valid: true}, duke.Rank)
	assert.Equal(t, "ACC", duke.Conference)

	wins, ok := duke.Row.Cell("wins")
	require.True(t, ok)
	assert.Equal(t, "27", wins)

	// Row without a rank reads back null, not zero.
	assert.False(t, rows[2].Rank.Valid)
	assert.Empty(t, rows[2].Conference)
}

func TestSeasonIndexMissingFileMeansNoData(t *testing.T) {
	p := New("testdata")
	rows, err := p.SeasonIndex(context.Background(), scheme.KindTeamSeason, "1907")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSeasonIndexMapsIdentifierSeparators(t *testing.T) {
	p := New("testdata")

	// Roster identifiers carry "/", range identifiers ":"; both map to "_"
	// in the fixture filename.
	roster, err := p.SeasonIndex(context.Background(), scheme.KindPlayerSeason, "2024/DUKE")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "kyle-filipowski-1", roster[0].Key)

	games, err := p.SeasonIndex(context.Background(), scheme.KindBoxscore, "2024-03-09:2024-03-09")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "2024-03-09-duke", games[0].Key)
}

func TestEntityByIdentifier(t *testing.T) {
	p := New("testdata")

	row, err := p.Entity(context.Background(), scheme.KindTeamSeason, "2024", "duke")
	require.NoError(t, err)
	require.NotNil(t, row)

	wins, ok := row.Cell("wins")
	require.True(t, ok)
	assert.Equal(t, "27", wins)
}

func TestEntityScansKindWhenIdentifierEmpty(t *testing.T) {
	p := New("testdata")

	row, err := p.Entity(context.Background(), scheme.KindBoxscore, "", "2024-03-09-DUKE")
	require.NoError(t, err)
	require.NotNil(t, row)

	pts, ok := row.Cell("home_pts")
	require.True(t, ok)
	assert.Equal(t, "84", pts)
}

func TestEntityUnknownKeyIsNilNil(t *testing.T) {
	p := New("testdata")

	row, err := p.Entity(context.Background(), scheme.KindTeamSeason, "2024", "GONZAGA")
	require.NoError(t, err)
	assert.Nil(t, row)
}
