package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendPreservesOrder(t *testing.T) {
	f := New("abbreviation", []string{"wins", "losses"})
	f.Append("DUKE", map[string]interface{}{"wins": int64(27), "losses": int64(9)})
	f.Append("UNC", map[string]interface{}{"wins": int64(23), "losses": int64(13)})

	require.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"DUKE", "UNC"}, f.Index())
	assert.Equal(t, int64(27), f.Row(0)["wins"])
	assert.Equal(t, int64(23), f.Row(1)["wins"])
}

func TestColumnsAndIndexReturnCopies(t *testing.T) {
	f := New("abbreviation", []string{"wins"})
	f.Append("DUKE", map[string]interface{}{"wins": int64(27)})

	f.Columns()[0] = "tampered"
	f.Index()[0] = "tampered"

	assert.Equal(t, []string{"wins"}, f.Columns())
	assert.Equal(t, []string{"DUKE"}, f.Index())
}

func TestRecordsFoldInIndexKey(t *testing.T) {
	f := New("game", []string{"home_points"})
	f.Append("2024-03-01-duke", map[string]interface{}{"home_points": int64(78)})

	recs := f.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "2024-03-01-duke", recs[0]["game"])
	assert.Equal(t, int64(78), recs[0]["home_points"])
}

func TestWriteCSV(t *testing.T) {
	f := New("abbreviation", []string{"wins", "win_percentage", "conference"})
	f.Append("DUKE", map[string]interface{}{
		"wins":           int64(27),
		"win_percentage": 0.75,
		"conference":     "ACC",
	})
	f.Append("UNC", map[string]interface{}{
		"wins":           nil,
		"win_percentage": 0.0,
		"conference":     "ACC",
	})

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "abbreviation,wins,win_percentage,conference", lines[0])
	assert.Equal(t, "DUKE,27,0.75,ACC", lines[1])

	// Null serializes empty while a real zero prints, keeping the two apart.
	assert.Equal(t, "UNC,,0,ACC", lines[2])
}

func TestWriteCSVEmptyFrame(t *testing.T) {
	f := New("player_id", []string{"points"})

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))
	assert.Equal(t, "player_id,points\n", buf.String())
}
