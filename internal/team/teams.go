package team

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/fortuna/athena/internal/frame"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
)

// NotFoundError is the one user-facing error this layer produces: a
// lookup against a key that is not in the collection.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("team %q not found in season index", e.Key)
}

// Teams is the season index: one Team per top-tier program, in source
// order, keyed by abbreviation.
type Teams struct {
	sch   *scheme.Scheme
	year  int
	teams []*Team
	byKey map[string]*Team
}

// Build fetches the season index once and constructs every team from it.
// Rows missing from the conference index are non-top-tier programs and
// are skipped silently; duplicate keys keep the first row seen.
func Build(ctx context.Context, p provider.Provider, sch *scheme.Scheme, year int) (*Teams, error) {
	rows, err := p.SeasonIndex(ctx, scheme.KindTeamSeason, strconv.Itoa(year))
	if err != nil {
		return nil, fmt.Errorf("fetching %d season index: %w", year, err)
	}

	ts := &Teams{
		sch:   sch,
		year:  year,
		byKey: make(map[string]*Team, len(rows)),
	}

	for _, row := range rows {
		if row.Conference == "" {
			continue
		}
		key := canonicalKey(row.Key)
		if _, dup := ts.byKey[key]; dup {
			log.Printf("[teams] duplicate season row for %s, keeping first", row.Key)
			continue
		}
		t := New(sch, year, row)
		ts.teams = append(ts.teams, t)
		ts.byKey[key] = t
	}

	return ts, nil
}

// Len returns the number of teams in the collection.
func (ts *Teams) Len() int {
	return len(ts.teams)
}

// Year returns the season the collection was built for.
func (ts *Teams) Year() int {
	return ts.year
}

// All returns the teams in construction order.
func (ts *Teams) All() []*Team {
	out := make([]*Team, len(ts.teams))
	copy(out, ts.teams)
	return out
}

// Lookup finds a team by abbreviation, case-insensitively.
func (ts *Teams) Lookup(abbreviation string) (*Team, error) {
	t, ok := ts.byKey[canonicalKey(abbreviation)]
	if !ok {
		return nil, &NotFoundError{Key: abbreviation}
	}
	return t, nil
}

// Export flattens every team into one table row, indexed by abbreviation,
// with one column per declared (and derived) attribute.
func (ts *Teams) Export() *frame.Frame {
	columns := make([]string, 0, ts.sch.Len())
	for _, a := range ts.sch.Attributes() {
		columns = append(columns, a.Name)
	}

	f := frame.New("abbreviation", columns)
	for _, t := range ts.teams {
		f.Append(t.Abbreviation(), t.Record())
	}
	return f
}

func canonicalKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
