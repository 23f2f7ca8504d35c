package boxscore

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fortuna/athena/internal/frame"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
)

// NotFoundError signals a lookup against a game key that is not in the
// collection.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("boxscore %q not found in range", e.Key)
}

// Boxscores is every game across one date range, keyed by composite game
// key, in scoreboard order.
type Boxscores struct {
	sch   *scheme.Scheme
	games []*Boxscore
	byKey map[string]*Boxscore
}

// RangeIdentifier formats a date window the way providers index it.
func RangeIdentifier(from, to time.Time) string {
	return from.Format("2006-01-02") + ":" + to.Format("2006-01-02")
}

// Build fetches the scoreboard for the whole range once and constructs
// one boxscore per game. Duplicate game keys keep the first row.
func Build(ctx context.Context, p provider.Provider, sch *scheme.Scheme, from, to time.Time) (*Boxscores, error) {
	identifier := RangeIdentifier(from, to)
	rows, err := p.SeasonIndex(ctx, scheme.KindBoxscore, identifier)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard %s: %w", identifier, err)
	}

	bs := &Boxscores{
		sch:   sch,
		byKey: make(map[string]*Boxscore, len(rows)),
	}

	for _, row := range rows {
		key := canonicalKey(row.Key)
		if _, dup := bs.byKey[key]; dup {
			log.Printf("[boxscores] duplicate game %s, keeping first", row.Key)
			continue
		}
		b := New(sch, row)
		bs.games = append(bs.games, b)
		bs.byKey[key] = b
	}

	return bs, nil
}

// Len returns the number of games in the range.
func (bs *Boxscores) Len() int {
	return len(bs.games)
}

// All returns the games in construction order.
func (bs *Boxscores) All() []*Boxscore {
	out := make([]*Boxscore, len(bs.games))
	copy(out, bs.games)
	return out
}

// Lookup finds a game by its composite key, case-insensitively.
func (bs *Boxscores) Lookup(key string) (*Boxscore, error) {
	b, ok := bs.byKey[canonicalKey(key)]
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return b, nil
}

// Export flattens every game into one table row indexed by game key.
func (bs *Boxscores) Export() *frame.Frame {
	columns := make([]string, 0, bs.sch.Len())
	for _, a := range bs.sch.Attributes() {
		columns = append(columns, a.Name)
	}

	f := frame.New("game", columns)
	for _, b := range bs.games {
		f.Append(b.Key(), b.Record())
	}
	return f
}

func canonicalKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
