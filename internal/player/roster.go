package player

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

// NotFoundError signals a lookup against a player id that is not on the
// roster.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("player %q not found on roster", e.ID)
}

// Roster is one team's players for one season, keyed by player id slug.
type Roster struct {
	sch      *scheme.Scheme
	teamAbbr string
	year     int
	players  []*Player
	byID     map[string]*Player
}

// RosterIdentifier formats the season/team identifier a provider indexes
// rosters by.
func RosterIdentifier(year int, teamAbbr string) string {
	return strconv.Itoa(year) + "/" + strings.ToUpper(teamAbbr)
}

// Build fetches a team's roster page once and constructs every player.
func Build(ctx context.Context, p provider.Provider, sch *scheme.Scheme, year int, teamAbbr string) (*Roster, error) {
	identifier := RosterIdentifier(year, teamAbbr)
	rows, err := p.SeasonIndex(ctx, scheme.KindPlayerSeason, identifier)
	if err != nil {
		return nil, fmt.Errorf("fetching roster %s: %w", identifier, err)
	}

	r := &Roster{
		sch:      sch,
		teamAbbr: strings.ToUpper(teamAbbr),
		year:     year,
		byID:     make(map[string]*Player, len(rows)),
	}

	for _, row := range rows {
		id := canonicalID(row.Key)
		if _, dup := r.byID[id]; dup {
			log.Printf("[roster] duplicate player row %s, keeping first", row.Key)
			continue
		}
		pl := New(sch, year, r.teamAbbr, row)
		r.players = append(r.players, pl)
		r.byID[id] = pl
	}

	return r, nil
}

// Len returns the roster size.
func (r *Roster) Len() int {
	return len(r.players)
}

// All returns the players in construction order.
func (r *Roster) All() []*Player {
	out := make([]*Player, len(r.players))
	copy(out, r.players)
	return out
}

// Lookup finds a player by id slug, case-insensitively.
func (r *Roster) Lookup(id string) (*Player, error) {
	pl, ok := r.byID[canonicalID(id)]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return pl, nil
}

// Export flattens the roster into one table row per player, indexed by
// player id.
func (r *Roster) Export() *frame.Frame {
	columns := make([]string, 0, r.sch.Len())
	for _, a := range r.sch.Attributes() {
		columns = append(columns, a.Name)
	}

	f := frame.New("player_id", columns)
	for _, pl := range r.players {
		f.Append(pl.ID(), pl.Record())
	}
	return f
}

func canonicalID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
