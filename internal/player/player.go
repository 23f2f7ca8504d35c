// Package player models one player's season totals and a team's roster.
package player

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/fortuna/athena/internal/extract"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
)

// Player is one player's season record. Identity fields (id slug, display
// name, team, year) are supplied directly; stats go through the scheme.
type Player struct {
	extract.Base

	id           string
	name         string
	teamAbbr     string
	year         int
}

// New builds a player from an already-fetched roster row.
func New(sch *scheme.Scheme, year int, teamAbbr string, row provider.IndexedRow) *Player {
	p := &Player{
		Base:     extract.NewBase(sch),
		id:       row.Key,
		name:     row.Name,
		teamAbbr: teamAbbr,
		year:     year,
	}
	p.Populate(row.Row)
	return p
}

// Fetch builds a single player by id slug. A known team narrows the
// retrieval to that roster; an empty teamAbbr leaves the identifier blank
// so providers that can scan for the id do. Provider failures leave every
// stat null.
func Fetch(ctx context.Context, pr provider.Provider, sch *scheme.Scheme, year int, teamAbbr, id string) *Player {
	p := &Player{
		Base:     extract.NewBase(sch),
		id:       id,
		teamAbbr: strings.ToUpper(teamAbbr),
		year:     year,
	}

	identifier := ""
	if teamAbbr != "" {
		identifier = RosterIdentifier(year, teamAbbr)
	}

	row, err := pr.Entity(ctx, scheme.KindPlayerSeason, identifier, id)
	if err != nil {
		log.Printf("[player] no season data for %s %d: %v", id, year, err)
		return p
	}
	p.Populate(row)
	return p
}

// Identity accessors pass through unmodified.

func (p *Player) ID() string               { return p.id }
func (p *Player) Name() string             { return p.name }
func (p *Player) TeamAbbreviation() string { return p.teamAbbr }
func (p *Player) Year() int                { return p.year }

// Extracted attributes.

func (p *Player) Position() sql.NullString      { return p.StrAttr("position") }
func (p *Player) Height() sql.NullString        { return p.StrAttr("height") }
func (p *Player) GamesPlayed() sql.NullInt64    { return p.IntAttr("games_played") }
func (p *Player) GamesStarted() sql.NullInt64   { return p.IntAttr("games_started") }
func (p *Player) MinutesPlayed() sql.NullInt64  { return p.IntAttr("minutes_played") }
func (p *Player) Points() sql.NullInt64         { return p.IntAttr("points") }
func (p *Player) FieldGoals() sql.NullInt64     { return p.IntAttr("field_goals") }
func (p *Player) FieldGoalAttempts() sql.NullInt64 { return p.IntAttr("field_goal_attempts") }
func (p *Player) ThreePointFieldGoals() sql.NullInt64 {
	return p.IntAttr("three_point_field_goals")
}
func (p *Player) ThreePointFieldGoalAttempts() sql.NullInt64 {
	return p.IntAttr("three_point_field_goal_attempts")
}
func (p *Player) FreeThrows() sql.NullInt64        { return p.IntAttr("free_throws") }
func (p *Player) FreeThrowAttempts() sql.NullInt64 { return p.IntAttr("free_throw_attempts") }
func (p *Player) OffensiveRebounds() sql.NullInt64 { return p.IntAttr("offensive_rebounds") }
func (p *Player) TotalRebounds() sql.NullInt64     { return p.IntAttr("total_rebounds") }
func (p *Player) Assists() sql.NullInt64           { return p.IntAttr("assists") }
func (p *Player) Steals() sql.NullInt64            { return p.IntAttr("steals") }
func (p *Player) Blocks() sql.NullInt64            { return p.IntAttr("blocks") }
func (p *Player) Turnovers() sql.NullInt64         { return p.IntAttr("turnovers") }
func (p *Player) PersonalFouls() sql.NullInt64     { return p.IntAttr("personal_fouls") }
func (p *Player) PlayerEfficiencyRating() sql.NullFloat64 {
	return p.FloatAttr("player_efficiency_rating")
}
func (p *Player) UsagePercentage() sql.NullFloat64 { return p.FloatAttr("usage_percentage") }

// Derived attributes.

func (p *Player) PointsPerGame() sql.NullFloat64 {
	return extract.Ratio(p.Points(), p.GamesPlayed())
}

func (p *Player) FieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(p.FieldGoals(), p.FieldGoalAttempts())
}

func (p *Player) ThreePointFieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(p.ThreePointFieldGoals(), p.ThreePointFieldGoalAttempts())
}

func (p *Player) TwoPointFieldGoals() sql.NullInt64 {
	return extract.DiffInt(p.FieldGoals(), p.ThreePointFieldGoals())
}

func (p *Player) TwoPointFieldGoalAttempts() sql.NullInt64 {
	return extract.DiffInt(p.FieldGoalAttempts(), p.ThreePointFieldGoalAttempts())
}

func (p *Player) TwoPointFieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(p.TwoPointFieldGoals(), p.TwoPointFieldGoalAttempts())
}

func (p *Player) FreeThrowPercentage() sql.NullFloat64 {
	return extract.Ratio(p.FreeThrows(), p.FreeThrowAttempts())
}

func (p *Player) DefensiveRebounds() sql.NullInt64 {
	return extract.DiffInt(p.TotalRebounds(), p.OffensiveRebounds())
}

var derivedInt = map[string]func(*Player) sql.NullInt64{
	"two_point_field_goals":         (*Player).TwoPointFieldGoals,
	"two_point_field_goal_attempts": (*Player).TwoPointFieldGoalAttempts,
	"defensive_rebounds":            (*Player).DefensiveRebounds,
}

var derivedFloat = map[string]func(*Player) sql.NullFloat64{
	"points_per_game":                   (*Player).PointsPerGame,
	"field_goal_percentage":             (*Player).FieldGoalPercentage,
	"three_point_field_goal_percentage": (*Player).ThreePointFieldGoalPercentage,
	"two_point_field_goal_percentage":   (*Player).TwoPointFieldGoalPercentage,
	"free_throw_percentage":             (*Player).FreeThrowPercentage,
}

// Record flattens the player into one export row.
func (p *Player) Record() map[string]interface{} {
	rec := make(map[string]interface{}, p.Scheme().Len())
	for _, a := range p.Scheme().Attributes() {
		switch {
		case !a.Derived:
			rec[a.Name] = p.Value(a)
		case a.Kind == scheme.Int:
			rec[a.Name] = extract.NullableInt(derivedInt[a.Name](p))
		default:
			rec[a.Name] = extract.NullableFloat(derivedFloat[a.Name](p))
		}
	}
	return rec
}
