// Package team models one program's season totals and the full season
// index of teams.
package team

import (
	"context"
	"database/sql"
	"log"
	"strconv"

	"github.com/fortuna/athena/internal/extract"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
)

// Team is one program's season record: identity fields supplied directly,
// everything else extracted through the parsing scheme into nullable
// typed attributes.
type Team struct {
	extract.Base

	abbreviation string
	name         string
	year         int
	rank         sql.NullInt64
	conference   string
}

// New builds a team from an already-fetched index row.
func New(sch *scheme.Scheme, year int, row provider.IndexedRow) *Team {
	t := &Team{
		Base:         extract.NewBase(sch),
		abbreviation: row.Key,
		name:         row.Name,
		year:         year,
		rank:         row.Rank,
		conference:   row.Conference,
	}
	t.Populate(row.Row)
	return t
}

// Fetch builds a single team by identity key, retrieving its season row
// from the provider. A provider failure or missing row is not an error:
// the team comes back with every stat null, which downstream code already
// handles.
func Fetch(ctx context.Context, p provider.Provider, sch *scheme.Scheme, year int, abbreviation string) *Team {
	t := &Team{
		Base:         extract.NewBase(sch),
		abbreviation: abbreviation,
		year:         year,
	}

	row, err := p.Entity(ctx, scheme.KindTeamSeason, strconv.Itoa(year), abbreviation)
	if err != nil {
		log.Printf("[team] no season data for %s %d: %v", abbreviation, year, err)
		return t
	}
	t.Populate(row)
	return t
}

// Identity accessors pass through unmodified.

func (t *Team) Abbreviation() string   { return t.abbreviation }
func (t *Team) Name() string           { return t.name }
func (t *Team) Year() int              { return t.year }
func (t *Team) Rank() sql.NullInt64    { return t.rank }
func (t *Team) Conference() string     { return t.conference }

// Extracted attributes, re-coerced on every read.

func (t *Team) GamesPlayed() sql.NullInt64        { return t.IntAttr("games_played") }
func (t *Team) Wins() sql.NullInt64               { return t.IntAttr("wins") }
func (t *Team) Losses() sql.NullInt64             { return t.IntAttr("losses") }
func (t *Team) SimpleRatingSystem() sql.NullFloat64 { return t.FloatAttr("simple_rating_system") }
func (t *Team) StrengthOfSchedule() sql.NullFloat64 { return t.FloatAttr("strength_of_schedule") }
func (t *Team) Pace() sql.NullFloat64             { return t.FloatAttr("pace") }
func (t *Team) OffensiveRating() sql.NullFloat64  { return t.FloatAttr("offensive_rating") }
func (t *Team) DefensiveRating() sql.NullFloat64  { return t.FloatAttr("defensive_rating") }
func (t *Team) Points() sql.NullInt64             { return t.IntAttr("points") }
func (t *Team) OppPoints() sql.NullInt64          { return t.IntAttr("opp_points") }
func (t *Team) MinutesPlayed() sql.NullInt64      { return t.IntAttr("minutes_played") }

func (t *Team) FieldGoals() sql.NullInt64                 { return t.IntAttr("field_goals") }
func (t *Team) FieldGoalAttempts() sql.NullInt64          { return t.IntAttr("field_goal_attempts") }
func (t *Team) ThreePointFieldGoals() sql.NullInt64       { return t.IntAttr("three_point_field_goals") }
func (t *Team) ThreePointFieldGoalAttempts() sql.NullInt64 { return t.IntAttr("three_point_field_goal_attempts") }
func (t *Team) FreeThrows() sql.NullInt64                 { return t.IntAttr("free_throws") }
func (t *Team) FreeThrowAttempts() sql.NullInt64          { return t.IntAttr("free_throw_attempts") }
func (t *Team) OffensiveRebounds() sql.NullInt64          { return t.IntAttr("offensive_rebounds") }
func (t *Team) TotalRebounds() sql.NullInt64              { return t.IntAttr("total_rebounds") }
func (t *Team) Assists() sql.NullInt64                    { return t.IntAttr("assists") }
func (t *Team) Steals() sql.NullInt64                     { return t.IntAttr("steals") }
func (t *Team) Blocks() sql.NullInt64                     { return t.IntAttr("blocks") }
func (t *Team) Turnovers() sql.NullInt64                  { return t.IntAttr("turnovers") }
func (t *Team) PersonalFouls() sql.NullInt64              { return t.IntAttr("personal_fouls") }

func (t *Team) OppFieldGoals() sql.NullInt64                 { return t.IntAttr("opp_field_goals") }
func (t *Team) OppFieldGoalAttempts() sql.NullInt64          { return t.IntAttr("opp_field_goal_attempts") }
func (t *Team) OppThreePointFieldGoals() sql.NullInt64       { return t.IntAttr("opp_three_point_field_goals") }
func (t *Team) OppThreePointFieldGoalAttempts() sql.NullInt64 { return t.IntAttr("opp_three_point_field_goal_attempts") }
func (t *Team) OppFreeThrows() sql.NullInt64                 { return t.IntAttr("opp_free_throws") }
func (t *Team) OppFreeThrowAttempts() sql.NullInt64          { return t.IntAttr("opp_free_throw_attempts") }
func (t *Team) OppOffensiveRebounds() sql.NullInt64          { return t.IntAttr("opp_offensive_rebounds") }
func (t *Team) OppTotalRebounds() sql.NullInt64              { return t.IntAttr("opp_total_rebounds") }
func (t *Team) OppAssists() sql.NullInt64                    { return t.IntAttr("opp_assists") }
func (t *Team) OppSteals() sql.NullInt64                     { return t.IntAttr("opp_steals") }
func (t *Team) OppBlocks() sql.NullInt64                     { return t.IntAttr("opp_blocks") }
func (t *Team) OppTurnovers() sql.NullInt64                  { return t.IntAttr("opp_turnovers") }
func (t *Team) OppPersonalFouls() sql.NullInt64              { return t.IntAttr("opp_personal_fouls") }

// Derived attributes. Percentages use the zero-denominator-means-0.0
// convention; count differences propagate null instead.

func (t *Team) WinPercentage() sql.NullFloat64 {
	return extract.Ratio(t.Wins(), t.GamesPlayed())
}

func (t *Team) NetRating() sql.NullFloat64 {
	return extract.DiffFloat(t.OffensiveRating(), t.DefensiveRating())
}

func (t *Team) FieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(t.FieldGoals(), t.FieldGoalAttempts())
}

func (t *Team) ThreePointFieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(t.ThreePointFieldGoals(), t.ThreePointFieldGoalAttempts())
}

func (t *Team) TwoPointFieldGoals() sql.NullInt64 {
	return extract.DiffInt(t.FieldGoals(), t.ThreePointFieldGoals())
}

func (t *Team) TwoPointFieldGoalAttempts() sql.NullInt64 {
	return extract.DiffInt(t.FieldGoalAttempts(), t.ThreePointFieldGoalAttempts())
}

func (t *Team) TwoPointFieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(t.TwoPointFieldGoals(), t.TwoPointFieldGoalAttempts())
}

func (t *Team) FreeThrowPercentage() sql.NullFloat64 {
	return extract.Ratio(t.FreeThrows(), t.FreeThrowAttempts())
}

func (t *Team) DefensiveRebounds() sql.NullInt64 {
	return extract.DiffInt(t.TotalRebounds(), t.OffensiveRebounds())
}

func (t *Team) OppFieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(t.OppFieldGoals(), t.OppFieldGoalAttempts())
}

func (t *Team) OppThreePointFieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(t.OppThreePointFieldGoals(), t.OppThreePointFieldGoalAttempts())
}

func (t *Team) OppTwoPointFieldGoals() sql.NullInt64 {
	return extract.DiffInt(t.OppFieldGoals(), t.OppThreePointFieldGoals())
}

func (t *Team) OppTwoPointFieldGoalAttempts() sql.NullInt64 {
	return extract.DiffInt(t.OppFieldGoalAttempts(), t.OppThreePointFieldGoalAttempts())
}

func (t *Team) OppTwoPointFieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(t.OppTwoPointFieldGoals(), t.OppTwoPointFieldGoalAttempts())
}

func (t *Team) OppFreeThrowPercentage() sql.NullFloat64 {
	return extract.Ratio(t.OppFreeThrows(), t.OppFreeThrowAttempts())
}

func (t *Team) OppDefensiveRebounds() sql.NullInt64 {
	return extract.DiffInt(t.OppTotalRebounds(), t.OppOffensiveRebounds())
}

var derivedInt = map[string]func(*Team) sql.NullInt64{
	"two_point_field_goals":             (*Team).TwoPointFieldGoals,
	"two_point_field_goal_attempts":     (*Team).TwoPointFieldGoalAttempts,
	"defensive_rebounds":                (*Team).DefensiveRebounds,
	"opp_two_point_field_goals":         (*Team).OppTwoPointFieldGoals,
	"opp_two_point_field_goal_attempts": (*Team).OppTwoPointFieldGoalAttempts,
	"opp_defensive_rebounds":            (*Team).OppDefensiveRebounds,
}

var derivedFloat = map[string]func(*Team) sql.NullFloat64{
	"win_percentage":                        (*Team).WinPercentage,
	"net_rating":                            (*Team).NetRating,
	"field_goal_percentage":                 (*Team).FieldGoalPercentage,
	"three_point_field_goal_percentage":     (*Team).ThreePointFieldGoalPercentage,
	"two_point_field_goal_percentage":       (*Team).TwoPointFieldGoalPercentage,
	"free_throw_percentage":                 (*Team).FreeThrowPercentage,
	"opp_field_goal_percentage":             (*Team).OppFieldGoalPercentage,
	"opp_three_point_field_goal_percentage": (*Team).OppThreePointFieldGoalPercentage,
	"opp_two_point_field_goal_percentage":   (*Team).OppTwoPointFieldGoalPercentage,
	"opp_free_throw_percentage":             (*Team).OppFreeThrowPercentage,
}

// Record flattens the team into one export row: every declared attribute,
// derived values computed now.
func (t *Team) Record() map[string]interface{} {
	rec := make(map[string]interface{}, t.Scheme().Len())
	for _, a := range t.Scheme().Attributes() {
		switch {
		case !a.Derived:
			rec[a.Name] = t.Value(a)
		case a.Kind == scheme.Int:
			rec[a.Name] = extract.NullableInt(derivedInt[a.Name](t))
		default:
			rec[a.Name] = extract.NullableFloat(derivedFloat[a.Name](t))
		}
	}
	return rec
}
