// Package boxscore models a single game's final statistics and the set of
// games across a date range.
package boxscore

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/fortuna/athena/internal/extract"
	"github.com/fortuna/athena/internal/provider"
	"github.com/fortuna/athena/internal/scheme"
)

// Boxscore is one game's stat line for both sides. Its identity is the
// composite game key (date plus home team slug); everything else comes
// through the parsing scheme.
type Boxscore struct {
	extract.Base

	key string
}

// New builds a boxscore from an already-fetched index row.
func New(sch *scheme.Scheme, row provider.IndexedRow) *Boxscore {
	b := &Boxscore{Base: extract.NewBase(sch), key: row.Key}
	b.Populate(row.Row)
	return b
}

// Fetch builds a single boxscore by game key. Provider failures leave an
// all-null boxscore rather than erroring.
func Fetch(ctx context.Context, p provider.Provider, sch *scheme.Scheme, key string) *Boxscore {
	b := &Boxscore{Base: extract.NewBase(sch), key: key}

	row, err := p.Entity(ctx, scheme.KindBoxscore, "", key)
	if err != nil {
		log.Printf("[boxscore] no data for game %s: %v", key, err)
		return b
	}
	b.Populate(row)
	return b
}

// Key returns the composite game key.
func (b *Boxscore) Key() string { return b.key }

// Date returns the game date as recorded on the summary row.
func (b *Boxscore) Date() sql.NullString { return b.StrAttr("date") }

// Location returns the venue, when the summary carried one.
func (b *Boxscore) Location() sql.NullString { return b.StrAttr("location") }

// Home returns the home side's stat view.
func (b *Boxscore) Home() Side { return Side{b: b, prefix: "home"} }

// Away returns the away side's stat view.
func (b *Boxscore) Away() Side { return Side{b: b, prefix: "away"} }

// Side exposes one team's half of the boxscore. The accessors re-coerce
// on every read like every other typed attribute.
type Side struct {
	b      *Boxscore
	prefix string
}

func (s Side) attr(name string) string { return s.prefix + "_" + name }

func (s Side) Name() sql.NullString              { return s.b.StrAttr(s.attr("name")) }
func (s Side) Points() sql.NullInt64             { return s.b.IntAttr(s.attr("points")) }
func (s Side) FieldGoals() sql.NullInt64         { return s.b.IntAttr(s.attr("field_goals")) }
func (s Side) FieldGoalAttempts() sql.NullInt64  { return s.b.IntAttr(s.attr("field_goal_attempts")) }
func (s Side) ThreePointFieldGoals() sql.NullInt64 {
	return s.b.IntAttr(s.attr("three_point_field_goals"))
}
func (s Side) ThreePointFieldGoalAttempts() sql.NullInt64 {
	return s.b.IntAttr(s.attr("three_point_field_goal_attempts"))
}
func (s Side) FreeThrows() sql.NullInt64        { return s.b.IntAttr(s.attr("free_throws")) }
func (s Side) FreeThrowAttempts() sql.NullInt64 { return s.b.IntAttr(s.attr("free_throw_attempts")) }
func (s Side) OffensiveRebounds() sql.NullInt64 { return s.b.IntAttr(s.attr("offensive_rebounds")) }
func (s Side) TotalRebounds() sql.NullInt64     { return s.b.IntAttr(s.attr("total_rebounds")) }
func (s Side) Assists() sql.NullInt64           { return s.b.IntAttr(s.attr("assists")) }
func (s Side) Steals() sql.NullInt64            { return s.b.IntAttr(s.attr("steals")) }
func (s Side) Blocks() sql.NullInt64            { return s.b.IntAttr(s.attr("blocks")) }
func (s Side) Turnovers() sql.NullInt64         { return s.b.IntAttr(s.attr("turnovers")) }
func (s Side) PersonalFouls() sql.NullInt64     { return s.b.IntAttr(s.attr("personal_fouls")) }

func (s Side) FieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(s.FieldGoals(), s.FieldGoalAttempts())
}

func (s Side) ThreePointFieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(s.ThreePointFieldGoals(), s.ThreePointFieldGoalAttempts())
}

func (s Side) TwoPointFieldGoals() sql.NullInt64 {
	return extract.DiffInt(s.FieldGoals(), s.ThreePointFieldGoals())
}

func (s Side) TwoPointFieldGoalAttempts() sql.NullInt64 {
	return extract.DiffInt(s.FieldGoalAttempts(), s.ThreePointFieldGoalAttempts())
}

func (s Side) TwoPointFieldGoalPercentage() sql.NullFloat64 {
	return extract.Ratio(s.TwoPointFieldGoals(), s.TwoPointFieldGoalAttempts())
}

func (s Side) FreeThrowPercentage() sql.NullFloat64 {
	return extract.Ratio(s.FreeThrows(), s.FreeThrowAttempts())
}

func (s Side) DefensiveRebounds() sql.NullInt64 {
	return extract.DiffInt(s.TotalRebounds(), s.OffensiveRebounds())
}

// Record flattens the boxscore into one export row with derived values
// computed now.
func (b *Boxscore) Record() map[string]interface{} {
	rec := make(map[string]interface{}, b.Scheme().Len())
	for _, a := range b.Scheme().Attributes() {
		if !a.Derived {
			rec[a.Name] = b.Value(a)
			continue
		}

		side := b.Home()
		name := a.Name
		if strings.HasPrefix(name, "away_") {
			side = b.Away()
		}
		name = strings.TrimPrefix(strings.TrimPrefix(name, "home_"), "away_")

		switch name {
		case "field_goal_percentage":
			rec[a.Name] = extract.NullableFloat(side.FieldGoalPercentage())
		case "three_point_field_goal_percentage":
			rec[a.Name] = extract.NullableFloat(side.ThreePointFieldGoalPercentage())
		case "two_point_field_goals":
			rec[a.Name] = extract.NullableInt(side.TwoPointFieldGoals())
		case "two_point_field_goal_attempts":
			rec[a.Name] = extract.NullableInt(side.TwoPointFieldGoalAttempts())
		case "two_point_field_goal_percentage":
			rec[a.Name] = extract.NullableFloat(side.TwoPointFieldGoalPercentage())
		case "free_throw_percentage":
			rec[a.Name] = extract.NullableFloat(side.FreeThrowPercentage())
		case "defensive_rebounds":
			rec[a.Name] = extract.NullableInt(side.DefensiveRebounds())
		default:
			rec[a.Name] = nil
		}
	}
	return rec
}
