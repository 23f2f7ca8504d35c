package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemesDeclareExpectedKinds(t *testing.T) {
	assert.Equal(t, KindTeamSeason, TeamSeason().Kind())
	assert.Equal(t, KindBoxscore, BoxscoreGame().Kind())
	assert.Equal(t, KindPlayerSeason, PlayerSeason().Kind())
}

func TestLookup(t *testing.T) {
	sch := TeamSeason()

	a, ok := sch.Lookup("offensive_rating")
	require.True(t, ok)
	assert.Equal(t, "off_rtg", a.Selector)
	assert.Equal(t, Float, a.Kind)
	assert.False(t, a.Derived)

	a, ok = sch.Lookup("win_percentage")
	require.True(t, ok)
	assert.True(t, a.Derived)

	_, ok = sch.Lookup("elo_rating")
	assert.False(t, ok)
}

func TestSelectorDefaultsToName(t *testing.T) {
	a, ok := TeamSeason().Lookup("wins")
	require.True(t, ok)
	assert.Equal(t, "wins", a.Selector)
}

func TestAttributesReturnsCopy(t *testing.T) {
	sch := TeamSeason()
	attrs := sch.Attributes()
	require.NotEmpty(t, attrs)

	attrs[0].Name = "tampered"
	attrs[0].Selector = "tampered"

	fresh := sch.Attributes()
	assert.NotEqual(t, "tampered", fresh[0].Name)
}

func TestAttributeOrderIsStable(t *testing.T) {
	first := TeamSeason().Attributes()
	second := TeamSeason().Attributes()
	assert.Equal(t, first, second)
}

func TestDerivedAttributesHaveExtractedOperands(t *testing.T) {
	// Every derived column recomputes from sibling attributes, so the
	// operands it needs must be declared in the same scheme.
	operands := map[string][]string{
		"win_percentage":        {"wins", "games_played"},
		"net_rating":            {"offensive_rating", "defensive_rating"},
		"field_goal_percentage": {"field_goals", "field_goal_attempts"},
		"defensive_rebounds":    {"total_rebounds", "offensive_rebounds"},
	}

	sch := TeamSeason()
	for derived, deps := range operands {
		a, ok := sch.Lookup(derived)
		require.True(t, ok, derived)
		require.True(t, a.Derived, derived)
		for _, dep := range deps {
			dep2, ok := sch.Lookup(dep)
			require.True(t, ok, dep)
			assert.False(t, dep2.Derived, dep)
		}
	}
}

func TestBoxscoreSchemeMirrorsSides(t *testing.T) {
	sch := BoxscoreGame()
	for _, name := range []string{"points", "field_goals", "total_rebounds", "defensive_rebounds"} {
		_, ok := sch.Lookup("home_" + name)
		assert.True(t, ok, "home_"+name)
		_, ok = sch.Lookup("away_" + name)
		assert.True(t, ok, "away_"+name)
	}
}
