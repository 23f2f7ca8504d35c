package scheme

// BoxscoreGame builds the parsing scheme for a single game's boxscore row.
// Each counting stat appears twice, prefixed home_/away_, matching the two
// stat blocks of a scoreboard summary row.
func BoxscoreGame() *Scheme {
	attrs := []Attribute{
		{Name: "date", Kind: Str},
		{Name: "location", Kind: Str},
	}
	for _, side := range []string{"home", "away"} {
		attrs = append(attrs,
			Attribute{Name: side + "_name", Kind: Str},
			Attribute{Name: side + "_points", Selector: side + "_pts", Kind: Int},
			Attribute{Name: side + "_field_goals", Selector: side + "_fg", Kind: Int},
			Attribute{Name: side + "_field_goal_attempts", Selector: side + "_fga", Kind: Int},
			Attribute{Name: side + "_field_goal_percentage", Kind: Float, Derived: true},
			Attribute{Name: side + "_three_point_field_goals", Selector: side + "_fg3", Kind: Int},
			Attribute{Name: side + "_three_point_field_goal_attempts", Selector: side + "_fg3a", Kind: Int},
			Attribute{Name: side + "_three_point_field_goal_percentage", Kind: Float, Derived: true},
			Attribute{Name: side + "_two_point_field_goals", Kind: Int, Derived: true},
			Attribute{Name: side + "_two_point_field_goal_attempts", Kind: Int, Derived: true},
			Attribute{Name: side + "_two_point_field_goal_percentage", Kind: Float, Derived: true},
			Attribute{Name: side + "_free_throws", Selector: side + "_ft", Kind: Int},
			Attribute{Name: side + "_free_throw_attempts", Selector: side + "_fta", Kind: Int},
			Attribute{Name: side + "_free_throw_percentage", Kind: Float, Derived: true},
			Attribute{Name: side + "_offensive_rebounds", Selector: side + "_orb", Kind: Int},
			Attribute{Name: side + "_defensive_rebounds", Kind: Int, Derived: true},
			Attribute{Name: side + "_total_rebounds", Selector: side + "_trb", Kind: Int},
			Attribute{Name: side + "_assists", Selector: side + "_ast", Kind: Int},
			Attribute{Name: side + "_steals", Selector: side + "_stl", Kind: Int},
			Attribute{Name: side + "_blocks", Selector: side + "_blk", Kind: Int},
			Attribute{Name: side + "_turnovers", Selector: side + "_tov", Kind: Int},
			Attribute{Name: side + "_personal_fouls", Selector: side + "_pf", Kind: Int},
		)
	}
	return newScheme(KindBoxscore, attrs)
}
