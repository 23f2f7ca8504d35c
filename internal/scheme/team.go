package scheme

// TeamSeason builds the parsing scheme for one team's season totals row.
// Selectors are the data-stat cell names used by the season stats tables.
func TeamSeason() *Scheme {
	return newScheme(KindTeamSeason, []Attribute{
		{Name: "games_played", Selector: "g", Kind: Int},
		{Name: "wins", Kind: Int},
		{Name: "losses", Kind: Int},
		{Name: "win_percentage", Kind: Float, Derived: true},
		{Name: "simple_rating_system", Selector: "srs", Kind: Float},
		{Name: "strength_of_schedule", Selector: "sos", Kind: Float},
		{Name: "pace", Kind: Float},
		{Name: "offensive_rating", Selector: "off_rtg", Kind: Float},
		{Name: "defensive_rating", Selector: "def_rtg", Kind: Float},
		{Name: "net_rating", Kind: Float, Derived: true},
		{Name: "points", Selector: "pts", Kind: Int},
		{Name: "opp_points", Selector: "opp_pts", Kind: Int},
		{Name: "minutes_played", Selector: "mp", Kind: Int},

		{Name: "field_goals", Selector: "fg", Kind: Int},
		{Name: "field_goal_attempts", Selector: "fga", Kind: Int},
		{Name: "field_goal_percentage", Kind: Float, Derived: true},
		{Name: "three_point_field_goals", Selector: "fg3", Kind: Int},
		{Name: "three_point_field_goal_attempts", Selector: "fg3a", Kind: Int},
		{Name: "three_point_field_goal_percentage", Kind: Float, Derived: true},
		{Name: "two_point_field_goals", Kind: Int, Derived: true},
		{Name: "two_point_field_goal_attempts", Kind: Int, Derived: true},
		{Name: "two_point_field_goal_percentage", Kind: Float, Derived: true},
		{Name: "free_throws", Selector: "ft", Kind: Int},
		{Name: "free_throw_attempts", Selector: "fta", Kind: Int},
		{Name: "free_throw_percentage", Kind: Float, Derived: true},
		{Name: "offensive_rebounds", Selector: "orb", Kind: Int},
		{Name: "defensive_rebounds", Kind: Int, Derived: true},
		{Name: "total_rebounds", Selector: "trb", Kind: Int},
		{Name: "assists", Selector: "ast", Kind: Int},
		{Name: "steals", Selector: "stl", Kind: Int},
		{Name: "blocks", Selector: "blk", Kind: Int},
		{Name: "turnovers", Selector: "tov", Kind: Int},
		{Name: "personal_fouls", Selector: "pf", Kind: Int},

		{Name: "opp_field_goals", Selector: "opp_fg", Kind: Int},
		{Name: "opp_field_goal_attempts", Selector: "opp_fga", Kind: Int},
		{Name: "opp_field_goal_percentage", Kind: Float, Derived: true},
		{Name: "opp_three_point_field_goals", Selector: "opp_fg3", Kind: Int},
		{Name: "opp_three_point_field_goal_attempts", Selector: "opp_fg3a", Kind: Int},
		{Name: "opp_three_point_field_goal_percentage", Kind: Float, Derived: true},
		{Name: "opp_two_point_field_goals", Kind: Int, Derived: true},
		{Name: "opp_two_point_field_goal_attempts", Kind: Int, Derived: true},
		{Name: "opp_two_point_field_goal_percentage", Kind: Float, Derived: true},
		{Name: "opp_free_throws", Selector: "opp_ft", Kind: Int},
		{Name: "opp_free_throw_attempts", Selector: "opp_fta", Kind: Int},
		{Name: "opp_free_throw_percentage", Kind: Float, Derived: true},
		{Name: "opp_offensive_rebounds", Selector: "opp_orb", Kind: Int},
		{Name: "opp_defensive_rebounds", Kind: Int, Derived: true},
		{Name: "opp_total_rebounds", Selector: "opp_trb", Kind: Int},
		{Name: "opp_assists", Selector: "opp_ast", Kind: Int},
		{Name: "opp_steals", Selector: "opp_stl", Kind: Int},
		{Name: "opp_blocks", Selector: "opp_blk", Kind: Int},
		{Name: "opp_turnovers", Selector: "opp_tov", Kind: Int},
		{Name: "opp_personal_fouls", Selector: "opp_pf", Kind: Int},
	})
}
