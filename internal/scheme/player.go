package scheme

// PlayerSeason builds the parsing scheme for one player's season totals row.
func PlayerSeason() *Scheme {
	return newScheme(KindPlayerSeason, []Attribute{
		{Name: "position", Selector: "pos", Kind: Str},
		{Name: "height", Kind: Str},
		{Name: "games_played", Selector: "g", Kind: Int},
		{Name: "games_started", Selector: "gs", Kind: Int},
		{Name: "minutes_played", Selector: "mp", Kind: Int},
		{Name: "points", Selector: "pts", Kind: Int},
		{Name: "points_per_game", Kind: Float, Derived: true},
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
		{Name: "player_efficiency_rating", Selector: "per", Kind: Float},
		{Name: "usage_percentage", Selector: "usg_pct", Kind: Float},
	})
}
