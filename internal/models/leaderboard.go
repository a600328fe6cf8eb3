package models

// LeaderboardEntry for leaderboard display. Rank follows the provider's array order.
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	RankPoints float64 `json:"rank_points"`

	Games     int64   `json:"games"`
	Wins      int64   `json:"wins"`
	Kills     int64   `json:"kills"`
	KDA       float64 `json:"kda"`
	AvgDamage float64 `json:"average_damage"`
	Tier      string  `json:"tier,omitempty"`
}

// Leaderboard is one page of a season leaderboard.
type Leaderboard struct {
	Shard    string             `json:"shard"`
	SeasonID string             `json:"season_id"`
	GameMode GameMode           `json:"game_mode"`
	Entries  []LeaderboardEntry `json:"entries"`
}
