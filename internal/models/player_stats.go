package models

// Season is a time-boxed competitive period.
type Season struct {
	ID              string `json:"id"`
	IsCurrentSeason bool   `json:"is_current_season"`
	IsOffseason     bool   `json:"is_offseason"`
}

// Player is a platform-scoped account.
type Player struct {
	AccountID string   `json:"account_id"`
	Name      string   `json:"name"`
	Platform  Platform `json:"platform"`
	ShardID   string   `json:"shard_id,omitempty"`
	ClanID    string   `json:"clan_id,omitempty"`
	BanType   string   `json:"ban_type,omitempty"`
}

// GameModeStats holds the raw counters for one game mode in one season.
// Losses is the provider's death counter for normal (non-ranked) play.
type GameModeStats struct {
	RoundsPlayed        int64   `json:"roundsPlayed" validate:"gte=0"`
	Wins                int64   `json:"wins" validate:"gte=0"`
	Top10s              int64   `json:"top10s" validate:"gte=0"`
	Kills               int64   `json:"kills" validate:"gte=0"`
	Assists             int64   `json:"assists" validate:"gte=0"`
	Losses              int64   `json:"losses" validate:"gte=0"`
	DBNOs               int64   `json:"dBNOs" validate:"gte=0"`
	DamageDealt         float64 `json:"damageDealt" validate:"gte=0"`
	HeadshotKills       int64   `json:"headshotKills" validate:"gte=0"`
	LongestKill         float64 `json:"longestKill" validate:"gte=0"`
	MaxKillStreaks      int64   `json:"maxKillStreaks" validate:"gte=0"`
	RoundMostKills      int64   `json:"roundMostKills" validate:"gte=0"`
	Revives             int64   `json:"revives" validate:"gte=0"`
	RoadKills           int64   `json:"roadKills" validate:"gte=0"`
	Suicides            int64   `json:"suicides" validate:"gte=0"`
	TeamKills           int64   `json:"teamKills" validate:"gte=0"`
	VehicleDestroys     int64   `json:"vehicleDestroys" validate:"gte=0"`
	Heals               int64   `json:"heals" validate:"gte=0"`
	Boosts              int64   `json:"boosts" validate:"gte=0"`
	WeaponsAcquired     int64   `json:"weaponsAcquired" validate:"gte=0"`
	WalkDistance        float64 `json:"walkDistance" validate:"gte=0"`
	RideDistance        float64 `json:"rideDistance" validate:"gte=0"`
	SwimDistance        float64 `json:"swimDistance" validate:"gte=0"`
	TimeSurvived        float64 `json:"timeSurvived" validate:"gte=0"`
	LongestTimeSurvived float64 `json:"longestTimeSurvived" validate:"gte=0"`
}

// PlayerSeason is a player's stats snapshot for one season (or "lifetime").
type PlayerSeason struct {
	AccountID     string                     `json:"account_id"`
	SeasonID      string                     `json:"season_id"`
	GameModeStats map[GameMode]GameModeStats `json:"game_mode_stats"`
}

// Tier is a ranked tier such as Gold 3.
type Tier struct {
	Tier    string `json:"tier"`
	SubTier string `json:"subTier"`
}

// RankedModeStats holds ranked counters for one mode.
type RankedModeStats struct {
	CurrentTier      Tier    `json:"currentTier"`
	CurrentRankPoint int64   `json:"currentRankPoint" validate:"gte=0"`
	BestTier         Tier    `json:"bestTier"`
	BestRankPoint    int64   `json:"bestRankPoint" validate:"gte=0"`
	RoundsPlayed     int64   `json:"roundsPlayed" validate:"gte=0"`
	AvgRank          float64 `json:"avgRank" validate:"gte=0"`
	Top10Ratio       float64 `json:"top10Ratio" validate:"gte=0"`
	WinRatio         float64 `json:"winRatio" validate:"gte=0"`
	Wins             int64   `json:"wins" validate:"gte=0"`
	Kills            int64   `json:"kills" validate:"gte=0"`
	Deaths           int64   `json:"deaths" validate:"gte=0"`
	Assists          int64   `json:"assists" validate:"gte=0"`
	KDA              float64 `json:"kda" validate:"gte=0"`
	DBNOs            int64   `json:"dBNOs" validate:"gte=0"`
	DamageDealt      float64 `json:"damageDealt" validate:"gte=0"`
	HeadshotKills    int64   `json:"headshotKills" validate:"gte=0"`
	RoundMostKills   int64   `json:"roundMostKills" validate:"gte=0"`
}

// RankedSeason is a player's ranked snapshot for one season.
type RankedSeason struct {
	AccountID string                       `json:"account_id"`
	SeasonID  string                       `json:"season_id"`
	Modes     map[GameMode]RankedModeStats `json:"ranked_game_mode_stats"`
}

// SeasonStats pairs the normal and ranked snapshots fetched together.
type SeasonStats struct {
	Season PlayerSeason `json:"season"`
	Ranked RankedSeason `json:"ranked"`
}

// StatSummary is the display-ready view of one mode.
type StatSummary struct {
	Mode         GameMode `json:"mode"`
	Label        string   `json:"label"`
	RoundsPlayed int64    `json:"rounds_played"`
	Wins         int64    `json:"wins"`
	Top10s       int64    `json:"top10s"`
	Kills        int64    `json:"kills"`
	Deaths       int64    `json:"deaths"`
	Assists      int64    `json:"assists"`

	KDA          float64 `json:"kda"`
	KD           float64 `json:"kd"`
	WinRate      float64 `json:"win_rate"`
	Top10Rate    float64 `json:"top10_rate"`
	AvgDamage    int64   `json:"avg_damage"`
	HeadshotRate float64 `json:"headshot_rate"`

	LongestKill         string `json:"longest_kill,omitempty"`
	TimeSurvived        string `json:"time_survived,omitempty"`
	LongestTimeSurvived string `json:"longest_time_survived,omitempty"`
	WalkDistance        string `json:"walk_distance,omitempty"`
	RideDistance        string `json:"ride_distance,omitempty"`
	SwimDistance        string `json:"swim_distance,omitempty"`

	// Ranked only
	Tier      string `json:"tier,omitempty"`
	RankPoint int64  `json:"rank_point,omitempty"`
}

// PlayerProfile is the result of a full player search.
type PlayerProfile struct {
	Player          Player        `json:"player"`
	Season          Season        `json:"season"`
	Stats           PlayerSeason  `json:"stats"`
	Ranked          RankedSeason  `json:"ranked"`
	AvailableModes  []GameMode    `json:"available_modes"`
	Summaries       []StatSummary `json:"summaries"`
	RankedSummaries []StatSummary `json:"ranked_summaries"`
}
