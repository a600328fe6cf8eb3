package pubg

import (
	"github.com/pubg-dashboard/stats-api/internal/models"
)

// JSON:API documents as the provider sends them. Each is validated before
// its contents are converted to models.

type errorDocument struct {
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

type seasonsDocument struct {
	Data []seasonResource `json:"data" validate:"dive"`
}

type seasonResource struct {
	Type       string `json:"type" validate:"eq=season"`
	ID         string `json:"id" validate:"required"`
	Attributes struct {
		IsCurrentSeason bool `json:"isCurrentSeason"`
		IsOffseason     bool `json:"isOffseason"`
	} `json:"attributes"`
}

type playersDocument struct {
	Data []playerResource `json:"data" validate:"dive"`
}

type playerResource struct {
	Type       string `json:"type" validate:"eq=player"`
	ID         string `json:"id" validate:"required"`
	Attributes struct {
		Name    string `json:"name" validate:"required"`
		ShardID string `json:"shardId"`
		ClanID  string `json:"clanId"`
		BanType string `json:"banType"`
	} `json:"attributes"`
}

type playerSeasonDocument struct {
	Data struct {
		Type       string `json:"type" validate:"eq=playerSeason"`
		Attributes struct {
			GameModeStats map[models.GameMode]models.GameModeStats `json:"gameModeStats" validate:"dive"`
		} `json:"attributes"`
	} `json:"data"`
}

type rankedDocument struct {
	Data struct {
		Type       string `json:"type" validate:"eq=rankedplayerstats"`
		Attributes struct {
			RankedGameModeStats map[models.GameMode]models.RankedModeStats `json:"rankedGameModeStats" validate:"dive"`
		} `json:"attributes"`
	} `json:"data"`
}

type leaderboardDocument struct {
	Data struct {
		Type       string `json:"type" validate:"eq=leaderboard"`
		ID         string `json:"id"`
		Attributes struct {
			ShardID  string `json:"shardId"`
			GameMode string `json:"gameMode"`
			SeasonID string `json:"seasonId"`
		} `json:"attributes"`
	} `json:"data"`
	Included []leaderboardPlayer `json:"included" validate:"dive"`
}

type leaderboardPlayer struct {
	Type       string `json:"type" validate:"eq=player"`
	ID         string `json:"id" validate:"required"`
	Attributes struct {
		Name  string `json:"name" validate:"required"`
		Rank  int    `json:"rank"`
		Stats struct {
			RankPoints    float64     `json:"rankPoints" validate:"gte=0"`
			Games         int64       `json:"games" validate:"gte=0"`
			Wins          int64       `json:"wins" validate:"gte=0"`
			Kills         int64       `json:"kills" validate:"gte=0"`
			KDA           float64     `json:"kda" validate:"gte=0"`
			AverageDamage float64     `json:"averageDamage" validate:"gte=0"`
			Tier          models.Tier `json:"tier"`
		} `json:"stats"`
	} `json:"attributes"`
}

func (r seasonResource) toModel() models.Season {
	return models.Season{
		ID:              r.ID,
		IsCurrentSeason: r.Attributes.IsCurrentSeason,
		IsOffseason:     r.Attributes.IsOffseason,
	}
}

func (r playerResource) toModel(p models.Platform) models.Player {
	return models.Player{
		AccountID: r.ID,
		Name:      r.Attributes.Name,
		Platform:  p,
		ShardID:   r.Attributes.ShardID,
		ClanID:    r.Attributes.ClanID,
		BanType:   r.Attributes.BanType,
	}
}

func (d leaderboardDocument) toModel(shard, seasonID string, mode models.GameMode) models.Leaderboard {
	lb := models.Leaderboard{
		Shard:    shard,
		SeasonID: seasonID,
		GameMode: mode,
		Entries:  make([]models.LeaderboardEntry, 0, len(d.Included)),
	}
	for i, p := range d.Included {
		st := p.Attributes.Stats
		entry := models.LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   p.ID,
			PlayerName: p.Attributes.Name,
			RankPoints: st.RankPoints,
			Games:      st.Games,
			Wins:       st.Wins,
			Kills:      st.Kills,
			KDA:        st.KDA,
			AvgDamage:  st.AverageDamage,
		}
		if st.Tier.Tier != "" {
			entry.Tier = st.Tier.Tier
			if st.Tier.SubTier != "" {
				entry.Tier += " " + st.Tier.SubTier
			}
		}
		lb.Entries = append(lb.Entries, entry)
	}
	return lb
}
