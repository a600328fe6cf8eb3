package pubg

import (
	"context"
	"net/url"

	"github.com/pubg-dashboard/stats-api/internal/models"
)

const lifetimeSeasonID = "lifetime"

// Seasons lists the seasons of a shard in provider order.
func (c *Client) Seasons(ctx context.Context, shard string) ([]models.Season, error) {
	var doc seasonsDocument
	if err := c.get(ctx, "seasons", shard, "seasons", nil, &doc); err != nil {
		return nil, err
	}

	seasons := make([]models.Season, 0, len(doc.Data))
	for _, s := range doc.Data {
		seasons = append(seasons, s.toModel())
	}
	return seasons, nil
}

// PlayersByName looks up accounts by exact name.
func (c *Client) PlayersByName(ctx context.Context, p models.Platform, name string) ([]models.Player, error) {
	q := url.Values{}
	q.Set("filter[playerNames]", name)

	var doc playersDocument
	if err := c.get(ctx, "players", p.Shard(), "players", q, &doc); err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, len(doc.Data))
	for _, r := range doc.Data {
		players = append(players, r.toModel(p))
	}
	return players, nil
}

// PlayerSeason fetches normal-mode stats for one account and season.
func (c *Client) PlayerSeason(ctx context.Context, p models.Platform, accountID, seasonID string) (models.PlayerSeason, error) {
	path := "players/" + url.PathEscape(accountID) + "/seasons/" + url.PathEscape(seasonID)

	var doc playerSeasonDocument
	if err := c.get(ctx, "player_season", p.Shard(), path, nil, &doc); err != nil {
		return models.PlayerSeason{}, err
	}
	return models.PlayerSeason{
		AccountID:     accountID,
		SeasonID:      seasonID,
		GameModeStats: doc.Data.Attributes.GameModeStats,
	}, nil
}

// RankedSeason fetches ranked stats for one account and season.
func (c *Client) RankedSeason(ctx context.Context, p models.Platform, accountID, seasonID string) (models.RankedSeason, error) {
	path := "players/" + url.PathEscape(accountID) + "/seasons/" + url.PathEscape(seasonID) + "/ranked"

	var doc rankedDocument
	if err := c.get(ctx, "ranked", p.Shard(), path, nil, &doc); err != nil {
		return models.RankedSeason{}, err
	}
	return models.RankedSeason{
		AccountID: accountID,
		SeasonID:  seasonID,
		Modes:     doc.Data.Attributes.RankedGameModeStats,
	}, nil
}

// LifetimeStats fetches all-time keyboard/mouse stats for an account.
func (c *Client) LifetimeStats(ctx context.Context, p models.Platform, accountID string) (models.PlayerSeason, error) {
	path := "players/" + url.PathEscape(accountID) + "/seasons/" + lifetimeSeasonID
	q := url.Values{}
	q.Set("filter[gamepad]", "false")

	var doc playerSeasonDocument
	if err := c.get(ctx, "lifetime", p.Shard(), path, q, &doc); err != nil {
		return models.PlayerSeason{}, err
	}
	return models.PlayerSeason{
		AccountID:     accountID,
		SeasonID:      lifetimeSeasonID,
		GameModeStats: doc.Data.Attributes.GameModeStats,
	}, nil
}

// Leaderboard fetches the leaderboard page for a season and mode on a shard.
// The shard is passed as-is; callers apply any platform rewrite.
func (c *Client) Leaderboard(ctx context.Context, shard, seasonID string, mode models.GameMode) (models.Leaderboard, error) {
	path := "leaderboards/" + url.PathEscape(seasonID) + "/" + url.PathEscape(string(mode))

	var doc leaderboardDocument
	if err := c.get(ctx, "leaderboard", shard, path, nil, &doc); err != nil {
		return models.Leaderboard{}, err
	}
	return doc.toModel(shard, seasonID, mode), nil
}
