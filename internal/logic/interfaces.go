package logic

import (
	"context"

	"github.com/pubg-dashboard/stats-api/internal/models"
)

// StatsProvider is the provider surface the sequencer depends on.
// *pubg.Client satisfies it.
type StatsProvider interface {
	Seasons(ctx context.Context, shard string) ([]models.Season, error)
	PlayersByName(ctx context.Context, p models.Platform, name string) ([]models.Player, error)
	PlayerSeason(ctx context.Context, p models.Platform, accountID, seasonID string) (models.PlayerSeason, error)
	RankedSeason(ctx context.Context, p models.Platform, accountID, seasonID string) (models.RankedSeason, error)
	LifetimeStats(ctx context.Context, p models.Platform, accountID string) (models.PlayerSeason, error)
	Leaderboard(ctx context.Context, shard, seasonID string, mode models.GameMode) (models.Leaderboard, error)
}

// AcquisitionService sequences the dependent provider calls behind each
// dashboard action.
type AcquisitionService interface {
	ResolveCurrentSeason(ctx context.Context, p models.Platform) (models.Season, error)
	ResolvePlayer(ctx context.Context, nickname string, p models.Platform) (models.Player, error)
	FetchPlayerSeasonStats(ctx context.Context, accountID string, p models.Platform, seasonID string) (models.SeasonStats, error)
	FetchLifetimeStats(ctx context.Context, accountID string, p models.Platform) (models.PlayerSeason, error)
	FetchLeaderboard(ctx context.Context, p models.Platform, mode models.GameMode) (models.Leaderboard, error)
	SearchPlayer(ctx context.Context, nickname string, p models.Platform) (*models.PlayerProfile, error)
}
