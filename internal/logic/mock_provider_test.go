package logic

import (
	"context"
	"sync"

	"github.com/pubg-dashboard/stats-api/internal/models"
)

// MockProvider implements StatsProvider for testing
type MockProvider struct {
	SeasonsFunc       func(ctx context.Context, shard string) ([]models.Season, error)
	PlayersByNameFunc func(ctx context.Context, p models.Platform, name string) ([]models.Player, error)
	PlayerSeasonFunc  func(ctx context.Context, p models.Platform, accountID, seasonID string) (models.PlayerSeason, error)
	RankedSeasonFunc  func(ctx context.Context, p models.Platform, accountID, seasonID string) (models.RankedSeason, error)
	LifetimeFunc      func(ctx context.Context, p models.Platform, accountID string) (models.PlayerSeason, error)
	LeaderboardFunc   func(ctx context.Context, shard, seasonID string, mode models.GameMode) (models.Leaderboard, error)

	mu    sync.Mutex
	Calls []string
}

func (m *MockProvider) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

func (m *MockProvider) Seasons(ctx context.Context, shard string) ([]models.Season, error) {
	m.record("seasons:" + shard)
	if m.SeasonsFunc != nil {
		return m.SeasonsFunc(ctx, shard)
	}
	return nil, nil
}

func (m *MockProvider) PlayersByName(ctx context.Context, p models.Platform, name string) ([]models.Player, error) {
	m.record("players:" + string(p))
	if m.PlayersByNameFunc != nil {
		return m.PlayersByNameFunc(ctx, p, name)
	}
	return nil, nil
}

func (m *MockProvider) PlayerSeason(ctx context.Context, p models.Platform, accountID, seasonID string) (models.PlayerSeason, error) {
	m.record("player_season:" + seasonID)
	if m.PlayerSeasonFunc != nil {
		return m.PlayerSeasonFunc(ctx, p, accountID, seasonID)
	}
	return models.PlayerSeason{AccountID: accountID, SeasonID: seasonID}, nil
}

func (m *MockProvider) RankedSeason(ctx context.Context, p models.Platform, accountID, seasonID string) (models.RankedSeason, error) {
	m.record("ranked:" + seasonID)
	if m.RankedSeasonFunc != nil {
		return m.RankedSeasonFunc(ctx, p, accountID, seasonID)
	}
	return models.RankedSeason{AccountID: accountID, SeasonID: seasonID}, nil
}

func (m *MockProvider) LifetimeStats(ctx context.Context, p models.Platform, accountID string) (models.PlayerSeason, error) {
	m.record("lifetime:" + accountID)
	if m.LifetimeFunc != nil {
		return m.LifetimeFunc(ctx, p, accountID)
	}
	return models.PlayerSeason{AccountID: accountID, SeasonID: "lifetime"}, nil
}

func (m *MockProvider) Leaderboard(ctx context.Context, shard, seasonID string, mode models.GameMode) (models.Leaderboard, error) {
	m.record("leaderboard:" + shard + ":" + seasonID)
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx, shard, seasonID, mode)
	}
	return models.Leaderboard{Shard: shard, SeasonID: seasonID, GameMode: mode}, nil
}

func seasonsOf(seasons ...models.Season) func(context.Context, string) ([]models.Season, error) {
	return func(context.Context, string) ([]models.Season, error) {
		return seasons, nil
	}
}
