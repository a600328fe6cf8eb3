package handlers

import (
	"context"
	"sync"

	"github.com/pubg-dashboard/stats-api/internal/models"
	"github.com/pubg-dashboard/stats-api/internal/worker"
)

// MockAcquisitionService
type MockAcquisitionService struct {
	ResolveCurrentSeasonFunc   func(ctx context.Context, p models.Platform) (models.Season, error)
	ResolvePlayerFunc          func(ctx context.Context, nickname string, p models.Platform) (models.Player, error)
	FetchPlayerSeasonStatsFunc func(ctx context.Context, accountID string, p models.Platform, seasonID string) (models.SeasonStats, error)
	FetchLifetimeStatsFunc     func(ctx context.Context, accountID string, p models.Platform) (models.PlayerSeason, error)
	FetchLeaderboardFunc       func(ctx context.Context, p models.Platform, mode models.GameMode) (models.Leaderboard, error)
	SearchPlayerFunc           func(ctx context.Context, nickname string, p models.Platform) (*models.PlayerProfile, error)
}

func (m *MockAcquisitionService) ResolveCurrentSeason(ctx context.Context, p models.Platform) (models.Season, error) {
	if m.ResolveCurrentSeasonFunc != nil {
		return m.ResolveCurrentSeasonFunc(ctx, p)
	}
	return models.Season{ID: "mock-season", IsCurrentSeason: true}, nil
}

func (m *MockAcquisitionService) ResolvePlayer(ctx context.Context, nickname string, p models.Platform) (models.Player, error) {
	if m.ResolvePlayerFunc != nil {
		return m.ResolvePlayerFunc(ctx, nickname, p)
	}
	return models.Player{AccountID: "account.mock", Name: nickname, Platform: p}, nil
}

func (m *MockAcquisitionService) FetchPlayerSeasonStats(ctx context.Context, accountID string, p models.Platform, seasonID string) (models.SeasonStats, error) {
	if m.FetchPlayerSeasonStatsFunc != nil {
		return m.FetchPlayerSeasonStatsFunc(ctx, accountID, p, seasonID)
	}
	return models.SeasonStats{
		Season: models.PlayerSeason{AccountID: accountID, SeasonID: seasonID},
		Ranked: models.RankedSeason{AccountID: accountID, SeasonID: seasonID},
	}, nil
}

func (m *MockAcquisitionService) FetchLifetimeStats(ctx context.Context, accountID string, p models.Platform) (models.PlayerSeason, error) {
	if m.FetchLifetimeStatsFunc != nil {
		return m.FetchLifetimeStatsFunc(ctx, accountID, p)
	}
	return models.PlayerSeason{AccountID: accountID, SeasonID: "lifetime"}, nil
}

func (m *MockAcquisitionService) FetchLeaderboard(ctx context.Context, p models.Platform, mode models.GameMode) (models.Leaderboard, error) {
	if m.FetchLeaderboardFunc != nil {
		return m.FetchLeaderboardFunc(ctx, p, mode)
	}
	return models.Leaderboard{Shard: p.LeaderboardShard(), SeasonID: "mock-season", GameMode: mode}, nil
}

func (m *MockAcquisitionService) SearchPlayer(ctx context.Context, nickname string, p models.Platform) (*models.PlayerProfile, error) {
	if m.SearchPlayerFunc != nil {
		return m.SearchPlayerFunc(ctx, nickname, p)
	}
	return &models.PlayerProfile{Player: models.Player{AccountID: "account.mock", Name: nickname, Platform: p}}, nil
}

// MockJobQueue runs jobs inline unless Reject is set
type MockJobQueue struct {
	Reject bool

	mu   sync.Mutex
	jobs int
}

func (m *MockJobQueue) Enqueue(job worker.Job) bool {
	if m.Reject {
		return false
	}
	m.mu.Lock()
	m.jobs++
	m.mu.Unlock()
	job.Run(context.Background())
	return true
}

func (m *MockJobQueue) QueueDepth() int { return 0 }

// MockLimiter
type MockLimiter struct {
	AllowFunc func(ctx context.Context, key string) (bool, error)
}

func (m *MockLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key)
	}
	return true, nil
}
