package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pubg-dashboard/stats-api/internal/models"
	"github.com/pubg-dashboard/stats-api/internal/stats"
)

// DefaultKakaoSeasonID is served for kakao when no season can be resolved.
const DefaultKakaoSeasonID = "division.bro.official.2024-01"

type acquisitionService struct {
	provider StatsProvider
	logger   *zap.SugaredLogger
}

func NewAcquisitionService(provider StatsProvider, logger *zap.Logger) AcquisitionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &acquisitionService{provider: provider, logger: logger.Sugar()}
}

// ResolveCurrentSeason picks the current season, falling back to the
// offseason entry and then to the first entry. Kakao gets a fixed default
// when nothing can be resolved, including when the season fetch fails.
func (s *acquisitionService) ResolveCurrentSeason(ctx context.Context, p models.Platform) (models.Season, error) {
	seasons, err := s.provider.Seasons(ctx, p.Shard())
	if err != nil {
		if p == models.PlatformKakao {
			s.logger.Warnw("Season fetch failed, using kakao default", "platform", p, "error", err)
			return models.Season{ID: DefaultKakaoSeasonID}, nil
		}
		return models.Season{}, seasonUnresolved(err)
	}

	if season, ok := pickSeason(seasons); ok {
		return season, nil
	}
	if p == models.PlatformKakao {
		return models.Season{ID: DefaultKakaoSeasonID}, nil
	}
	return models.Season{}, ErrSeasonUnresolved
}

func pickSeason(seasons []models.Season) (models.Season, bool) {
	for _, season := range seasons {
		if season.IsCurrentSeason {
			return season, true
		}
	}
	for _, season := range seasons {
		if season.IsOffseason {
			return season, true
		}
	}
	if len(seasons) > 0 {
		return seasons[0], true
	}
	return models.Season{}, false
}

// strictCurrentSeason accepts only a season flagged as current.
func (s *acquisitionService) strictCurrentSeason(ctx context.Context, shard string) (models.Season, error) {
	seasons, err := s.provider.Seasons(ctx, shard)
	if err != nil {
		return models.Season{}, err
	}
	for _, season := range seasons {
		if season.IsCurrentSeason {
			return season, nil
		}
	}
	return models.Season{}, ErrSeasonUnresolved
}

// ResolvePlayer returns the first account the provider matched for nickname.
func (s *acquisitionService) ResolvePlayer(ctx context.Context, nickname string, p models.Platform) (models.Player, error) {
	players, err := s.provider.PlayersByName(ctx, p, nickname)
	if err != nil {
		return models.Player{}, err
	}
	if len(players) == 0 {
		return models.Player{}, ErrPlayerNotFound
	}
	return players[0], nil
}

// FetchPlayerSeasonStats fetches season stats, then ranked stats. Both calls
// must succeed; the first failure stops the sequence.
func (s *acquisitionService) FetchPlayerSeasonStats(ctx context.Context, accountID string, p models.Platform, seasonID string) (models.SeasonStats, error) {
	season, err := s.provider.PlayerSeason(ctx, p, accountID, seasonID)
	if err != nil {
		return models.SeasonStats{}, fmt.Errorf("season stats: %w", err)
	}

	ranked, err := s.provider.RankedSeason(ctx, p, accountID, seasonID)
	if err != nil {
		return models.SeasonStats{}, fmt.Errorf("ranked stats: %w", err)
	}

	return models.SeasonStats{Season: season, Ranked: ranked}, nil
}

func (s *acquisitionService) FetchLifetimeStats(ctx context.Context, accountID string, p models.Platform) (models.PlayerSeason, error) {
	return s.provider.LifetimeStats(ctx, p, accountID)
}

// FetchLeaderboard resolves the current season on the leaderboard shard and
// fetches that season's page for mode. There is no season fallback here.
func (s *acquisitionService) FetchLeaderboard(ctx context.Context, p models.Platform, mode models.GameMode) (models.Leaderboard, error) {
	shard := p.LeaderboardShard()

	season, err := s.strictCurrentSeason(ctx, shard)
	if err != nil {
		return models.Leaderboard{}, err
	}

	lb, err := s.provider.Leaderboard(ctx, shard, season.ID, mode)
	if err != nil {
		s.logger.Infow("Leaderboard fetch failed", "shard", shard, "season", season.ID, "mode", mode, "error", err)
		return models.Leaderboard{}, err
	}
	return lb, nil
}

// SearchPlayer runs season -> player -> stats, stopping at the first failing
// stage, and attaches the derived summaries.
func (s *acquisitionService) SearchPlayer(ctx context.Context, nickname string, p models.Platform) (*models.PlayerProfile, error) {
	season, err := s.strictCurrentSeason(ctx, p.Shard())
	if err != nil {
		return nil, err
	}

	player, err := s.ResolvePlayer(ctx, nickname, p)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Player resolved", "nickname", player.Name, "accountId", player.AccountID, "platform", p, "season", season.ID)

	seasonStats, err := s.FetchPlayerSeasonStats(ctx, player.AccountID, p, season.ID)
	if err != nil {
		return nil, err
	}

	return &models.PlayerProfile{
		Player:          player,
		Season:          season,
		Stats:           seasonStats.Season,
		Ranked:          seasonStats.Ranked,
		AvailableModes:  models.ModesFor(p),
		Summaries:       stats.SummarizeSeason(p, seasonStats.Season),
		RankedSummaries: stats.SummarizeRankedSeason(seasonStats.Ranked),
	}, nil
}
