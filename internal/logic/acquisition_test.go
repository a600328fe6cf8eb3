package logic

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/pubg-dashboard/stats-api/internal/models"
	"github.com/pubg-dashboard/stats-api/internal/pubg"
	"go.uber.org/zap"
)

func TestResolveCurrentSeason(t *testing.T) {
	fetchErr := &pubg.APIError{StatusCode: 500, Detail: "boom"}

	tests := []struct {
		name     string
		platform models.Platform
		seasons  []models.Season
		fetchErr error
		wantID   string
		wantErr  error
	}{
		{
			name:     "Current season wins",
			platform: models.PlatformSteam,
			seasons: []models.Season{
				{ID: "s1", IsOffseason: true},
				{ID: "s2", IsCurrentSeason: true},
			},
			wantID: "s2",
		},
		{
			name:     "Offseason fallback on kakao",
			platform: models.PlatformKakao,
			seasons:  []models.Season{{ID: "s1", IsOffseason: true}},
			wantID:   "s1",
		},
		{
			name:     "First entry fallback",
			platform: models.PlatformConsole,
			seasons:  []models.Season{{ID: "a"}, {ID: "b"}},
			wantID:   "a",
		},
		{
			name:     "Empty list on kakao uses default",
			platform: models.PlatformKakao,
			seasons:  []models.Season{},
			wantID:   DefaultKakaoSeasonID,
		},
		{
			name:     "Empty list on steam fails",
			platform: models.PlatformSteam,
			seasons:  []models.Season{},
			wantErr:  ErrSeasonUnresolved,
		},
		{
			name:     "Fetch failure on kakao uses default",
			platform: models.PlatformKakao,
			fetchErr: fetchErr,
			wantID:   DefaultKakaoSeasonID,
		},
		{
			name:     "Fetch failure on steam fails",
			platform: models.PlatformSteam,
			fetchErr: fetchErr,
			wantErr:  ErrSeasonUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockProvider{
				SeasonsFunc: func(ctx context.Context, shard string) ([]models.Season, error) {
					if shard != tt.platform.Shard() {
						t.Errorf("shard = %q, want %q", shard, tt.platform.Shard())
					}
					return tt.seasons, tt.fetchErr
				},
			}
			s := NewAcquisitionService(mock, zap.NewNop())

			got, err := s.ResolveCurrentSeason(context.Background(), tt.platform)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("season = %q, want %q", got.ID, tt.wantID)
			}
			if len(mock.Calls) != 1 {
				t.Errorf("calls = %v, want exactly one request", mock.Calls)
			}
		})
	}
}

func TestResolveCurrentSeason_FetchFailureKeepsCause(t *testing.T) {
	mock := &MockProvider{
		SeasonsFunc: func(context.Context, string) ([]models.Season, error) {
			return nil, &pubg.APIError{StatusCode: 401, Detail: "API key invalid or missing"}
		},
	}
	s := NewAcquisitionService(mock, zap.NewNop())

	_, err := s.ResolveCurrentSeason(context.Background(), models.PlatformSteam)
	var apiErr *pubg.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want wrapped *APIError", err)
	}
	if KindOf(err) != KindSeasonUnresolved {
		t.Errorf("KindOf = %s", KindOf(err))
	}
}

func TestResolvePlayer(t *testing.T) {
	t.Run("First match", func(t *testing.T) {
		mock := &MockProvider{
			PlayersByNameFunc: func(ctx context.Context, p models.Platform, name string) ([]models.Player, error) {
				return []models.Player{{AccountID: "account.1", Name: name}, {AccountID: "account.2", Name: name}}, nil
			},
		}
		got, err := NewAcquisitionService(mock, nil).ResolvePlayer(context.Background(), "Taco", models.PlatformSteam)
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if got.AccountID != "account.1" {
			t.Errorf("AccountID = %q, want account.1", got.AccountID)
		}
	})

	t.Run("Empty result", func(t *testing.T) {
		mock := &MockProvider{
			PlayersByNameFunc: func(context.Context, models.Platform, string) ([]models.Player, error) {
				return []models.Player{}, nil
			},
		}
		_, err := NewAcquisitionService(mock, nil).ResolvePlayer(context.Background(), "ghost", models.PlatformKakao)
		if !errors.Is(err, ErrPlayerNotFound) {
			t.Errorf("error = %v, want ErrPlayerNotFound", err)
		}
	})
}

func TestFetchPlayerSeasonStats(t *testing.T) {
	t.Run("Both succeed", func(t *testing.T) {
		mock := &MockProvider{}
		got, err := NewAcquisitionService(mock, nil).FetchPlayerSeasonStats(context.Background(), "account.1", models.PlatformSteam, "s1")
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if got.Season.SeasonID != "s1" || got.Ranked.SeasonID != "s1" {
			t.Errorf("got %+v", got)
		}
		want := []string{"player_season:s1", "ranked:s1"}
		if !reflect.DeepEqual(mock.Calls, want) {
			t.Errorf("calls = %v, want %v", mock.Calls, want)
		}
	})

	t.Run("Both fail", func(t *testing.T) {
		seasonErr := &pubg.APIError{StatusCode: 503, Detail: "Service Unavailable"}
		mock := &MockProvider{
			PlayerSeasonFunc: func(context.Context, models.Platform, string, string) (models.PlayerSeason, error) {
				return models.PlayerSeason{}, seasonErr
			},
			RankedSeasonFunc: func(context.Context, models.Platform, string, string) (models.RankedSeason, error) {
				return models.RankedSeason{}, &pubg.APIError{StatusCode: 404, Detail: "Not Found"}
			},
		}
		_, err := NewAcquisitionService(mock, nil).FetchPlayerSeasonStats(context.Background(), "account.1", models.PlatformSteam, "s1")
		if !errors.Is(err, seasonErr) {
			t.Fatalf("error = %v, want the season error", err)
		}
		if want := []string{"player_season:s1"}; !reflect.DeepEqual(mock.Calls, want) {
			t.Errorf("calls = %v, want ranked skipped", mock.Calls)
		}
	})

	t.Run("Ranked fails", func(t *testing.T) {
		rankedErr := &pubg.APIError{StatusCode: 404, Detail: "Not Found"}
		mock := &MockProvider{
			RankedSeasonFunc: func(context.Context, models.Platform, string, string) (models.RankedSeason, error) {
				return models.RankedSeason{}, rankedErr
			},
		}
		got, err := NewAcquisitionService(mock, nil).FetchPlayerSeasonStats(context.Background(), "account.1", models.PlatformSteam, "s1")
		if !errors.Is(err, rankedErr) {
			t.Fatalf("error = %v, want ranked error", err)
		}
		if !reflect.DeepEqual(got, models.SeasonStats{}) {
			t.Errorf("partial result leaked: %+v", got)
		}
	})
}

func TestFetchLeaderboard_KakaoShardRewrite(t *testing.T) {
	mock := &MockProvider{
		SeasonsFunc: seasonsOf(models.Season{ID: "s7", IsCurrentSeason: true}),
	}
	lb, err := NewAcquisitionService(mock, nil).FetchLeaderboard(context.Background(), models.PlatformKakao, models.ModeSquad)
	if err != nil {
		t.Fatalf("error = %v", err)
	}

	want := []string{"seasons:pc-kakao", "leaderboard:pc-kakao:s7"}
	if !reflect.DeepEqual(mock.Calls, want) {
		t.Errorf("calls = %v, want %v", mock.Calls, want)
	}
	if lb.Shard != "pc-kakao" {
		t.Errorf("shard = %q", lb.Shard)
	}
}

func TestFetchLeaderboard_NoFallback(t *testing.T) {
	tests := []struct {
		name     string
		platform models.Platform
		seasons  []models.Season
	}{
		{"Kakao offseason only", models.PlatformKakao, []models.Season{{ID: "s1", IsOffseason: true}}},
		{"Kakao empty", models.PlatformKakao, nil},
		{"Steam first only", models.PlatformSteam, []models.Season{{ID: "s1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockProvider{SeasonsFunc: seasonsOf(tt.seasons...)}
			_, err := NewAcquisitionService(mock, nil).FetchLeaderboard(context.Background(), tt.platform, models.ModeSolo)
			if !errors.Is(err, ErrSeasonUnresolved) {
				t.Errorf("error = %v, want ErrSeasonUnresolved", err)
			}
			if len(mock.Calls) != 1 {
				t.Errorf("calls = %v, leaderboard must not be fetched", mock.Calls)
			}
		})
	}
}

func TestFetchLeaderboard_ProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantMsg string
	}{
		{"Rate limited", 429, MsgRateLimited},
		{"Bad request", 400, MsgBadRequest},
		{"Other", 503, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockProvider{
				SeasonsFunc: seasonsOf(models.Season{ID: "s1", IsCurrentSeason: true}),
				LeaderboardFunc: func(context.Context, string, string, models.GameMode) (models.Leaderboard, error) {
					return models.Leaderboard{}, &pubg.APIError{StatusCode: tt.status, Detail: "Service Unavailable"}
				},
			}
			_, err := NewAcquisitionService(mock, nil).FetchLeaderboard(context.Background(), models.PlatformSteam, models.ModeDuo)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := UserMessage(OpLeaderboard, err); got != tt.wantMsg {
				t.Errorf("UserMessage = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestSearchPlayer_Pipeline(t *testing.T) {
	mock := &MockProvider{
		SeasonsFunc: seasonsOf(models.Season{ID: "s1"}, models.Season{ID: "s2", IsCurrentSeason: true}),
		PlayersByNameFunc: func(ctx context.Context, p models.Platform, name string) ([]models.Player, error) {
			return []models.Player{{AccountID: "account.9", Name: name, Platform: p}}, nil
		},
		PlayerSeasonFunc: func(ctx context.Context, p models.Platform, accountID, seasonID string) (models.PlayerSeason, error) {
			if accountID != "account.9" || seasonID != "s2" {
				t.Errorf("PlayerSeason(%q, %q)", accountID, seasonID)
			}
			return models.PlayerSeason{
				AccountID: accountID, SeasonID: seasonID,
				GameModeStats: map[models.GameMode]models.GameModeStats{
					models.ModeSquad: {RoundsPlayed: 4, Wins: 1, Kills: 6, Losses: 3},
				},
			}, nil
		},
	}

	got, err := NewAcquisitionService(mock, zap.NewNop()).SearchPlayer(context.Background(), "Taco", models.PlatformKakao)
	if err != nil {
		t.Fatalf("error = %v", err)
	}

	if mock.Calls[0] != "seasons:kakao" || mock.Calls[1] != "players:kakao" {
		t.Errorf("stage order = %v", mock.Calls)
	}
	if got.Season.ID != "s2" || got.Player.AccountID != "account.9" {
		t.Errorf("profile = %+v", got)
	}
	if len(got.Summaries) != 3 {
		t.Fatalf("summaries = %d, want 3 for kakao", len(got.Summaries))
	}
	squad := got.Summaries[2]
	if squad.Mode != models.ModeSquad || squad.KD != 2 || squad.WinRate != 25 {
		t.Errorf("squad summary = %+v", squad)
	}
}

func TestSearchPlayer_ShortCircuits(t *testing.T) {
	t.Run("No current season", func(t *testing.T) {
		mock := &MockProvider{SeasonsFunc: seasonsOf(models.Season{ID: "s1", IsOffseason: true})}
		_, err := NewAcquisitionService(mock, nil).SearchPlayer(context.Background(), "Taco", models.PlatformKakao)
		if !errors.Is(err, ErrSeasonUnresolved) {
			t.Fatalf("error = %v", err)
		}
		if len(mock.Calls) != 1 {
			t.Errorf("calls = %v, pipeline should stop after seasons", mock.Calls)
		}
	})

	t.Run("Player not found", func(t *testing.T) {
		mock := &MockProvider{SeasonsFunc: seasonsOf(models.Season{ID: "s1", IsCurrentSeason: true})}
		_, err := NewAcquisitionService(mock, nil).SearchPlayer(context.Background(), "ghost", models.PlatformSteam)
		if !errors.Is(err, ErrPlayerNotFound) {
			t.Fatalf("error = %v", err)
		}
		if len(mock.Calls) != 2 {
			t.Errorf("calls = %v, pipeline should stop after player lookup", mock.Calls)
		}
	})
}

func TestFetchLifetimeStats(t *testing.T) {
	mock := &MockProvider{}
	got, err := NewAcquisitionService(mock, nil).FetchLifetimeStats(context.Background(), "account.1", models.PlatformSteam)
	if err != nil || got.SeasonID != "lifetime" {
		t.Errorf("got %+v, %v", got, err)
	}
}
