package dashboard

import (
	"context"
	"fmt"

	"github.com/pubg-dashboard/stats-api/internal/logic"
	"github.com/pubg-dashboard/stats-api/internal/models"
	"github.com/pubg-dashboard/stats-api/internal/state"
	"github.com/pubg-dashboard/stats-api/internal/worker"
)

// Dispatch acknowledges an action with its generation and the session as it
// stood once the action went pending.
type Dispatch struct {
	Generation uint64 `json:"generation"`
	Session    View   `json:"session"`
}

// SetPlatform switches the session's platform. Requests still running for the
// previous platform will not land.
func (m *Manager) SetPlatform(id string, p models.Platform) (state.State, error) {
	s, err := m.Get(id)
	if err != nil {
		return state.State{}, err
	}
	return s.store.SetPlatform(p), nil
}

// SearchPlayer runs the season, player and stats pipeline for nickname on the
// session's platform.
func (m *Manager) SearchPlayer(id, nickname string) (Dispatch, error) {
	s, err := m.Get(id)
	if err != nil {
		return Dispatch{}, err
	}

	return m.dispatch(s, logic.OpPlayer, "", "search_player", func(ctx context.Context, gen uint64, p models.Platform) error {
		profile, err := m.service.SearchPlayer(ctx, nickname, p)
		if err != nil {
			s.store.Reject(logic.OpPlayer, gen, err)
			return err
		}
		s.store.FulfillPlayer(gen, profile)
		return nil
	})
}

// LoadSeason resolves the current season for the session's platform with the
// lenient fallback used on initial load.
func (m *Manager) LoadSeason(id string) (Dispatch, error) {
	s, err := m.Get(id)
	if err != nil {
		return Dispatch{}, err
	}

	return m.dispatch(s, logic.OpSeason, "", "load_season", func(ctx context.Context, gen uint64, p models.Platform) error {
		season, err := m.service.ResolveCurrentSeason(ctx, p)
		if err != nil {
			s.store.Reject(logic.OpSeason, gen, err)
			return err
		}
		s.store.FulfillSeason(gen, season)
		return nil
	})
}

// LoadLeaderboard fetches the leaderboard for mode. An empty platform means
// the session's current one; an explicit platform survives platform switches.
func (m *Manager) LoadLeaderboard(id string, p models.Platform, mode models.GameMode) (Dispatch, error) {
	s, err := m.Get(id)
	if err != nil {
		return Dispatch{}, err
	}

	return m.dispatch(s, logic.OpLeaderboard, p, "load_leaderboard", func(ctx context.Context, gen uint64, p models.Platform) error {
		lb, err := m.service.FetchLeaderboard(ctx, p, mode)
		if err != nil {
			s.store.Reject(logic.OpLeaderboard, gen, err)
			return err
		}
		s.store.FulfillLeaderboard(gen, lb)
		return nil
	})
}

// dispatch moves op to pending and hands the completion to the pool. When the
// pool sheds the job the op is rejected right away. A panicking job rejects
// its op before the pool recovers it.
func (m *Manager) dispatch(s *Session, op logic.Op, p models.Platform, name string, run func(ctx context.Context, gen uint64, p models.Platform) error) (Dispatch, error) {
	t := s.store.Begin(op, p)
	d := Dispatch{Generation: t.Generation, Session: View{ID: s.ID, State: t.State}}

	job := worker.Job{
		Name: name,
		Run: func(ctx context.Context) error {
			defer func() {
				if r := recover(); r != nil {
					s.store.Reject(op, t.Generation, fmt.Errorf("%s: internal error", name))
					panic(r)
				}
			}()
			return run(ctx, t.Generation, t.Platform)
		},
	}
	if !m.pool.Enqueue(job) {
		s.store.Reject(op, t.Generation, ErrBusy)
		return d, ErrBusy
	}

	m.logger.Debugw("Action dispatched", "session", s.ID, "op", op, "platform", t.Platform, "generation", t.Generation)
	return d, nil
}
