package state

import (
	"sync"

	"github.com/pubg-dashboard/stats-api/internal/logic"
	"github.com/pubg-dashboard/stats-api/internal/models"
)

// Store serializes transitions on a single State. Completions may arrive from
// any goroutine.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore(p models.Platform) *Store {
	return &Store{state: New(p)}
}

// Dispatch applies a and returns the resulting state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

// Ticket describes a request issued by Begin.
type Ticket struct {
	Generation uint64
	Platform   models.Platform
	State      State
}

// Begin issues a new generation for op and moves it to pending. Any earlier
// request for op is superseded. An empty p binds the request to the current
// platform, read under the same lock so a concurrent SetPlatform either
// retires it or happens after it.
func (s *Store) Begin(op logic.Op, p models.Platform) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	bound := p == ""
	if bound {
		p = s.state.Platform
	}
	gen := s.state.Latest(op) + 1
	s.state = Reduce(s.state, Action{Op: op, Phase: Pending, Generation: gen, PlatformBound: bound})
	return Ticket{Generation: gen, Platform: p, State: s.state}
}

func (s *Store) FulfillPlayer(gen uint64, profile *models.PlayerProfile) State {
	return s.Dispatch(Action{Op: logic.OpPlayer, Phase: Fulfilled, Generation: gen, Player: profile})
}

func (s *Store) FulfillSeason(gen uint64, season models.Season) State {
	return s.Dispatch(Action{Op: logic.OpSeason, Phase: Fulfilled, Generation: gen, Season: &season})
}

func (s *Store) FulfillLeaderboard(gen uint64, lb models.Leaderboard) State {
	return s.Dispatch(Action{Op: logic.OpLeaderboard, Phase: Fulfilled, Generation: gen, Leaderboard: &lb})
}

// Reject records err as the displayed failure for op.
func (s *Store) Reject(op logic.Op, gen uint64, err error) State {
	return s.Dispatch(Action{
		Op:         op,
		Phase:      Rejected,
		Generation: gen,
		Error:      logic.UserMessage(op, err),
		ErrorKind:  logic.KindOf(err),
	})
}

func (s *Store) SetPlatform(p models.Platform) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SetPlatform(s.state, p)
	return s.state
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
