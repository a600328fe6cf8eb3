// Package state holds the dashboard's application state and the pure
// transitions that move it through each operation's pending, fulfilled and
// rejected phases.
package state

import (
	"github.com/pubg-dashboard/stats-api/internal/logic"
	"github.com/pubg-dashboard/stats-api/internal/models"
)

// Phase is a step in an operation's lifecycle.
type Phase int

const (
	Pending Phase = iota
	Fulfilled
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Ops lists the tracked operations.
var Ops = []logic.Op{logic.OpPlayer, logic.OpSeason, logic.OpLeaderboard}

const numOps = 3

func opIndex(op logic.Op) int {
	switch op {
	case logic.OpPlayer:
		return 0
	case logic.OpSeason:
		return 1
	case logic.OpLeaderboard:
		return 2
	}
	return -1
}

// State is the dashboard state for one session. It is a value: transitions
// return a new State and never mutate the one passed in. Payload pointers are
// shared between copies and must be treated as read-only.
type State struct {
	Platform      models.Platform       `json:"platform"`
	Loading       bool                  `json:"loading"`
	Error         string                `json:"error,omitempty"`
	ErrorKind     logic.ErrorKind       `json:"error_kind,omitempty"`
	Player        *models.PlayerProfile `json:"player,omitempty"`
	CurrentSeason *models.Season        `json:"current_season,omitempty"`
	Leaderboard   *models.Leaderboard   `json:"leaderboard,omitempty"`

	latest   [numOps]uint64
	inFlight [numOps]bool
	bound    [numOps]bool
}

// New returns the initial state for platform.
func New(p models.Platform) State {
	return State{Platform: p}
}

// Latest returns the most recent generation issued for op.
func (s State) Latest(op logic.Op) uint64 {
	i := opIndex(op)
	if i < 0 {
		return 0
	}
	return s.latest[i]
}

// InFlight reports whether op has a pending request whose result is still wanted.
func (s State) InFlight(op logic.Op) bool {
	i := opIndex(op)
	if i < 0 {
		return false
	}
	return s.inFlight[i]
}

// Action is one lifecycle transition. Exactly one payload is set on a
// Fulfilled action, matching Op.
type Action struct {
	Op         logic.Op
	Phase      Phase
	Generation uint64

	// PlatformBound marks a Pending request issued for the session's
	// platform rather than an explicit one.
	PlatformBound bool

	Player      *models.PlayerProfile
	Season      *models.Season
	Leaderboard *models.Leaderboard

	Error     string
	ErrorKind logic.ErrorKind
}

// Reduce applies a to s. Completions carrying a generation other than the
// latest one issued for their op are discarded and s is returned unchanged.
func Reduce(s State, a Action) State {
	i := opIndex(a.Op)
	if i < 0 {
		return s
	}

	switch a.Phase {
	case Pending:
		if a.Generation <= s.latest[i] {
			return s
		}
		s.latest[i] = a.Generation
		s.inFlight[i] = true
		s.bound[i] = a.PlatformBound
		s.Error = ""
		s.ErrorKind = ""

	case Fulfilled:
		if !s.accepts(i, a.Generation) {
			return s
		}
		s.inFlight[i] = false
		s.Error = ""
		s.ErrorKind = ""
		switch a.Op {
		case logic.OpPlayer:
			s.Player = a.Player
		case logic.OpSeason:
			s.CurrentSeason = a.Season
		case logic.OpLeaderboard:
			s.Leaderboard = a.Leaderboard
		}

	case Rejected:
		if !s.accepts(i, a.Generation) {
			return s
		}
		s.inFlight[i] = false
		s.Error = a.Error
		s.ErrorKind = a.ErrorKind

	default:
		return s
	}

	s.Loading = s.anyInFlight()
	return s
}

// SetPlatform switches the selected platform. In-flight requests that were
// issued for the session's platform have their generations retired and their
// completions will be discarded. Requests for an explicit platform keep
// running.
func SetPlatform(s State, p models.Platform) State {
	if s.Platform == p {
		return s
	}
	s.Platform = p
	for i := range s.inFlight {
		if s.inFlight[i] && s.bound[i] {
			s.latest[i]++
			s.inFlight[i] = false
		}
	}
	s.Loading = s.anyInFlight()
	return s
}

func (s State) accepts(i int, gen uint64) bool {
	return s.inFlight[i] && s.latest[i] == gen
}

func (s State) anyInFlight() bool {
	for _, f := range s.inFlight {
		if f {
			return true
		}
	}
	return false
}
