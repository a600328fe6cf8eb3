package logic

import (
	"errors"
	"fmt"

	"github.com/pubg-dashboard/stats-api/internal/pubg"
)

var (
	ErrSeasonUnresolved = errors.New("current season could not be resolved")
	ErrPlayerNotFound   = errors.New("player not found")
)

// ErrorKind classifies a failed acquisition for display and HTTP mapping.
type ErrorKind string

const (
	KindSeasonUnresolved ErrorKind = "SeasonUnresolved"
	KindPlayerNotFound   ErrorKind = "PlayerNotFound"
	KindRateLimited      ErrorKind = "RateLimited"
	KindBadRequest       ErrorKind = "BadRequest"
	KindNetworkFailure   ErrorKind = "NetworkFailure"
	KindProviderError    ErrorKind = "ProviderError"
)

// Op names the dashboard operation an error came from. Some messages are
// remapped only for specific operations.
type Op string

const (
	OpPlayer      Op = "player"
	OpSeason      Op = "season"
	OpLeaderboard Op = "leaderboard"
)

// Fixed user-facing messages.
const (
	MsgSeasonUnresolved = "현재 시즌 정보를 가져올 수 없습니다."
	MsgPlayerNotFound   = "플레이어를 찾을 수 없습니다."
	MsgRateLimited      = "API 요청 제한에 도달했습니다. 잠시 후 다시 시도해주세요."
	MsgBadRequest       = "잘못된 요청입니다. 시즌 ID나 게임 모드를 확인해주세요."
	MsgMalformed        = "PUBG API 응답 형식이 올바르지 않습니다."
)

// KindOf classifies err. Sequencer-level kinds win over the provider cause
// they may wrap.
func KindOf(err error) ErrorKind {
	var netErr *pubg.NetworkError
	switch {
	case errors.Is(err, ErrSeasonUnresolved):
		return KindSeasonUnresolved
	case errors.Is(err, ErrPlayerNotFound):
		return KindPlayerNotFound
	case errors.Is(err, pubg.ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, pubg.ErrBadRequest):
		return KindBadRequest
	case errors.As(err, &netErr):
		return KindNetworkFailure
	}
	return KindProviderError
}

// UserMessage renders the single string shown for a failed operation.
// Leaderboard 429/400 responses get fixed messages; provider errors surface
// their detail and network failures their raw message.
func UserMessage(op Op, err error) string {
	if err == nil {
		return ""
	}

	var apiErr *pubg.APIError
	var netErr *pubg.NetworkError
	switch KindOf(err) {
	case KindSeasonUnresolved:
		return MsgSeasonUnresolved
	case KindPlayerNotFound:
		return MsgPlayerNotFound
	case KindRateLimited:
		if op == OpLeaderboard {
			return MsgRateLimited
		}
	case KindBadRequest:
		if op == OpLeaderboard {
			return MsgBadRequest
		}
	case KindNetworkFailure:
		if errors.As(err, &netErr) {
			return netErr.Error()
		}
	}

	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	if errors.Is(err, pubg.ErrMalformedResponse) {
		return MsgMalformed
	}
	return err.Error()
}

func seasonUnresolved(cause error) error {
	if cause == nil {
		return ErrSeasonUnresolved
	}
	return fmt.Errorf("%w: %w", ErrSeasonUnresolved, cause)
}
