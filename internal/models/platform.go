package models

import (
	"fmt"
	"strings"
)

// Platform is the user-facing platform selector.
type Platform string

const (
	PlatformKakao   Platform = "kakao"
	PlatformSteam   Platform = "steam"
	PlatformConsole Platform = "console"
)

// kakaoLeaderboardShard is the provider shard that serves kakao leaderboards.
const kakaoLeaderboardShard = "pc-kakao"

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformKakao, PlatformSteam, PlatformConsole}

// ParsePlatform validates a platform name.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PlatformKakao, PlatformSteam, PlatformConsole:
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// Shard returns the provider shard used for player and season lookups.
func (p Platform) Shard() string {
	return string(p)
}

// LeaderboardShard returns the provider shard used for leaderboard lookups.
// The kakao leaderboard lives under a different shard name than kakao players.
func (p Platform) LeaderboardShard() string {
	if p == PlatformKakao {
		return kakaoLeaderboardShard
	}
	return string(p)
}

// GameMode is a party-size/perspective variant.
type GameMode string

const (
	ModeSolo     GameMode = "solo"
	ModeDuo      GameMode = "duo"
	ModeSquad    GameMode = "squad"
	ModeSoloFPP  GameMode = "solo-fpp"
	ModeDuoFPP   GameMode = "duo-fpp"
	ModeSquadFPP GameMode = "squad-fpp"
)

var (
	tppModes = []GameMode{ModeSolo, ModeDuo, ModeSquad}
	allModes = []GameMode{ModeSolo, ModeDuo, ModeSquad, ModeSoloFPP, ModeDuoFPP, ModeSquadFPP}
)

var modeLabels = map[GameMode]string{
	ModeSolo:     "솔로",
	ModeDuo:      "듀오",
	ModeSquad:    "스쿼드",
	ModeSoloFPP:  "솔로 FPP",
	ModeDuoFPP:   "듀오 FPP",
	ModeSquadFPP: "스쿼드 FPP",
}

// ParseGameMode validates a game mode name.
func ParseGameMode(s string) (GameMode, error) {
	m := GameMode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modeLabels[m]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown game mode %q", s)
}

// Label returns the display label for the mode.
func (m GameMode) Label() string {
	if l, ok := modeLabels[m]; ok {
		return l
	}
	return string(m)
}

// ModesFor returns the modes selectable on a platform. Kakao has no
// first-person variants.
func ModesFor(p Platform) []GameMode {
	src := allModes
	if p == PlatformKakao {
		src = tppModes
	}
	out := make([]GameMode, len(src))
	copy(out, src)
	return out
}

// PlatformModes is the selector catalogue served to clients.
type PlatformModes struct {
	Platform Platform   `json:"platform"`
	Modes    []ModeInfo `json:"modes"`
}

type ModeInfo struct {
	Mode  GameMode `json:"mode"`
	Label string   `json:"label"`
}
