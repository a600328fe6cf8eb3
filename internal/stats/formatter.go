// Package stats turns raw provider counters into display values.
// Every function is pure; zero denominators have defined results so no
// NaN or Inf ever reaches a caller.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/pubg-dashboard/stats-api/internal/models"
)

// Counters is the subset of a mode's counters the ratios are computed from.
type Counters struct {
	Kills         int64
	Deaths        int64
	Assists       int64
	Wins          int64
	Top10s        int64
	RoundsPlayed  int64
	DamageDealt   float64
	HeadshotKills int64
}

// FromGameMode maps season counters. Losses stands in for deaths.
func FromGameMode(s models.GameModeStats) Counters {
	return Counters{
		Kills:         s.Kills,
		Deaths:        s.Losses,
		Assists:       s.Assists,
		Wins:          s.Wins,
		Top10s:        s.Top10s,
		RoundsPlayed:  s.RoundsPlayed,
		DamageDealt:   s.DamageDealt,
		HeadshotKills: s.HeadshotKills,
	}
}

// FromRanked maps ranked counters. Ranked top-10 is only reported as a ratio.
func FromRanked(s models.RankedModeStats) Counters {
	return Counters{
		Kills:         s.Kills,
		Deaths:        s.Deaths,
		Assists:       s.Assists,
		Wins:          s.Wins,
		Top10s:        int64(math.Round(s.Top10Ratio * float64(s.RoundsPlayed))),
		RoundsPlayed:  s.RoundsPlayed,
		DamageDealt:   s.DamageDealt,
		HeadshotKills: s.HeadshotKills,
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// KDA is (kills+assists)/deaths, or kills+assists when there are no deaths.
func KDA(c Counters) float64 {
	if c.Deaths == 0 {
		return float64(c.Kills + c.Assists)
	}
	return roundTo(float64(c.Kills+c.Assists)/float64(c.Deaths), 2)
}

// KD is kills/deaths, or kills when there are no deaths.
func KD(c Counters) float64 {
	if c.Deaths == 0 {
		return float64(c.Kills)
	}
	return roundTo(float64(c.Kills)/float64(c.Deaths), 2)
}

// WinRate is the percentage of rounds won.
func WinRate(c Counters) float64 {
	if c.RoundsPlayed == 0 {
		return 0
	}
	return roundTo(float64(c.Wins)/float64(c.RoundsPlayed)*100, 1)
}

// Top10Rate is the percentage of rounds finished in the top ten.
func Top10Rate(c Counters) float64 {
	if c.RoundsPlayed == 0 {
		return 0
	}
	return roundTo(float64(c.Top10s)/float64(c.RoundsPlayed)*100, 1)
}

// AvgDamage is damage per round rounded to the nearest integer.
func AvgDamage(c Counters) int64 {
	if c.RoundsPlayed == 0 {
		return 0
	}
	return int64(math.Round(c.DamageDealt / float64(c.RoundsPlayed)))
}

// HeadshotRate is the percentage of kills that were headshots.
func HeadshotRate(c Counters) float64 {
	if c.Kills == 0 {
		return 0
	}
	return roundTo(float64(c.HeadshotKills)/float64(c.Kills)*100, 1)
}

// FormatDuration renders seconds as "H시간 M분 S초", dropping leading zero units.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int64(math.Floor(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%d시간 %d분 %d초", h, m, s)
	case m > 0:
		return fmt.Sprintf("%d분 %d초", m, s)
	}
	return fmt.Sprintf("%d초", s)
}

// FormatDistance renders meters as "Xkm Ym" with both parts truncated.
func FormatDistance(meters float64) string {
	if meters < 0 || math.IsNaN(meters) {
		meters = 0
	}
	km := math.Floor(meters / 1000)
	rest := math.Floor(math.Mod(meters, 1000))
	return fmt.Sprintf("%.0fkm %.0fm", km, rest)
}

func summarizeCounters(mode models.GameMode, c Counters) models.StatSummary {
	return models.StatSummary{
		Mode:         mode,
		Label:        mode.Label(),
		RoundsPlayed: c.RoundsPlayed,
		Wins:         c.Wins,
		Top10s:       c.Top10s,
		Kills:        c.Kills,
		Deaths:       c.Deaths,
		Assists:      c.Assists,
		KDA:          KDA(c),
		KD:           KD(c),
		WinRate:      WinRate(c),
		Top10Rate:    Top10Rate(c),
		AvgDamage:    AvgDamage(c),
		HeadshotRate: HeadshotRate(c),
	}
}

// Summarize builds the display view for one season mode.
func Summarize(mode models.GameMode, s models.GameModeStats) models.StatSummary {
	out := summarizeCounters(mode, FromGameMode(s))
	out.LongestKill = fmt.Sprintf("%.0fm", math.Floor(s.LongestKill))
	out.TimeSurvived = FormatDuration(s.TimeSurvived)
	out.LongestTimeSurvived = FormatDuration(s.LongestTimeSurvived)
	out.WalkDistance = FormatDistance(s.WalkDistance)
	out.RideDistance = FormatDistance(s.RideDistance)
	out.SwimDistance = FormatDistance(s.SwimDistance)
	return out
}

// SummarizeRanked builds the display view for one ranked mode.
func SummarizeRanked(mode models.GameMode, s models.RankedModeStats) models.StatSummary {
	out := summarizeCounters(mode, FromRanked(s))
	if s.CurrentTier.Tier != "" {
		out.Tier = s.CurrentTier.Tier
		if s.CurrentTier.SubTier != "" {
			out.Tier += " " + s.CurrentTier.SubTier
		}
	}
	out.RankPoint = s.CurrentRankPoint
	return out
}

// SummarizeSeason summarizes every mode the platform offers, in selector order.
// Modes the provider did not return are reported with zero counters.
func SummarizeSeason(p models.Platform, season models.PlayerSeason) []models.StatSummary {
	modes := models.ModesFor(p)
	out := make([]models.StatSummary, 0, len(modes))
	for _, m := range modes {
		out = append(out, Summarize(m, season.GameModeStats[m]))
	}
	return out
}

// SummarizeRankedSeason summarizes the ranked modes that have been played.
func SummarizeRankedSeason(ranked models.RankedSeason) []models.StatSummary {
	modes := make([]string, 0, len(ranked.Modes))
	for m, s := range ranked.Modes {
		if s.RoundsPlayed > 0 {
			modes = append(modes, string(m))
		}
	}
	sort.Strings(modes)

	out := make([]models.StatSummary, 0, len(modes))
	for _, m := range modes {
		mode := models.GameMode(m)
		out = append(out, SummarizeRanked(mode, ranked.Modes[mode]))
	}
	return out
}
