package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pubg-dashboard/stats-api/internal/logic"
	"github.com/pubg-dashboard/stats-api/internal/models"
	"github.com/pubg-dashboard/stats-api/internal/stats"
)

// ListPlatforms returns the supported platforms and the game modes each offers
// @Summary List Platforms
// @Tags Reference
// @Produce json
// @Success 200 {array} models.PlatformModes
// @Router /platforms [get]
func (h *Handler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	out := make([]models.PlatformModes, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		pm := models.PlatformModes{Platform: p}
		for _, m := range models.ModesFor(p) {
			pm.Modes = append(pm.Modes, models.ModeInfo{Mode: m, Label: m.Label()})
		}
		out = append(out, pm)
	}
	h.jsonResponse(w, http.StatusOK, out)
}

// platformParam parses the {platform} path segment, writing a 400 on failure.
func (h *Handler) platformParam(w http.ResponseWriter, r *http.Request) (models.Platform, bool) {
	p, err := models.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return p, true
}

// GetCurrentSeason resolves the platform's current season
// @Summary Current Season
// @Tags Seasons
// @Produce json
// @Param platform path string true "kakao, steam or console"
// @Success 200 {object} models.Season
// @Failure 502 {object} map[string]string
// @Router /seasons/{platform}/current [get]
func (h *Handler) GetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	p, ok := h.platformParam(w, r)
	if !ok {
		return
	}

	season, err := h.acquisition.ResolveCurrentSeason(r.Context(), p)
	if err != nil {
		h.acquisitionError(w, logic.OpSeason, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, season)
}

// SearchPlayer runs the full season, player and stats pipeline for a nickname
// @Summary Search Player
// @Tags Player
// @Produce json
// @Param platform path string true "kakao, steam or console"
// @Param nickname path string true "Exact in-game name"
// @Success 200 {object} models.PlayerProfile
// @Failure 404 {object} map[string]string
// @Router /players/{platform}/by-name/{nickname} [get]
func (h *Handler) SearchPlayer(w http.ResponseWriter, r *http.Request) {
	p, ok := h.platformParam(w, r)
	if !ok {
		return
	}
	nickname := strings.TrimSpace(chi.URLParam(r, "nickname"))
	if nickname == "" {
		h.errorResponse(w, http.StatusBadRequest, "Nickname is required")
		return
	}

	profile, err := h.acquisition.SearchPlayer(r.Context(), nickname, p)
	if err != nil {
		h.acquisitionError(w, logic.OpPlayer, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, profile)
}

type seasonStatsResponse struct {
	models.SeasonStats
	Summaries       []models.StatSummary `json:"summaries"`
	RankedSummaries []models.StatSummary `json:"ranked_summaries"`
}

// GetPlayerSeason returns season and ranked stats for a known account
// @Summary Player Season Stats
// @Tags Player
// @Produce json
// @Param platform path string true "kakao, steam or console"
// @Param accountID path string true "Account ID"
// @Param seasonID path string true "Season ID"
// @Router /players/{platform}/{accountID}/seasons/{seasonID} [get]
func (h *Handler) GetPlayerSeason(w http.ResponseWriter, r *http.Request) {
	p, ok := h.platformParam(w, r)
	if !ok {
		return
	}
	accountID := chi.URLParam(r, "accountID")
	seasonID := chi.URLParam(r, "seasonID")

	ss, err := h.acquisition.FetchPlayerSeasonStats(r.Context(), accountID, p, seasonID)
	if err != nil {
		h.acquisitionError(w, logic.OpPlayer, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, seasonStatsResponse{
		SeasonStats:     ss,
		Summaries:       stats.SummarizeSeason(p, ss.Season),
		RankedSummaries: stats.SummarizeRankedSeason(ss.Ranked),
	})
}

type lifetimeResponse struct {
	Stats     models.PlayerSeason  `json:"stats"`
	Summaries []models.StatSummary `json:"summaries"`
}

// GetLifetimeStats returns all-time stats for a known account
// @Summary Player Lifetime Stats
// @Tags Player
// @Produce json
// @Router /players/{platform}/{accountID}/lifetime [get]
func (h *Handler) GetLifetimeStats(w http.ResponseWriter, r *http.Request) {
	p, ok := h.platformParam(w, r)
	if !ok {
		return
	}
	accountID := chi.URLParam(r, "accountID")

	lifetime, err := h.acquisition.FetchLifetimeStats(r.Context(), accountID, p)
	if err != nil {
		h.acquisitionError(w, logic.OpPlayer, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, lifetimeResponse{
		Stats:     lifetime,
		Summaries: stats.SummarizeSeason(p, lifetime),
	})
}

// GetLeaderboard returns the current season leaderboard page
// @Summary Leaderboard
// @Tags Leaderboard
// @Produce json
// @Param platform path string true "kakao, steam or console"
// @Param gameMode path string true "Game mode"
// @Success 200 {object} models.Leaderboard
// @Failure 429 {object} map[string]string
// @Router /leaderboards/{platform}/{gameMode} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	p, ok := h.platformParam(w, r)
	if !ok {
		return
	}
	mode, err := models.ParseGameMode(chi.URLParam(r, "gameMode"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	lb, err := h.acquisition.FetchLeaderboard(r.Context(), p, mode)
	if err != nil {
		h.acquisitionError(w, logic.OpLeaderboard, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, lb)
}
