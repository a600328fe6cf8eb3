package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pubg-dashboard/stats-api/internal/dashboard"
	"github.com/pubg-dashboard/stats-api/internal/models"
)

// CreateSession opens a dashboard session. The body is optional and defaults
// the platform to kakao.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	p := models.PlatformKakao
	if req.Platform != "" {
		p = models.Platform(req.Platform)
	}

	s := h.sessions.Create(p)
	h.jsonResponse(w, http.StatusCreated, models.CreateSessionResponse{SessionID: s.ID})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.sessionError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, s.View())
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Evict(chi.URLParam(r, "id")) {
		h.errorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetSessionPlatform(w http.ResponseWriter, r *http.Request) {
	var req models.SetPlatformRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	st, err := h.sessions.SetPlatform(chi.URLParam(r, "id"), models.Platform(req.Platform))
	if err != nil {
		h.sessionError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, st)
}

// SessionSearch starts a player search; poll the session for the result.
func (h *Handler) SessionSearch(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	d, err := h.sessions.SearchPlayer(chi.URLParam(r, "id"), req.Nickname)
	h.dispatched(w, d, err)
}

func (h *Handler) SessionLoadSeason(w http.ResponseWriter, r *http.Request) {
	d, err := h.sessions.LoadSeason(chi.URLParam(r, "id"))
	h.dispatched(w, d, err)
}

func (h *Handler) SessionLoadLeaderboard(w http.ResponseWriter, r *http.Request) {
	var req models.LeaderboardRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	d, err := h.sessions.LoadLeaderboard(chi.URLParam(r, "id"), models.Platform(req.Platform), models.GameMode(req.GameMode))
	h.dispatched(w, d, err)
}

// dispatched answers 202 with the pending snapshot.
func (h *Handler) dispatched(w http.ResponseWriter, d dashboard.Dispatch, err error) {
	if err != nil {
		h.sessionError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusAccepted, d)
}
