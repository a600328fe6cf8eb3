package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/pubg-dashboard/stats-api/internal/dashboard"
	"github.com/pubg-dashboard/stats-api/internal/logic"
	"github.com/pubg-dashboard/stats-api/internal/pubg"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]bool{}
	if h.redis != nil {
		checks["redis"] = h.redis.Ping(r.Context()).Err() == nil
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}

	queueDepth := 0
	if h.pool != nil {
		queueDepth = h.pool.QueueDepth()
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":      allHealthy,
		"checks":     checks,
		"queueDepth": queueDepth,
	})
}

// RateLimitMiddleware rejects clients that exceed the inbound budget. A
// limiter backend failure lets the request through.
func (h *Handler) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		ok, err := h.limiter.Allow(r.Context(), ip)
		if err != nil {
			h.logger.Warnw("Rate limiter unavailable", "error", err)
		} else if !ok {
			h.errorResponse(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequestLogger logs one line per request.
func (h *Handler) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Infow("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"requestId", middleware.GetReqID(r.Context()),
		)
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// acquisitionError renders a failed provider-backed operation.
func (h *Handler) acquisitionError(w http.ResponseWriter, op logic.Op, err error) {
	kind := logic.KindOf(err)
	status := statusFor(kind, err)
	if status >= http.StatusInternalServerError {
		h.logger.Errorw("Acquisition failed", "op", op, "kind", kind, "error", err)
	}
	h.jsonResponse(w, status, map[string]string{
		"error": logic.UserMessage(op, err),
		"kind":  string(kind),
	})
}

func statusFor(kind logic.ErrorKind, err error) int {
	switch kind {
	case logic.KindPlayerNotFound:
		return http.StatusNotFound
	case logic.KindRateLimited:
		return http.StatusTooManyRequests
	case logic.KindBadRequest:
		return http.StatusBadRequest
	}

	var apiErr *pubg.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// sessionError renders failures that happen before an action is dispatched.
func (h *Handler) sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboard.ErrSessionNotFound):
		h.errorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, dashboard.ErrBusy):
		h.errorResponse(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Errorw("Session action failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads a bounded JSON body into dst and validates it.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
