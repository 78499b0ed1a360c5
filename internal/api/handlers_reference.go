package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecosort/ecosort/internal/api/respond"
	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/services"
)

// ReferenceHandler serves the read-mostly routes: tips, rewards and the
// leaderboard, plus the admin seed endpoint behind them.
type ReferenceHandler struct {
	ref         *services.ReferenceService
	leaderboard *services.LeaderboardService
}

func NewReferenceHandler(ref *services.ReferenceService, lb *services.LeaderboardService) *ReferenceHandler {
	return &ReferenceHandler{ref: ref, leaderboard: lb}
}

// ListTips GET /api/tips?wasteType=
// The filter is not validated against the known waste types; an unrecognized
// value simply matches no tips.
func (h *ReferenceHandler) ListTips(w http.ResponseWriter, r *http.Request) {
	tips, err := h.ref.ListTips(r.Context(), r.URL.Query().Get("wasteType"))
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"tips": tips, "count": len(tips)})
}

// ListRewards GET /api/rewards
func (h *ReferenceHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.ref.ListActiveRewards(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"rewards": rewards, "count": len(rewards)})
}

// Leaderboard GET /api/leaderboard?limit=
func (h *ReferenceHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.WriteBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}
	entries, err := h.leaderboard.Top(r.Context(), limit)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries, "count": len(entries)})
}

// Seed POST /api/admin/seed
// Replaces the tips and rewards reference data wholesale. Waste items and
// profiles are never touched.
func (h *ReferenceHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tips    []*model.RecyclingTip `json:"tips"`
		Rewards []*model.Reward       `json:"rewards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.ref.ReplaceSeed(r.Context(), req.Tips, req.Rewards); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tips":    len(req.Tips),
		"rewards": len(req.Rewards),
	})
}
