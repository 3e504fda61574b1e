package handlers

import (
	"net/http"

	"ecolearn/internal/service"
)

// LeaderboardHandler serves the ranked standings
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard returns the board for the requested scope
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	scope := r.URL.Query().Get("scope")
	respondWithJSON(w, http.StatusOK, h.leaderboardService.Standings(scope))
}
