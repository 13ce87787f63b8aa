package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mathgames/internal/service"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Register attaches the stats routes to the mux
func (h *StatsHandler) Register(mux *http.ServeMux, m *Middleware) {
	mux.HandleFunc("POST /api/stats/session", m.RateLimit(h.RecordSession))
	mux.HandleFunc("GET /api/stats/user/{userId}", h.GetUserStats)
	mux.HandleFunc("GET /api/stats/history/{userId}", h.GetHistory)
	mux.HandleFunc("GET /api/stats/leaderboard", h.GetLeaderboard)
	mux.HandleFunc("DELETE /api/stats/reset/{userId}", m.RateLimit(h.ResetUser))
}

// recordSessionRequest is the session-save payload. Score is a pointer
// so an explicit 0 is accepted while a missing score is rejected.
type recordSessionRequest struct {
	UserID         string `json:"userId"`
	GameID         int64  `json:"gameId"`
	GameName       string `json:"gameName"`
	Category       string `json:"category"`
	Score          *int   `json:"score"`
	TimePlayed     int    `json:"timePlayed"`
	Level          int    `json:"level"`
	CorrectAnswers int    `json:"correctAnswers"`
	WrongAnswers   int    `json:"wrongAnswers"`
}

// RecordSession saves a play session and returns the updated aggregates
func (h *StatsHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	var req recordSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido", "", err)
		return
	}

	result, err := h.statsService.RecordSession(service.SessionInput{
		UserID:         req.UserID,
		GameID:         req.GameID,
		GameName:       req.GameName,
		Category:       req.Category,
		Score:          req.Score,
		TimePlayed:     req.TimePlayed,
		Level:          req.Level,
		CorrectAnswers: req.CorrectAnswers,
		WrongAnswers:   req.WrongAnswers,
	})
	if err != nil {
		respondWithServiceError(w, err, "Error saving game session")
		return
	}

	newNames := make([]string, 0, len(result.NewAchievements))
	for _, a := range result.NewAchievements {
		newNames = append(newNames, a.Name)
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Partida guardada exitosamente",
		"session": map[string]interface{}{
			"id":       result.Session.ID,
			"score":    result.Session.Score,
			"accuracy": result.Session.Accuracy,
		},
		"stats": map[string]interface{}{
			"totalGames":    result.Stats.TotalGames,
			"totalScore":    result.Stats.TotalScore,
			"currentStreak": result.Stats.CurrentStreak,
		},
		"newAchievements": newNames,
	})
}

// GetUserStats returns the full stats snapshot for a user
func (h *StatsHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	view, err := h.statsService.GetUserStats(r.PathValue("userId"))
	if err != nil {
		respondWithServiceError(w, err, "Error getting user stats")
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// GetHistory returns one page of a user's session history
func (h *StatsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	if p, err := strconv.Atoi(query.Get("page")); err == nil && p > 0 {
		page = p
	}

	limit := 10
	if l, err := strconv.Atoi(query.Get("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	var gameID int64
	if g := query.Get("gameId"); g != "" {
		parsed, err := strconv.ParseInt(g, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "gameId inválido", "", err)
			return
		}
		gameID = parsed
	}

	history, err := h.statsService.GetHistory(r.PathValue("userId"), page, limit, gameID)
	if err != nil {
		respondWithServiceError(w, err, "Error getting game history")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": history.Sessions,
		"pagination": map[string]interface{}{
			"total": history.Total,
			"page":  history.Page,
			"limit": history.Limit,
			"pages": history.Pages,
		},
	})
}

// GetLeaderboard returns the top players, optionally within a category
func (h *StatsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 10
	if l, err := strconv.Atoi(query.Get("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	entries, err := h.statsService.GetLeaderboard(limit, query.Get("category"))
	if err != nil {
		respondWithServiceError(w, err, "Error getting leaderboard")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}

// ResetUser deletes all recorded data for a user
func (h *StatsHandler) ResetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	if err := h.statsService.ResetUser(userID); err != nil {
		respondWithServiceError(w, err, "Error resetting user stats")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Estadísticas reseteadas exitosamente",
		"userId":  userID,
	})
}
