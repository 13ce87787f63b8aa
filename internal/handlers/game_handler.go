package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mathgames/internal/models"
	"mathgames/internal/service"
)

// GameHandler handles game catalog HTTP requests
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// Register attaches the catalog routes to the mux
func (h *GameHandler) Register(mux *http.ServeMux, m *Middleware) {
	mux.HandleFunc("GET /api/games", h.ListGames)
	mux.HandleFunc("GET /api/games/{id}", h.GetGame)
	mux.HandleFunc("POST /api/games", m.RateLimit(h.CreateGame))
	mux.HandleFunc("PUT /api/games/{id}", m.RateLimit(h.UpdateGame))
	mux.HandleFunc("DELETE /api/games/{id}", m.RateLimit(h.DeleteGame))
	mux.HandleFunc("POST /api/games/{id}/play", m.RateLimit(h.RecordPlay))
}

// ListGames returns the active catalog
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames()
	if err != nil {
		respondWithServiceError(w, err, "Error listing games")
		return
	}
	respondWithJSON(w, http.StatusOK, games)
}

// GetGame returns one game by ID
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGameID(w, r)
	if !ok {
		return
	}

	game, err := h.gameService.GetGame(id)
	if err != nil {
		respondWithServiceError(w, err, "Error getting game")
		return
	}
	respondWithJSON(w, http.StatusOK, game)
}

// createGameRequest is the catalog create payload
type createGameRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
}

// CreateGame adds a new game to the catalog
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido", "", err)
		return
	}

	game, err := h.gameService.CreateGame(&models.Game{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
	})
	if err != nil {
		respondWithServiceError(w, err, "Error creating game")
		return
	}
	respondWithJSON(w, http.StatusCreated, game)
}

// updateGameRequest is the catalog update payload; absent fields stay unchanged
type updateGameRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Difficulty  *string `json:"difficulty"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateGame applies a partial update to a catalog entry
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGameID(w, r)
	if !ok {
		return
	}

	var req updateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido", "", err)
		return
	}

	game, err := h.gameService.UpdateGame(id, service.GameUpdate{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithServiceError(w, err, "Error updating game")
		return
	}
	respondWithJSON(w, http.StatusOK, game)
}

// DeleteGame soft-deletes a catalog entry
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGameID(w, r)
	if !ok {
		return
	}

	if err := h.gameService.DeleteGame(id); err != nil {
		respondWithServiceError(w, err, "Error deleting game")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Juego eliminado exitosamente"})
}

// RecordPlay increments a game's players counter
func (h *GameHandler) RecordPlay(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGameID(w, r)
	if !ok {
		return
	}

	game, err := h.gameService.RecordPlay(id)
	if err != nil {
		respondWithServiceError(w, err, "Error recording play")
		return
	}
	respondWithJSON(w, http.StatusOK, game)
}

func parseGameID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "ID de juego inválido", "", err)
		return 0, false
	}
	return id, true
}
