package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mathgames/internal/service"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondWithJSON(w, status, map[string]string{"error": userMsg})
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondWithServiceError maps the service error taxonomy onto HTTP
// statuses: validation problems are client errors with structured
// bodies, unknown records are 404, everything else is a 500.
func respondWithServiceError(w http.ResponseWriter, err error, logMsg string) {
	var missingErr *service.MissingFieldsError
	if errors.As(err, &missingErr) {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":    "Faltan datos requeridos",
			"required": missingErr.Fields,
		})
		return
	}

	var difficultyErr *service.InvalidDifficultyError
	if errors.As(err, &difficultyErr) {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":             "Dificultad inválida",
			"validDifficulties": difficultyErr.Valid,
		})
		return
	}

	var categoryErr *service.InvalidCategoryError
	if errors.As(err, &categoryErr) {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":           "Categoría inválida",
			"validCategories": categoryErr.Valid,
		})
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		respondWithJSON(w, http.StatusNotFound, map[string]string{"error": "No encontrado"})
		return
	}

	respondWithError(w, http.StatusInternalServerError, "Error interno del servidor", logMsg, err)
}
