package handlers

import "net/http"

// Info serves the root health/info payload
func Info(w http.ResponseWriter, r *http.Request, allowedOrigins []string) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "API de juegos funcionando correctamente",
		"version":        "1.0.0",
		"allowedOrigins": allowedOrigins,
	})
}
