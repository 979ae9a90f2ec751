package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// respondError maps an error to its HTTP status and a client-safe body. The
// underlying cause of a 5xx is logged, never sent to the client.
func respondError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode() >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("Request failed")
		}
		respondJSON(w, appErr.StatusCode(), map[string]string{"error": appErr.Message})
		return
	}

	log.Error().Err(err).Msg("Unhandled error")
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno del servidor."})
}
