package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
	"github.com/avaldezp/pizzeria-be/internal/auth"
	"github.com/avaldezp/pizzeria-be/internal/services"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

// credentialsPayload is the body shape for /registro and /login.
type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new user registration. The response carries only the id
// and username, never the stored hash.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, apperror.NewValidation("Cuerpo de la solicitud inválido."))
		return
	}
	if payload.Username == "" || payload.Password == "" {
		respondError(w, apperror.NewValidation("Nombre de usuario y contraseña son obligatorios."))
		return
	}

	user, err := h.service.Register(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Usuario registrado exitosamente",
		"userId":   user.ID,
		"username": user.Username,
	})
}

// Login handles credential verification and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, apperror.NewValidation("Cuerpo de la solicitud inválido."))
		return
	}
	if payload.Username == "" || payload.Password == "" {
		respondError(w, apperror.NewValidation("Nombre de usuario y contraseña son obligatorios."))
		return
	}

	user, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed authentication attempt")
		respondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue token")
		respondError(w, apperror.NewInternal("Error interno del servidor al iniciar sesión.", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Autenticación exitosa",
		"token":   token,
	})
}
