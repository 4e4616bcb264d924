package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/utils"
	"github.com/MKhiriev/go-media-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	req := bodyFrom[models.RegisterRequest](r)

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", registeredUser.ID).Msg("user registered")
	h.writeAuthResponse(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req := bodyFrom[models.LoginRequest](r)

	foundUser, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", foundUser.ID).Msg("user successfully logged in")
	h.writeAuthResponse(w, r, foundUser, http.StatusOK)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{User: user, Token: token.SignedString}, status)
}
