package http

import (
	"fmt"
	"net/http"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/utils"
	"github.com/akwaabahomes/passcheck/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, log, err, "invalid register request")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, log, err, "user registration failed")
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

// login answers with a bearer token and tells the client whether the
// password has to be rotated before anything else.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, log, err, "invalid login request")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, log, err, "user login failed")
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Bool("must_change_password", foundUser.MustChangePassword).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.LoginResponse{PasswordExpired: foundUser.MustChangePassword}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// changePassword replaces the authenticated user's password. It answers 204
// on success, 422 with the evaluation when the new password is too weak and
// 409 when it was used recently.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(ErrNoUserInContext).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, log, err, "invalid change password request")
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req); err != nil {
		writeError(w, log, err, "password change failed")
		return
	}

	log.Info().Int64("user_id", userID).Msg("password changed")
	w.WriteHeader(http.StatusNoContent)
}
