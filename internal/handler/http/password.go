package http

import (
	"errors"
	"net/http"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/utils"
	"github.com/akwaabahomes/passcheck/models"
)

// evaluate scores a candidate password against the server policy with the
// request's overrides applied on top.
func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.EvaluateRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, log, err, "invalid evaluate request")
		return
	}

	result, err := h.services.StrengthService.Evaluate(ctx, req)
	if err != nil {
		writeError(w, log, err, "error evaluating password")
		return
	}

	if _, err = utils.WriteJSON(w, models.NewEvaluateResponse(result), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing evaluation")
	}
}

// generate returns a random password. An empty body selects the default
// length.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.GenerateRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		writeError(w, log, err, "invalid generate request")
		return
	}

	generated, err := h.services.StrengthService.Generate(ctx, req.Length)
	if err != nil {
		writeError(w, log, err, "error generating password")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if _, err = utils.WriteJSON(w, generated, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing generated password")
	}
}

func (h *Handler) policy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, h.services.StrengthService.Policy(r.Context()), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing policy")
	}
}
