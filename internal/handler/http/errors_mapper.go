package http

import (
	"errors"
	"net/http"

	"github.com/akwaabahomes/passcheck/internal/app"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/service"
	"github.com/akwaabahomes/passcheck/internal/store"
	"github.com/akwaabahomes/passcheck/internal/utils"
	"github.com/akwaabahomes/passcheck/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrPasswordPolicyViolation: http.StatusUnprocessableEntity,
	service.ErrPasswordReused:          http.StatusConflict,

	utils.ErrEmptyBody:     http.StatusBadRequest,
	utils.ErrMalformedJSON: http.StatusBadRequest,
	utils.ErrBodyTooLarge:  http.StatusRequestEntityTooLarge,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. A policy violation is
// answered with 422 and the evaluation as JSON so the caller can show what to
// fix. Server errors are logged and hidden behind the status text.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	var violation *service.PolicyViolationError
	if errors.As(err, &violation) {
		log.Info().Int("score", violation.Result.Score).Msg(msg)
		if _, werr := utils.WriteJSON(w, models.PolicyViolation{
			Error:  violation.Error(),
			Result: violation.Result,
		}, http.StatusUnprocessableEntity); werr != nil {
			log.Err(werr).Msg("error writing policy violation")
		}
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, clientMessage(err, status), status)
}

// clientMessage keeps authentication failures indistinguishable from each
// other and reports the reason for every other client error.
func clientMessage(err error, status int) string {
	if status == http.StatusUnauthorized {
		return app.MsgInvalidLoginPassword
	}
	return err.Error()
}
