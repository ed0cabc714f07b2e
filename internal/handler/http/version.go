package http

import (
	"net/http"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	if _, err := utils.WriteJSON(w, buildInfo, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
