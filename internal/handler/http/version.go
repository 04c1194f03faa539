package http

import (
	"net/http"

	"github.com/MKhiriev/connectly-config/internal/logger"
	"github.com/MKhiriev/connectly-config/internal/utils"
	"github.com/MKhiriev/connectly-config/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	if _, err := utils.WriteJSON(w, models.NewVersionResponse(buildInfo), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
