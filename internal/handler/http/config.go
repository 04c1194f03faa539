package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/connectly-config/internal/config"
	"github.com/MKhiriev/connectly-config/internal/logger"
	"github.com/MKhiriev/connectly-config/internal/utils"
	"github.com/MKhiriev/connectly-config/models"
)

func (h *Handler) getBrand(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	brand, err := h.services.ConfigService.Brand(r.Context())
	if err != nil {
		log.Err(err).Msg("error getting brand config")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, brand, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing brand config")
	}
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cfg, err := h.services.ConfigService.Config(r.Context())
	if err != nil {
		log.Err(err).Msg("error getting config")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, cfg, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing config")
	}
}

func (h *Handler) getButtons(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	buttons, err := h.services.ConfigService.Buttons(r.Context())
	if err != nil {
		log.Err(err).Msg("error getting buttons config")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, buttons, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing buttons config")
	}
}

func (h *Handler) getButtonView(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	view := chi.URLParam(r, "view")

	flags, err := h.services.ConfigService.View(r.Context(), view)
	if err != nil {
		log.Err(err).Str("view", view).Msg("error getting button view")
		writeServiceError(w, err)
		return
	}

	resp := models.ViewResponse{
		View:       view,
		Buttons:    flags,
		AnyVisible: config.AnyVisible(flags),
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing button view")
	}
}

// writeServiceError answers with the status mapped from err. Internal errors
// are not echoed to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
