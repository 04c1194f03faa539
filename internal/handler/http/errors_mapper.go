package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/connectly-config/internal/config"
	"github.com/MKhiriev/connectly-config/internal/service"
)

var errorStatusMap = map[error]int{
	config.ErrNotInitialized: http.StatusServiceUnavailable,
	service.ErrUnknownView:   http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
