// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/connectly-config/internal/utils"
)

// CheckHTTPMethod returns a handler to be registered with
// [chi.Mux.MethodNotAllowed]. Where chi would answer 405 for a known path
// requested with an unregistered method, it answers 404, so a route exists
// only for its registered methods.
//
// Parameterised patterns are matched through [chi.Mux.Match]. A request that
// does match a handler is served by router as usual.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
