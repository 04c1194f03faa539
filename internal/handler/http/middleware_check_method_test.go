// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init so no services
// are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/brand", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/config/buttons/{view}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.URLParam(r, "view")))
	})
	router.Delete("/api/cache", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "registered GET passes through", method: http.MethodGet, path: "/brand", expectedStatus: http.StatusOK},
		{name: "registered DELETE passes through", method: http.MethodDelete, path: "/api/cache", expectedStatus: http.StatusNoContent},
		{name: "parameterised GET passes through", method: http.MethodGet, path: "/api/config/buttons/chat", expectedStatus: http.StatusOK},
		{name: "POST on GET route is 404", method: http.MethodPost, path: "/brand", expectedStatus: http.StatusNotFound},
		{name: "GET on DELETE route is 404", method: http.MethodGet, path: "/api/cache", expectedStatus: http.StatusNotFound},
		{name: "PUT on parameterised route is 404", method: http.MethodPut, path: "/api/config/buttons/chat", expectedStatus: http.StatusNotFound},
		{name: "unknown path is 404", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_DirectCallServesMatchingRoute(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	req := httptest.NewRequest(http.MethodGet, "/api/config/buttons/local", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "local", rec.Body.String())
}
