// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// methodNotAllowed replaces chi's 405 answer with a plain 404, so a known
// path hit with an unsupported method looks like an unknown route.
func methodNotAllowed(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("func", "methodNotAllowed").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Strs("allowed", allowedMethods(router, r.URL.Path)).
			Msg("method is not registered for route")

		http.NotFound(w, r)
	}
}

// allowedMethods lists the methods router serves for path.
func allowedMethods(router chi.Routes, path string) []string {
	var allowed []string
	for _, method := range routeMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
