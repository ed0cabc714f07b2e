// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unregistered method gets 404 instead of
// chi's 405, so callers probing /api/user/password with GET learn nothing
// about which methods exist.
//
// Only exact route patterns are compared; passcheck has no parameterised
// routes.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
