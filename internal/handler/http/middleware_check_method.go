// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
//
// Chi calls it when a path matches but the method does not, for example
// GET /api/delete_user/{id}. The caller then gets the same 404 answer as for
// an unknown path, so admin and account routes cannot be discovered by
// probing methods. Should a route for the method exist after all (a
// pattern registered by a mounted sub-router), the request is routed
// normally.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		http.NotFound(w, r)
	}
}
