package main

import (
	"net/http"
	"strconv"
)

// datasetWarnings flags per-site environment load problems on every API
// response so the frontend can show a warning banner regardless of which
// endpoint it hit first. The failing sites themselves are listed by
// /api/environment/summary.
func (a *App) datasetWarnings(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if issues := a.store.Environment().Issues; len(issues) > 0 {
			w.Header().Set("X-Environment-Warnings", strconv.Itoa(len(issues)))
		}
		next.ServeHTTP(w, r)
	})
}
