package api

import (
	"encoding/json"
	"net/http"
)

// MethodNotAllowedHandler answers any known route hit with the wrong verb.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)

		_ = json.NewEncoder(w).Encode("Method not allowed on this resource")
	}
}
