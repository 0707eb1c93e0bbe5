package httpserver

import (
	"encoding/json"
	"net/http"
)

// Decode reads a JSON request body into v, capped at 1 MiB. On failure it
// writes the 400 response itself and returns false.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	if dec.More() {
		JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON (extra content)"})
		return false
	}
	return true
}
