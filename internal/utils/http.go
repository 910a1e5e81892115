package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data, sets the Content-Type header and the given
// status code, and writes the body. It returns the number of bytes
// written and a non-nil error only when marshaling fails, in which case
// a 500 is sent instead:
//
//	utils.WriteJSON(w, answer, http.StatusOK)
//
// Marshaling the answer payload cannot realistically fail, but the
// error is still surfaced so handlers can log it.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
