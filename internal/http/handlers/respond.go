package handlers

import (
	"encoding/json"
	"net/http"
)

// writeData writes the uniform {"data": ...} envelope every resource
// response uses, success and error alike.
func writeData(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, map[string]any{"data": v})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
