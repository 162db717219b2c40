package httpx

import (
	"encoding/json"
	"net/http"
)

// APIError is the error body of every failed request. Domain errors leave Code empty.
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, APIError{
		Error: msg,
		Code:  code,
	})
}
