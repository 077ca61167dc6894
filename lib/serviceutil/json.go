package serviceutil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes `body` as the json response with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("failed to write json response", "err", err)
	}
}

// WriteText writes a plain text response with the given status.
func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// ErrorBody is the {"error": "..."} shape used by most endpoints.
type ErrorBody struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorBody{Error: message})
}

// ReadJSON decodes the request body into out.
func ReadJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
