package utils

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// ErrorResponse is the uniform JSON error body returned by every endpoint.
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteError writes the uniform error body with the given status and label
func WriteError(w http.ResponseWriter, status int, label, message string) {
	WriteJSON(w, status, ErrorResponse{
		Timestamp: time.Now().Format(time.RFC3339),
		Status:    status,
		Error:     label,
		Message:   message,
	})
}
