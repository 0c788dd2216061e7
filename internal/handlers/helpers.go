// File: internal/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/blendchat/blendchat/internal/services/chat"
)

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeChatError maps the chat error taxonomy onto HTTP status codes:
// VALIDATION → 400, UNAUTHORIZED → 401, NOT_FOUND → 404, anything else → 500.
func writeChatError(w http.ResponseWriter, err error) {
	var chatErr *chat.ChatError
	if errors.As(err, &chatErr) {
		switch chatErr.Type {
		case chat.ErrTypeValidation:
			writeError(w, chatErr.Message, http.StatusBadRequest)
			return
		case chat.ErrTypeUnauthorized:
			writeError(w, "Unauthorized", http.StatusUnauthorized)
			return
		case chat.ErrTypeNotFound:
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
	}
	log.Printf("[Handler] Internal error: %v", err)
	writeError(w, "Internal server error", http.StatusInternalServerError)
}
