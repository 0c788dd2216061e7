// File: internal/handlers/session_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/blendchat/blendchat/internal/auth"
	"github.com/blendchat/blendchat/internal/middleware"
	"github.com/blendchat/blendchat/internal/services/chat"
)

type SessionHandler struct {
	ChatService chat.Service
	secretKey   []byte
	sessionTTL  time.Duration
	validate    *validator.Validate
}

func NewSessionHandler(cs chat.Service, secretKey []byte, sessionTTL time.Duration) *SessionHandler {
	return &SessionHandler{
		ChatService: cs,
		secretKey:   secretKey,
		sessionTTL:  sessionTTL,
		validate:    validator.New(),
	}
}

type createSessionRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// CreateSession issues the identity cookie. There is no password: the session
// only names who the caller claims to be, and chat access is still gated by
// per-chat tokens.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	token, err := auth.GenerateSessionToken(auth.SessionClaims{
		Email: req.Email,
		Name:  req.Name,
	}, h.secretKey, h.sessionTTL)
	if err != nil {
		writeError(w, "Could not create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{
		"email": req.Email,
		"name":  req.Name,
	})
}

// ListChats returns the session identity's own chats, most recent first.
func (h *SessionHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	chats, err := h.ChatService.ListChatsByCreator(r.Context(), session.Email)
	if err != nil {
		writeChatError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

// SearchChats filters the session identity's chats by the q keyword.
func (h *SessionHandler) SearchChats(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	chats, err := h.ChatService.SearchChats(r.Context(), session.Email, r.URL.Query().Get("q"))
	if err != nil {
		writeChatError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}
