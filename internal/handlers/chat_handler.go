// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/blendchat/blendchat/internal/domain"
	"github.com/blendchat/blendchat/internal/middleware"
	"github.com/blendchat/blendchat/internal/services/chat"
)

type ChatHandler struct {
	ChatService chat.Service
	validate    *validator.Validate
}

func NewChatHandler(cs chat.Service) (*ChatHandler, error) {
	if cs == nil {
		return nil, errors.New("chat service is required")
	}
	return &ChatHandler{
		ChatService: cs,
		validate:    validator.New(),
	}, nil
}

type createChatRequest struct {
	CreatorEmail  string   `json:"creatorEmail" validate:"omitempty,email"`
	CreatorName   string   `json:"creatorName"`
	InvitedEmails []string `json:"invitedEmails" validate:"dive,email"`
	FirstMessage  string   `json:"firstMessage" validate:"required"`
	IncludeGPT    bool     `json:"includeGPT"`
}

// CreateChat opens a new conversation. Creator identity comes from the body
// or, when absent, from the session cookie.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req createChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.CreatorEmail == "" {
		if session, ok := middleware.SessionFromContext(r.Context()); ok {
			req.CreatorEmail = session.Email
			if req.CreatorName == "" {
				req.CreatorName = session.Name
			}
		}
	}
	if req.CreatorEmail == "" {
		writeError(w, "Creator email is required", http.StatusBadRequest)
		return
	}

	created, err := h.ChatService.CreateChat(r.Context(), chat.CreateChatInput{
		CreatorEmail:  req.CreatorEmail,
		CreatorName:   req.CreatorName,
		InvitedEmails: req.InvitedEmails,
		FirstMessage:  req.FirstMessage,
		IncludeGPT:    req.IncludeGPT,
	})
	if err != nil {
		writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetChat returns a chat with its messages. Access is checked against the
// (email, token) pair from the invitation link.
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]
	email := r.URL.Query().Get("email")
	token := r.URL.Query().Get("token")

	if email == "" {
		if session, ok := middleware.SessionFromContext(r.Context()); ok {
			email = session.Email
		}
	}

	found, err := h.ChatService.GetChat(r.Context(), chatID, email, token)
	if err != nil {
		writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, found)
}

type appendMessageRequest struct {
	Text        string `json:"text" validate:"required"`
	SenderEmail string `json:"senderEmail" validate:"omitempty,email"`
	SenderName  string `json:"senderName"`
	Token       string `json:"token"`
}

// AppendMessage adds one turn to a chat and returns both the stored message
// and, for AI-enabled chats, the assistant's reply.
func (h *ChatHandler) AppendMessage(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	var req appendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.SenderEmail == "" {
		if session, ok := middleware.SessionFromContext(r.Context()); ok {
			req.SenderEmail = session.Email
			if req.SenderName == "" {
				req.SenderName = session.Name
			}
		}
	}

	result, err := h.ChatService.AppendMessage(r.Context(), chat.AppendMessageInput{
		ChatID:      chatID,
		Text:        req.Text,
		SenderEmail: req.SenderEmail,
		SenderName:  req.SenderName,
		AccessToken: req.Token,
		Kind:        domain.SenderUser,
	})
	if err != nil {
		writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type bridgeDeliveryRequest struct {
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	SenderName  string `json:"senderName"`
	Text        string `json:"text" validate:"required"`
}

// BridgeAppend ingests an email reply forwarded by the inbound-mail bridge.
// The shared-secret check happens in middleware before this handler runs.
func (h *ChatHandler) BridgeAppend(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	var req bridgeDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.ChatService.AppendMessage(r.Context(), chat.AppendMessageInput{
		ChatID:      chatID,
		Text:        req.Text,
		SenderEmail: req.SenderEmail,
		SenderName:  req.SenderName,
		Kind:        domain.SenderEmail,
	})
	if err != nil {
		writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
