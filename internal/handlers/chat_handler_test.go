// File: internal/handlers/chat_handler_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/blendchat/blendchat/internal/auth"
	"github.com/blendchat/blendchat/internal/domain"
	"github.com/blendchat/blendchat/internal/middleware"
	"github.com/blendchat/blendchat/internal/services/chat"
)

const testSecret = "handler-test-secret"

// fakeChatService is a scripted chat.Service for handler tests.
type fakeChatService struct {
	mu sync.Mutex

	createErr error
	getErr    error
	appendErr error

	lastCreate *chat.CreateChatInput
	lastAppend *chat.AppendMessageInput
}

func (f *fakeChatService) CreateChat(ctx context.Context, input chat.CreateChatInput) (*domain.Chat, error) {
	f.mu.Lock()
	f.lastCreate = &input
	f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Chat{
		ID:           "abc123XYZ_",
		Title:        domain.TitleFromMessage(input.FirstMessage),
		CreatorEmail: input.CreatorEmail,
		AccessTokens: map[string]string{input.CreatorEmail: "tok"},
	}, nil
}

func (f *fakeChatService) GetChat(ctx context.Context, chatID, email, token string) (*domain.Chat, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &domain.Chat{ID: chatID, Title: "a chat"}, nil
}

func (f *fakeChatService) AppendMessage(ctx context.Context, input chat.AppendMessageInput) (*chat.AppendResult, error) {
	f.mu.Lock()
	f.lastAppend = &input
	f.mu.Unlock()
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	msg := domain.NewUserMessage(input.ChatID, input.Text, input.SenderEmail, input.SenderName, domain.SentimentNeutral)
	return &chat.AppendResult{Message: msg}, nil
}

func (f *fakeChatService) ListChatsByCreator(ctx context.Context, creatorEmail string) ([]domain.Chat, error) {
	return []domain.Chat{{ID: "one", CreatorEmail: creatorEmail}}, nil
}

func (f *fakeChatService) SearchChats(ctx context.Context, creatorEmail, keyword string) ([]domain.Chat, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, svc chat.Service) *mux.Router {
	t.Helper()
	chatHandler, err := NewChatHandler(svc)
	require.NoError(t, err)
	sessionHandler := NewSessionHandler(svc, []byte(testSecret), time.Hour)

	r := mux.NewRouter()
	r.Use(middleware.OptionalSession([]byte(testSecret)))
	r.HandleFunc("/session", sessionHandler.CreateSession).Methods("POST")
	r.HandleFunc("/chats", sessionHandler.ListChats).Methods("GET")
	r.HandleFunc("/chats/search", sessionHandler.SearchChats).Methods("GET")
	r.HandleFunc("/chat", chatHandler.CreateChat).Methods("POST")
	r.HandleFunc("/chat/{id}", chatHandler.GetChat).Methods("GET")
	r.HandleFunc("/chat/{id}", chatHandler.AppendMessage).Methods("POST")

	bridge := r.PathPrefix("/chat/{id}/email").Subrouter()
	bridge.Use(middleware.RequireBridgeKey("bridge-secret"))
	bridge.HandleFunc("", chatHandler.BridgeAppend).Methods("POST")
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	r := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(r)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func Test_CreateChat_Created(t *testing.T) {
	req := require.New(t)
	svc := &fakeChatService{}
	router := newTestRouter(t, svc)

	w := postJSON(t, router, "/chat", map[string]interface{}{
		"creatorEmail":  "a@x.com",
		"creatorName":   "Alice",
		"invitedEmails": []string{"b@x.com"},
		"firstMessage":  "hello",
		"includeGPT":    true,
	}, nil)

	req.Equal(http.StatusCreated, w.Code)
	req.NotNil(svc.lastCreate)
	req.True(svc.lastCreate.IncludeGPT)

	var got domain.Chat
	req.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	req.Equal("abc123XYZ_", got.ID)
}

func Test_CreateChat_BadRequests(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, &fakeChatService{})

	// malformed body
	r := httptest.NewRequest("POST", "/chat", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	req.Equal(http.StatusBadRequest, w.Code)

	// missing first message
	w = postJSON(t, router, "/chat", map[string]interface{}{"creatorEmail": "a@x.com"}, nil)
	req.Equal(http.StatusBadRequest, w.Code)

	// no creator identity anywhere
	w = postJSON(t, router, "/chat", map[string]interface{}{"firstMessage": "hi"}, nil)
	req.Equal(http.StatusBadRequest, w.Code)

	// invalid invitee address
	w = postJSON(t, router, "/chat", map[string]interface{}{
		"creatorEmail": "a@x.com", "firstMessage": "hi", "invitedEmails": []string{"not-an-email"},
	}, nil)
	req.Equal(http.StatusBadRequest, w.Code)
}

func Test_CreateChat_IdentityFromSessionCookie(t *testing.T) {
	req := require.New(t)
	svc := &fakeChatService{}
	router := newTestRouter(t, svc)

	token, err := auth.GenerateSessionToken(auth.SessionClaims{Email: "a@x.com", Name: "Alice"}, []byte(testSecret), time.Hour)
	req.NoError(err)

	w := postJSON(t, router, "/chat", map[string]interface{}{"firstMessage": "hi"}, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	})

	req.Equal(http.StatusCreated, w.Code)
	req.Equal("a@x.com", svc.lastCreate.CreatorEmail)
	req.Equal("Alice", svc.lastCreate.CreatorName)
}

func Test_GetChat_StatusMapping(t *testing.T) {
	req := require.New(t)

	svc := &fakeChatService{getErr: chat.NewUnauthorizedError("abc")}
	router := newTestRouter(t, svc)
	r := httptest.NewRequest("GET", "/chat/abc?email=b@x.com&token=wrong", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	req.Equal(http.StatusUnauthorized, w.Code)

	svc = &fakeChatService{getErr: chat.NewNotFoundError("missing")}
	router = newTestRouter(t, svc)
	r = httptest.NewRequest("GET", "/chat/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	req.Equal(http.StatusNotFound, w.Code)
}

func Test_AppendMessage_PassesTokenThrough(t *testing.T) {
	req := require.New(t)
	svc := &fakeChatService{}
	router := newTestRouter(t, svc)

	w := postJSON(t, router, "/chat/abc", map[string]interface{}{
		"text":        "what's 2+2?",
		"senderEmail": "b@x.com",
		"senderName":  "Bob",
		"token":       "tok-b",
	}, nil)

	req.Equal(http.StatusOK, w.Code)
	req.NotNil(svc.lastAppend)
	req.Equal("abc", svc.lastAppend.ChatID)
	req.Equal("tok-b", svc.lastAppend.AccessToken)
	req.Equal(domain.SenderUser, svc.lastAppend.Kind)
}

func Test_BridgeAppend_RequiresSharedKey(t *testing.T) {
	req := require.New(t)
	svc := &fakeChatService{}
	router := newTestRouter(t, svc)

	body := map[string]interface{}{"senderEmail": "b@x.com", "text": "replying by mail"}

	// missing key is rejected before the handler runs
	w := postJSON(t, router, "/chat/abc/email", body, nil)
	req.Equal(http.StatusUnauthorized, w.Code)
	req.Nil(svc.lastAppend)

	// wrong key too
	w = postJSON(t, router, "/chat/abc/email", body, func(r *http.Request) {
		r.Header.Set(middleware.BridgeKeyHeader, "nope")
	})
	req.Equal(http.StatusUnauthorized, w.Code)
	req.Nil(svc.lastAppend)

	// correct key reaches the handler as an email-kind append
	w = postJSON(t, router, "/chat/abc/email", body, func(r *http.Request) {
		r.Header.Set(middleware.BridgeKeyHeader, "bridge-secret")
	})
	req.Equal(http.StatusOK, w.Code)
	req.NotNil(svc.lastAppend)
	req.Equal(domain.SenderEmail, svc.lastAppend.Kind)
}

func Test_Session_ListChats(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, &fakeChatService{})

	// no session cookie
	r := httptest.NewRequest("GET", "/chats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	req.Equal(http.StatusUnauthorized, w.Code)

	// create a session, reuse its cookie
	w = postJSON(t, router, "/session", map[string]interface{}{"email": "a@x.com", "name": "Alice"}, nil)
	req.Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	req.NotEmpty(cookies)

	r = httptest.NewRequest("GET", "/chats", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	req.Equal(http.StatusOK, w.Code)

	var chats []domain.Chat
	req.NoError(json.Unmarshal(w.Body.Bytes(), &chats))
	req.Len(chats, 1)
	req.Equal("a@x.com", chats[0].CreatorEmail)
}
