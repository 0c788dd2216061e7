// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/blendchat/blendchat/internal/config"
	"github.com/blendchat/blendchat/internal/handlers"
	"github.com/blendchat/blendchat/internal/middleware"
	"github.com/blendchat/blendchat/internal/ratelimit"
	chatrepo "github.com/blendchat/blendchat/internal/repository/chat"
	messagerepo "github.com/blendchat/blendchat/internal/repository/message"
	"github.com/blendchat/blendchat/internal/services"
	"github.com/blendchat/blendchat/internal/services/ai"
	"github.com/blendchat/blendchat/internal/services/chat"
	"github.com/blendchat/blendchat/internal/services/email"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&chatrepo.Record{}, &messagerepo.Record{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	chatRepository := chatrepo.NewChatRepository(db)
	messageRepository := messagerepo.NewMessageRepository(db)

	// --- Services ---
	// The AI and email services are optional: without credentials the chat
	// core runs with those features degraded to no-ops.
	var aiService ai.Service
	if cfg.OpenAIAPIKey != "" {
		aiConfig := ai.DefaultConfig()
		aiConfig.APIKey = cfg.OpenAIAPIKey
		aiConfig.BaseURL = cfg.OpenAIBaseURL
		aiConfig.Model = cfg.AIModel
		aiService, err = ai.NewService(aiConfig, ai.NewOpenAIProvider(aiConfig), services.NewLogger("ai"))
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize AI Service: %v", err)
		}
	} else {
		log.Println("OPENAI_API_KEY not set; AI replies disabled")
	}

	var emailService email.Service
	if cfg.SMTPHost != "" {
		emailConfig := email.DefaultConfig()
		emailConfig.SMTPHost = cfg.SMTPHost
		emailConfig.SMTPPort = cfg.SMTPPort
		emailConfig.SMTPUser = cfg.SMTPUsername
		emailConfig.SMTPPass = cfg.SMTPPassword
		emailConfig.FromAddress = cfg.FromAddress
		emailConfig.SiteURL = cfg.SiteURL
		emailConfig.ReplyDomain = cfg.ReplyDomain
		emailService, err = email.NewService(emailConfig, email.NewSMTPProvider(emailConfig), services.NewLogger("email"))
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize Email Service: %v", err)
		}
	} else {
		log.Println("SMTP_HOST not set; invitations disabled")
	}

	chatConfig := chat.DefaultConfig()
	chatConfig.ContextWindowSize = cfg.ContextWindowSize
	chatConfig.InsightsThreshold = cfg.InsightsThreshold
	chatService, err := chat.NewService(chatConfig, chatRepository, messageRepository,
		aiService, emailService, services.NewLogger("chat"))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Service: %v", err)
	}

	// --- Handlers ---
	chatHandler, err := handlers.NewChatHandler(chatService)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Handler: %v", err)
	}
	sessionHandler := handlers.NewSessionHandler(chatService, []byte(cfg.JWTSecretKey), cfg.SessionTTL)
	healthHandler := handlers.NewHealthHandler(aiService, emailService)

	// --- Rate Limiters ---
	writeLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultWriteConfig())
	defer writeLimiter.Close()
	bridgeLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.BridgeConfig())
	defer bridgeLimiter.Close()

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(middleware.CORS)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/session", sessionHandler.CreateSession).Methods("POST")

	// --- Session Routes ---
	sessionRoutes := r.PathPrefix("/chats").Subrouter()
	sessionRoutes.Use(middleware.RequireSession([]byte(cfg.JWTSecretKey)))
	sessionRoutes.HandleFunc("", sessionHandler.ListChats).Methods("GET")
	sessionRoutes.HandleFunc("/search", sessionHandler.SearchChats).Methods("GET")

	// --- Chat Routes (session optional, per-chat tokens downstream) ---
	chatRoutes := r.PathPrefix("/chat").Subrouter()
	chatRoutes.Use(middleware.OptionalSession([]byte(cfg.JWTSecretKey)))

	limitWrites := middleware.RateLimitMiddleware(writeLimiter, "chat-write")
	chatRoutes.Handle("", limitWrites(http.HandlerFunc(chatHandler.CreateChat))).Methods("POST")
	chatRoutes.HandleFunc("/{id}", chatHandler.GetChat).Methods("GET")
	chatRoutes.Handle("/{id}", limitWrites(http.HandlerFunc(chatHandler.AppendMessage))).Methods("POST")

	// --- Bridge Route (shared secret, no session) ---
	bridgeRoutes := r.PathPrefix("/chat/{id}/email").Subrouter()
	bridgeRoutes.Use(middleware.RateLimitMiddleware(bridgeLimiter, "bridge"))
	bridgeRoutes.Use(middleware.RequireBridgeKey(cfg.BridgeKey))
	bridgeRoutes.HandleFunc("", chatHandler.BridgeAppend).Methods("POST")

	// --- Server Configuration ---
	port := ":8080"
	if cfg.ServerPort != "" {
		port = ":" + cfg.ServerPort
	}
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("==================================================")
	log.Printf("BlendChat - invite-based group chat")
	log.Printf("==================================================")
	log.Printf("Server starting on port %s", port)
	log.Printf("Local access: http://localhost%s", port)
	log.Printf("AI assistant: %v | Invitations: %v", aiService != nil, emailService != nil)
	log.Printf("==================================================")

	// --- Start Server in Goroutine ---
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
