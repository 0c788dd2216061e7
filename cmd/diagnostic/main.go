// File: cmd/diagnostic/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blendchat/blendchat/internal/config"
	"github.com/blendchat/blendchat/internal/services"
	"github.com/blendchat/blendchat/internal/services/ai"
	"github.com/blendchat/blendchat/internal/services/email"
)

// Connectivity check for the two external providers. Run it after changing
// credentials to see which side is broken before restarting the server.
func main() {
	log.Println("--- BlendChat provider diagnostic ---")

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	checkAI(ctx, cfg)
	checkSMTP(ctx, cfg)
}

func checkAI(ctx context.Context, cfg *config.Config) {
	if cfg.OpenAIAPIKey == "" {
		fmt.Println("AI: SKIPPED (OPENAI_API_KEY not set)")
		return
	}

	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.OpenAIAPIKey
	aiConfig.BaseURL = cfg.OpenAIBaseURL
	aiConfig.Model = cfg.AIModel

	svc, err := ai.NewService(aiConfig, ai.NewOpenAIProvider(aiConfig), services.NewLogger("diagnostic"))
	if err != nil {
		fmt.Printf("AI: FAILED to construct service: %v\n", err)
		return
	}

	start := time.Now()
	reply, err := svc.GenerateReply(ctx, nil, "Reply with the single word: pong")
	if err != nil {
		fmt.Printf("AI: FAILED (%v)\n", err)
		return
	}
	fmt.Printf("AI: OK in %v, model %s replied %q\n", time.Since(start).Round(time.Millisecond), aiConfig.Model, reply)
}

func checkSMTP(ctx context.Context, cfg *config.Config) {
	if cfg.SMTPHost == "" {
		fmt.Println("SMTP: SKIPPED (SMTP_HOST not set)")
		return
	}

	emailConfig := email.DefaultConfig()
	emailConfig.SMTPHost = cfg.SMTPHost
	emailConfig.SMTPPort = cfg.SMTPPort
	emailConfig.SMTPUser = cfg.SMTPUsername
	emailConfig.SMTPPass = cfg.SMTPPassword
	emailConfig.FromAddress = cfg.FromAddress
	emailConfig.SiteURL = cfg.SiteURL

	provider := email.NewSMTPProvider(emailConfig)

	start := time.Now()
	if err := provider.HealthCheck(ctx); err != nil {
		fmt.Printf("SMTP: FAILED (%v)\n", err)
		return
	}
	fmt.Printf("SMTP: OK in %v, %s:%d accepts connections\n",
		time.Since(start).Round(time.Millisecond), cfg.SMTPHost, cfg.SMTPPort)
}
