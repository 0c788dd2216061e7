// File: internal/handlers/health_handler.go
package handlers

import (
	"net/http"

	"github.com/blendchat/blendchat/internal/services/ai"
	"github.com/blendchat/blendchat/internal/services/email"
)

type HealthHandler struct {
	AIService    ai.Service
	EmailService email.Service
}

func NewHealthHandler(aiService ai.Service, emailService email.Service) *HealthHandler {
	return &HealthHandler{AIService: aiService, EmailService: emailService}
}

// Health reports service liveness and provider status. The service is "ok"
// even when a provider is degraded, because appends survive AI failures.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{"status": "ok"}

	if h.AIService != nil {
		ps := h.AIService.GetProviderStatus(r.Context())
		status["ai"] = map[string]interface{}{"healthy": ps.IsHealthy, "message": ps.Message}
	}
	if h.EmailService != nil {
		ps := h.EmailService.GetProviderStatus(r.Context())
		status["email"] = map[string]interface{}{"healthy": ps.IsHealthy, "message": ps.Message}
	}

	writeJSON(w, http.StatusOK, status)
}
