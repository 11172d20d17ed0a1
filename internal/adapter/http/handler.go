package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/givewell/donation-service/internal/config/configs"
	"github.com/givewell/donation-service/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it holds the three usecases and a logger for structured logging. Routes
// are registered on a chi.Router with CORS applied for browser callers.
type Handler struct {
	webhooks  port.WebhookUseCase
	campaigns port.CampaignUseCase
	stats     port.StatsUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	webhooks port.WebhookUseCase,
	campaigns port.CampaignUseCase,
	stats port.StatsUseCase,
	corsCfg configs.CORS,
	logger *slog.Logger,
) *Handler {
	h := &Handler{webhooks: webhooks, campaigns: campaigns, stats: stats, logger: logger}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Stripe-Signature"},
	}))

	r.Post("/webhook/payment", h.handlePaymentWebhook)
	r.Post("/campaign/send", h.handleCampaignSend)
	r.Get("/donations/stats", h.handleDonationStats)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
