package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
)

// maxWebhookBody bounds gateway payload reads. Gateway events are a few KB;
// 64KB is the ceiling the gateway documents.
const maxWebhookBody = 65536

// handlePaymentWebhook ingests one gateway delivery. The body is passed to
// verification as the exact bytes received. Almost every processing path
// acknowledges with 200 {"received":true}; only verification failures (and
// fallback-parse failures) reject with 400 carrying the error text.
func (h *Handler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	if err := h.webhooks.HandlePaymentWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		h.logger.Warn("webhook rejected", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}
