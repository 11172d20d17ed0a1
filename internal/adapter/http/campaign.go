package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/givewell/donation-service/internal/core/port"
)

type campaignSendResponse struct {
	Success    bool                 `json:"success"`
	CampaignID int64                `json:"campaignId,omitempty"`
	Stats      *port.DispatchResult `json:"stats,omitempty"`
	Errors     []string             `json:"errors,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// handleCampaignSend triggers a full dispatch pass for one campaign. The
// call returns only after the pass completes; per-recipient failures are
// reported in the body with 200, job-level failures with 500.
func (h *Handler) handleCampaignSend(w http.ResponseWriter, r *http.Request) {
	var req port.DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.CampaignID == 0 || req.Subject == "" || req.Content == "" {
		http.Error(w, "campaignId, subject and content are required", http.StatusBadRequest)
		return
	}

	res, err := h.campaigns.Dispatch(r.Context(), req)
	if err != nil {
		h.logger.Error("campaign dispatch error", slog.Int64("campaign_id", req.CampaignID), slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, campaignSendResponse{Success: false, Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, campaignSendResponse{
		Success:    true,
		CampaignID: req.CampaignID,
		Stats:      &port.DispatchResult{Sent: res.Sent, Failed: res.Failed, Total: res.Total},
		Errors:     res.Errors,
	})
}
