package port

import (
	"context"

	"github.com/givewell/donation-service/internal/core/domain"
)

// WebhookUseCase handles one inbound payment webhook delivery. A non-nil
// error means the delivery must be rejected with HTTP 400; persistence and
// receipt failures are absorbed internally and still acknowledge success,
// so the gateway does not retry against a non-idempotent insert.
type WebhookUseCase interface {
	HandlePaymentWebhook(ctx context.Context, payload []byte, sigHeader string) error
}

// DispatchRequest triggers one campaign send job.
type DispatchRequest struct {
	CampaignID int64  `json:"campaignId"`
	Subject    string `json:"subject"`
	Content    string `json:"content"`
}

// DispatchResult summarizes one dispatch pass. Errors holds per-recipient
// failure messages; they do not imply job failure.
type DispatchResult struct {
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Total  int      `json:"total"`
	Errors []string `json:"errors,omitempty"`
}

// CampaignUseCase runs the campaign dispatch loop. An error is returned
// only for job-level failures (unknown campaign, subscriber fetch failure);
// per-recipient send failures are reported inside the result.
type CampaignUseCase interface {
	Dispatch(ctx context.Context, req DispatchRequest) (*DispatchResult, error)
}

// StatsOverview is the public donation stats shape. On internal read
// failure the numeric fields are zero and Error carries the cause; callers
// must treat that as a valid degraded response.
type StatsOverview struct {
	TotalRaised     float64                 `json:"totalRaised"`
	DonorCount      int64                   `json:"donorCount"`
	Goal            float64                 `json:"goal"`
	Progress        float64                 `json:"progress"`
	RecentDonations []domain.RecentDonation `json:"recentDonations"`
	Error           string                  `json:"error,omitempty"`
}

// StatsUseCase computes the donation stats overview on a read-only path.
type StatsUseCase interface {
	Overview(ctx context.Context) *StatsOverview
}
