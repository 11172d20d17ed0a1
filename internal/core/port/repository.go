package port

import (
	"context"
	"time"

	"github.com/givewell/donation-service/internal/core/domain"
)

// DonationRepository persists and aggregates donation rows. It is an
// outbound port; each call is one atomic store operation, no multi-row
// transaction spans a webhook.
type DonationRepository interface {
	// Insert writes one donation row and fills in its generated id.
	Insert(ctx context.Context, d *domain.Donation) error
	// ExistsByPaymentRef reports whether a donation with the given external
	// payment reference is already recorded.
	ExistsByPaymentRef(ctx context.Context, ref string) (bool, error)
	// MarkReceiptSent flags a donation after its receipt email went out.
	MarkReceiptSent(ctx context.Context, id int64) error
	// AggregateCompleted sums completed donations and counts distinct
	// donor emails.
	AggregateCompleted(ctx context.Context) (*domain.DonationTotals, error)
	// RecentNonAnonymous returns up to limit most recent completed
	// donations without the anonymity flag, newest first.
	RecentNonAnonymous(ctx context.Context, limit int) ([]domain.RecentDonation, error)
}

// SubscriberRepository reads and mutates newsletter recipients.
type SubscriberRepository interface {
	// ListActive returns every subscriber with status=active, in stable
	// order. The whole set is loaded; dispatch assumes it fits in memory.
	ListActive(ctx context.Context) ([]domain.Subscriber, error)
	// RecordEmailSent increments the subscriber's email_count and sets
	// last_email_sent_at. One read plus one write, not batched.
	RecordEmailSent(ctx context.Context, id int64, at time.Time) error
}

// CampaignRepository drives the campaign state machine and its audit trail.
type CampaignRepository interface {
	// MarkSending transitions a campaign to the sending state. Returns
	// ErrCampaignNotFound for unknown ids.
	MarkSending(ctx context.Context, id int64) error
	// Finalize writes the terminal status and counters. sentAt is nil when
	// the dispatch never completed a send pass; sent_at stays NULL then.
	Finalize(ctx context.Context, id int64, status domain.CampaignStatus, sent, failed, total int, sentAt *time.Time) error
	// InsertTracking appends one per-recipient outcome row.
	InsertTracking(ctx context.Context, tr *domain.CampaignTracking) error
}
