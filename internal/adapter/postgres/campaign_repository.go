package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/givewell/donation-service/internal/core/domain"
	"github.com/givewell/donation-service/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// MarkSending transitions a campaign to the sending state.
func (r *CampaignRepository) MarkSending(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = 'sending', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// Finalize writes the terminal status and counters. A nil sentAt leaves
// sent_at NULL for jobs that never completed a send pass.
func (r *CampaignRepository) Finalize(ctx context.Context, id int64, status domain.CampaignStatus, sent, failed, total int, sentAt *time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns
SET status = $2, total_sent = $3, total_failed = $4, total_recipients = $5, sent_at = $6, updated_at = now()
WHERE id = $1`, id, status, sent, failed, total, sentAt)
	return err
}

// InsertTracking appends one per-recipient outcome row.
func (r *CampaignRepository) InsertTracking(ctx context.Context, tr *domain.CampaignTracking) error {
	tr.CreatedAt = time.Now().UTC()
	return r.pool.QueryRow(ctx, `INSERT INTO campaign_tracking (campaign_id, subscriber_id, status, error_message, created_at)
VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		tr.CampaignID, tr.SubscriberID, tr.Status, nullIfEmpty(tr.ErrorMessage), tr.CreatedAt).Scan(&tr.ID)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
