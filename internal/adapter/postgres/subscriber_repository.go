package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/givewell/donation-service/internal/core/domain"
)

// SubscriberRepository implements port.SubscriberRepository using pgxpool.
type SubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository returns a new repository instance.
func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

// ListActive returns every active subscriber ordered by id, which fixes
// the order tracking rows are written in during a dispatch pass.
func (r *SubscriberRepository) ListActive(ctx context.Context) ([]domain.Subscriber, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, email, name, status, email_count, last_email_sent_at, created_at
FROM subscribers WHERE status = 'active' ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscriber, error) {
		var s domain.Subscriber
		err := row.Scan(&s.ID, &s.Email, &s.Name, &s.Status, &s.EmailCount, &s.LastEmailSentAt, &s.CreatedAt)
		return s, err
	})
}

// RecordEmailSent re-reads the current counter and writes it back
// incremented, together with last_email_sent_at. One read plus one write,
// not an atomic increment; concurrent dispatches are not a supported mode.
func (r *SubscriberRepository) RecordEmailSent(ctx context.Context, id int64, at time.Time) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT email_count FROM subscribers WHERE id = $1`, id).Scan(&count); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `UPDATE subscribers SET email_count = $2, last_email_sent_at = $3 WHERE id = $1`,
		id, count+1, at)
	return err
}
