package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/givewell/donation-service/internal/core/domain"
)

// DonationRepository implements port.DonationRepository using pgxpool for
// PostgreSQL.
type DonationRepository struct {
	pool *pgxpool.Pool
}

// NewDonationRepository returns a new repository instance.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

// Insert writes one donation row and fills in the generated id. payment_ref
// is intentionally not unique at the schema level; redelivery dedup is a
// usecase policy.
func (r *DonationRepository) Insert(ctx context.Context, d *domain.Donation) error {
	d.CreatedAt = time.Now().UTC()
	return r.pool.QueryRow(ctx, `INSERT INTO donations
(payment_ref, amount, currency, donor_name, donor_email, donor_phone, anonymous, cover_fees,
 designation, message, payment_method, status, receipt_sent, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14) RETURNING id`,
		d.PaymentRef, d.Amount, d.Currency, d.DonorName, d.DonorEmail, d.DonorPhone,
		d.Anonymous, d.CoverFees, d.Designation, d.Message, d.PaymentMethod,
		d.Status, d.ReceiptSent, d.CreatedAt).Scan(&d.ID)
}

// ExistsByPaymentRef reports whether a donation with the given external
// payment reference is already recorded.
func (r *DonationRepository) ExistsByPaymentRef(ctx context.Context, ref string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM donations WHERE payment_ref = $1)`, ref).Scan(&exists)
	return exists, err
}

// MarkReceiptSent flags a donation after its receipt email went out.
func (r *DonationRepository) MarkReceiptSent(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE donations SET receipt_sent = true WHERE id = $1`, id)
	return err
}

// AggregateCompleted sums completed donations and counts distinct donor
// emails. COUNT(DISTINCT) is case-sensitive, matching the aggregator
// contract.
func (r *DonationRepository) AggregateCompleted(ctx context.Context) (*domain.DonationTotals, error) {
	var t domain.DonationTotals
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(sum(amount), 0), COALESCE(count(DISTINCT donor_email), 0)
FROM donations WHERE status = 'completed'`).Scan(&t.TotalRaised, &t.DonorCount)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RecentNonAnonymous returns up to limit most recent completed donations
// without the anonymity flag, newest first.
func (r *DonationRepository) RecentNonAnonymous(ctx context.Context, limit int) ([]domain.RecentDonation, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, amount, donor_name, created_at
FROM donations
WHERE status = 'completed' AND anonymous = false
ORDER BY created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RecentDonation, error) {
		var (
			rd     domain.RecentDonation
			amount decimal.Decimal
		)
		if err := row.Scan(&rd.ID, &amount, &rd.Name, &rd.CreatedAt); err != nil {
			return rd, err
		}
		rd.Amount = amount.InexactFloat64()
		return rd, nil
	})
}
