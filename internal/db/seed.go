package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a batch of subscribers, a draft campaign and a
// few completed donations, enough to exercise dispatch and the stats
// endpoint locally.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= 25; i++ {
		email := fmt.Sprintf("subscriber-%d@example.com", i)
		name := fmt.Sprintf("Subscriber %d", i)
		status := "active"
		if i%10 == 0 {
			status = "unsubscribed"
		}
		_, err := db.Exec(ctx, `INSERT INTO subscribers (email, name, status)
VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`, email, name, status)
		if err != nil {
			return err
		}
	}

	_, err := db.Exec(ctx, `INSERT INTO campaigns (subject, content, status)
SELECT 'Monthly update', '<h1>Hello!</h1><p>News from the team.</p>', 'draft'
WHERE NOT EXISTS (SELECT 1 FROM campaigns)`)
	if err != nil {
		return err
	}

	names := []string{"Ada Lovelace", "Grace Hopper", "Alan Turing", "Edsger Dijkstra"}
	for i := 0; i < 12; i++ {
		name := names[r.Intn(len(names))]
		email := fmt.Sprintf("donor-%d@example.com", r.Intn(6)+1)
		amount := float64(r.Intn(20000)+500) / 100
		anonymous := r.Intn(4) == 0
		_, err := db.Exec(ctx, `INSERT INTO donations
(payment_ref, amount, currency, donor_name, donor_email, anonymous, status, created_at)
VALUES ($1, $2, 'USD', $3, $4, $5, 'completed', now() - make_interval(hours => $6))`,
			"pi_seed_"+uuid.NewString(), amount, name, email, anonymous, r.Intn(720))
		if err != nil {
			return err
		}
	}
	return nil
}
