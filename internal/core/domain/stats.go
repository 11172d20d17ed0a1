package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationTotals are the aggregates computed over completed donations.
// DonorCount is distinct by email, case-sensitive.
type DonationTotals struct {
	TotalRaised decimal.Decimal
	DonorCount  int64
}

// RecentDonation is one entry of the public recent-donations feed. Only
// non-anonymous donations appear here.
type RecentDonation struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"date"`
}
