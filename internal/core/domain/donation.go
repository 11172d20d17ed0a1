package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationStatus enumerates the lifecycle states of a donation. Donations
// created from a verified webhook start (and stay) completed; the other
// states exist for rows written by external tooling.
type DonationStatus string

const (
	DonationCompleted DonationStatus = "completed"
	DonationPending   DonationStatus = "pending"
	DonationFailed    DonationStatus = "failed"
	DonationRefunded  DonationStatus = "refunded"
)

// AnonymousEmail is the placeholder stored when a donor leaves no email.
// Receipts are never sent to this address.
const AnonymousEmail = "anonymous@donor.invalid"

// Donation represents one completed payment recorded from a gateway event.
// Amount is in major currency units (the gateway reports minor units).
type Donation struct {
	ID            int64
	PaymentRef    string
	Amount        decimal.Decimal
	Currency      string
	DonorName     string
	DonorEmail    string
	DonorPhone    string
	Anonymous     bool
	CoverFees     bool
	Designation   string
	Message       string
	PaymentMethod string
	Status        DonationStatus
	ReceiptSent   bool
	CreatedAt     time.Time
}
