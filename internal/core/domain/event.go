package domain

import "github.com/shopspring/decimal"

// DonationEvent is a payment-succeeded gateway event mapped into domain
// terms. Defaults and the string-typed metadata flags are already resolved
// at this point; Amount is in major units and Currency is upper-case.
type DonationEvent struct {
	EventID       string
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
}

// Donation builds the row to persist for this event. Status is always
// completed: this subsystem only ever sees succeeded payments.
func (e *DonationEvent) Donation() *Donation {
	return &Donation{
		PaymentRef:    e.PaymentRef,
		Amount:        e.Amount,
		Currency:      e.Currency,
		DonorName:     e.DonorName,
		DonorEmail:    e.DonorEmail,
		DonorPhone:    e.DonorPhone,
		Anonymous:     e.Anonymous,
		CoverFees:     e.CoverFees,
		Designation:   e.Designation,
		Message:       e.Message,
		PaymentMethod: e.PaymentMethod,
		Status:        DonationCompleted,
	}
}
