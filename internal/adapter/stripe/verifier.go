package stripeadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/givewell/donation-service/internal/config/configs"
	"github.com/givewell/donation-service/internal/core/domain"
	"github.com/givewell/donation-service/internal/core/port"
)

const eventPaymentSucceeded = "payment_intent.succeeded"

var minorUnitsPerMajor = decimal.NewFromInt(100)

// Verifier validates gateway webhook payloads against the shared webhook
// secret and maps payment-succeeded events into domain terms. It is an
// inbound adapter for the payment gateway; validation itself is pure.
type Verifier struct {
	secret    string
	tolerance time.Duration
}

// NewVerifier builds a Verifier from the gateway config section.
func NewVerifier(cfg configs.Stripe) *Verifier {
	return &Verifier{
		secret:    cfg.WebhookSecret,
		tolerance: time.Duration(cfg.ToleranceSeconds) * time.Second,
	}
}

// VerifyAndParse checks the signature header against the secret and the
// tolerance window, then maps the event. Verification is all-or-nothing;
// each failure mode wraps a distinct port error so the caller can branch
// on the skew case.
func (v *Verifier) VerifyAndParse(payload []byte, sigHeader string) (*domain.DonationEvent, error) {
	event, err := webhook.ConstructEventWithTolerance(payload, sigHeader, v.secret, v.tolerance)
	if err != nil {
		switch {
		case errors.Is(err, webhook.ErrTooOld):
			return nil, fmt.Errorf("%w: %v", port.ErrTimestampSkew, err)
		case errors.Is(err, webhook.ErrInvalidHeader), errors.Is(err, webhook.ErrNotSigned):
			return nil, fmt.Errorf("%w: %v", port.ErrBadSignatureHeader, err)
		case errors.Is(err, webhook.ErrNoValidSignature):
			return nil, fmt.Errorf("%w: %v", port.ErrSignatureMismatch, err)
		default:
			// signature checked out but the body did not parse
			return nil, fmt.Errorf("%w: %v", port.ErrMalformedPayload, err)
		}
	}
	return v.mapEvent(&event)
}

// ParseUnverified maps the raw payload with no authenticity check. Only the
// timestamp-skew fallback path calls this, and only when that policy is
// switched on.
func (v *Verifier) ParseUnverified(payload []byte) (*domain.DonationEvent, error) {
	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrMalformedPayload, err)
	}
	return v.mapEvent(&event)
}

// mapEvent converts a gateway event into a DonationEvent, applying the
// defaults of the donation contract. Event types other than
// payment_intent.succeeded map to (nil, nil) and are acknowledged upstream
// without side effects.
func (v *Verifier) mapEvent(event *stripe.Event) (*domain.DonationEvent, error) {
	if string(event.Type) != eventPaymentSucceeded {
		return nil, nil
	}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, fmt.Errorf("%w: event has no data object", port.ErrMalformedPayload)
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrMalformedPayload, err)
	}

	md := pi.Metadata
	if md == nil {
		md = map[string]string{}
	}
	name := md["donor_name"]
	if name == "" {
		name = "Anonymous"
	}
	email := md["donor_email"]
	if email == "" {
		email = pi.ReceiptEmail
	}
	if email == "" {
		email = domain.AnonymousEmail
	}
	designation := md["designation"]
	if designation == "" {
		designation = "general"
	}
	method := "card"
	if len(pi.PaymentMethodTypes) > 0 {
		method = pi.PaymentMethodTypes[0]
	}

	return &domain.DonationEvent{
		EventID:       event.ID,
		PaymentRef:    pi.ID,
		Amount:        decimal.NewFromInt(pi.Amount).Div(minorUnitsPerMajor),
		Currency:      strings.ToUpper(string(pi.Currency)),
		DonorName:     name,
		DonorEmail:    email,
		DonorPhone:    md["donor_phone"],
		Anonymous:     parseLooseBool(md["anonymous"]),
		CoverFees:     parseLooseBool(md["cover_fees"]),
		Designation:   designation,
		Message:       md["message"],
		PaymentMethod: method,
	}, nil
}

// parseLooseBool resolves the gateway's string-only metadata channel into a
// bool at the mapping boundary: exactly "true" is true, anything else
// (including absent) is false.
func parseLooseBool(s string) bool {
	return s == "true"
}
