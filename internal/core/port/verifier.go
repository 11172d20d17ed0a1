package port

import "github.com/givewell/donation-service/internal/core/domain"

// EventVerifier validates and parses raw gateway webhook payloads. Both
// methods return (nil, nil) for event types this subsystem ignores.
type EventVerifier interface {
	// VerifyAndParse checks the signature header against the shared secret
	// and tolerance window, then maps the event. The payload must be the
	// exact bytes received; re-serialized JSON invalidates the signature.
	// Failures wrap ErrBadSignatureHeader, ErrSignatureMismatch,
	// ErrTimestampSkew or ErrMalformedPayload.
	VerifyAndParse(payload []byte, sigHeader string) (*domain.DonationEvent, error)

	// ParseUnverified maps the raw payload with no authenticity check at
	// all. Used only on the timestamp-skew fallback path, and only when
	// that policy is enabled. Failures wrap ErrMalformedPayload.
	ParseUnverified(payload []byte) (*domain.DonationEvent, error)
}
