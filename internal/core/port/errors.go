package port

import "errors"

// Webhook verification failures. ErrTimestampSkew is the one kind that may
// engage the unverified fallback parse; everything else is a hard reject.
var (
	ErrBadSignatureHeader = errors.New("malformed signature header")
	ErrSignatureMismatch  = errors.New("signature verification failed")
	ErrTimestampSkew      = errors.New("signature timestamp outside tolerance")
	ErrMalformedPayload   = errors.New("payload is not valid JSON")
)

// ErrCampaignNotFound is returned when a dispatch references an unknown
// campaign id.
var ErrCampaignNotFound = errors.New("campaign not found")
