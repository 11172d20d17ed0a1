package configs

// Stripe configures payment-gateway webhook verification. The tolerance is
// deliberately wider than the gateway's 300s default: production saw
// deliveries rejected under clock skew.
type Stripe struct {
	// SecretKey is the gateway API key. Unused by webhook verification
	// itself but part of the gateway credential pair.
	SecretKey string `env:"SECRET_KEY"`
	// WebhookSecret is the shared secret the gateway signs webhook
	// payloads with.
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	// ToleranceSeconds is the accepted age of a signature timestamp.
	ToleranceSeconds int `env:"TOLERANCE_SECONDS" envDefault:"600"`
	// AllowUnverifiedOnSkew accepts payloads whose signature failed only
	// on timestamp skew by parsing them without authenticity checks. This
	// trades integrity for availability; off unless explicitly enabled.
	AllowUnverifiedOnSkew bool `env:"ALLOW_UNVERIFIED_ON_SKEW" envDefault:"false"`
}
