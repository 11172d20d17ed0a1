package configs

// Donation holds donation-recording policy switches.
type Donation struct {
	// Idempotent skips recording when a donation with the same external
	// payment reference already exists. Off by default: the historical
	// behavior double-records on webhook redelivery.
	Idempotent bool `env:"IDEMPOTENT" envDefault:"false"`
}
