package configs

// Stats configures the donation stats aggregator.
type Stats struct {
	// Goal is the fundraising goal the progress percentage is computed
	// against, in major currency units.
	Goal float64 `env:"GOAL" envDefault:"50000"`
}
