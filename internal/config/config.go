package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/givewell/donation-service/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields are
// populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Stripe configures webhook verification against the payment gateway.
	Stripe configs.Stripe `envPrefix:"STRIPE_"`

	// Email configures the transactional email provider client.
	Email configs.Email `envPrefix:"EMAIL_"`

	// Dispatch configures campaign send pacing.
	Dispatch configs.Dispatch `envPrefix:"DISPATCH_"`

	// Stats configures the donation stats aggregator.
	Stats configs.Stats `envPrefix:"STATS_"`

	// CORS lists origins allowed to call the API from a browser.
	CORS configs.CORS `envPrefix:"CORS_"`

	// Donation holds donation-recording policy switches.
	Donation configs.Donation `envPrefix:"DONATION_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
