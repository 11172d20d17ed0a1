package configs

// Email configures the transactional email provider client.
type Email struct {
	// APIKey authenticates against the provider's HTTP API.
	APIKey string `env:"API_KEY"`
	// APIURL is the provider API base URL.
	APIURL string `env:"API_URL" envDefault:"https://api.resend.com"`
	// From is the default sender address for all outbound mail.
	From string `env:"FROM" envDefault:"donations@example.org"`
}
