package configs

// CORS lists origins allowed to call the API from a browser.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}
