package configs

// Dispatch configures campaign send pacing. SendsPerSecond reflects the
// email provider's documented throughput ceiling; the dispatcher paces the
// sequential loop with a token bucket built from these values.
type Dispatch struct {
	SendsPerSecond float64 `env:"SENDS_PER_SECOND" envDefault:"10"`
	Burst          int     `env:"BURST" envDefault:"1"`
}
