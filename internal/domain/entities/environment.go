package entities

// Environment selects the wallet backend a payments client talks to.
type Environment string

const (
	EnvironmentTest       Environment = "test"
	EnvironmentProduction Environment = "production"
)

// ParseEnvironment maps the channel argument to an Environment.
// Anything other than "production" falls back to the test environment.
func ParseEnvironment(raw string) Environment {
	switch raw {
	case string(EnvironmentProduction):
		return EnvironmentProduction
	default:
		return EnvironmentTest
	}
}
