package model

// Environment names the deployment stage read from environment.name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether name is the production stage.
func IsProduction(name string) bool {
	return Environment(name) == EnvironmentProduction
}
