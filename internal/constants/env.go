// Package constants provides centralized definitions of constants used throughout the application
package constants

// Environment variable names
const (
	// EnvServerPort is the environment variable containing the API server port
	EnvServerPort = "ANOLINE_PORT"

	// EnvServerAddress is the environment variable containing the API server address used by the CLI
	EnvServerAddress = "ANOLINE_SERVER_ADDRESS"
)
