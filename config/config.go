// Package config reads runtime settings from the environment. Entrypoints
// load a .env file first, so GetEnv sees both real and file-sourced values.
package config

import "os"

// GetEnv returns the environment variable named by key, or fallback when the
// variable is unset. An empty value counts as set.
func GetEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return value
}
