// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings while keeping configuration details
// separate from the scale engine.
package config
