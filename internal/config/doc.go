// Package config loads the service settings from a base file and APP_*
// environment overrides. Precedence: environment > file > defaults.
package config
