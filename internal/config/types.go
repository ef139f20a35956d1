package config

import (
	"net/url"
	"time"
)

// Settings holds the service's own operational configuration. It is built
// once at startup and treated as read-only afterwards.
type Settings struct {
	Host              string
	PublicURL         *url.URL
	LogLevel          string
	LogFormat         string
	LogoFile          string
	CORS              CORSConfig
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// document mirrors the merged configuration tree.
type document struct {
	Host              string        `mapstructure:"host"`
	PublicURL         string        `mapstructure:"public_url"`
	LogLevel          string        `mapstructure:"log_level"`
	LogFormat         string        `mapstructure:"log_format"`
	LogoFile          string        `mapstructure:"logo_file"`
	CORS              CORSConfig    `mapstructure:"cors"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
}

// LogoURL is the public URL of the plugin logo.
func (s *Settings) LogoURL() *url.URL {
	return s.resolve("/logo.png")
}

// OpenAPIJSONURL is the public URL of the OpenAPI document.
func (s *Settings) OpenAPIJSONURL() *url.URL {
	return s.resolve("/openapi.json")
}

// APIURL is the public base URL of the plugin API.
func (s *Settings) APIURL() *url.URL {
	return s.resolve("/api")
}

func (s *Settings) resolve(path string) *url.URL {
	return s.PublicURL.ResolveReference(&url.URL{Path: path})
}
