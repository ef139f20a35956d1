package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/jhaveripatric/plugin-server/internal/layered"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. APP_HOST.
	EnvPrefix    = "APP"
	envSeparator = "_"
)

// keys lists every settings path addressable from the environment.
var keys = []string{
	"host",
	"public_url",
	"log_level",
	"log_format",
	"logo_file",
	"cors.allowed_origins",
	"shutdown_timeout",
	"read_header_timeout",
}

func defaults() layered.Defaults {
	return layered.Defaults{
		"log_level":            "info",
		"log_format":           "json",
		"cors.allowed_origins": []string{"*"},
		"shutdown_timeout":     "10s",
		"read_header_timeout":  "5s",
	}
}

// Sources returns the settings sources in increasing precedence: defaults,
// the file at path, then APP_* environment variables. A nil environ reads
// the process environment.
func Sources(path string, environ []string) []layered.Source {
	return []layered.Source{
		defaults(),
		layered.File{Path: path},
		layered.Env{Prefix: EnvPrefix, Separator: envSeparator, Keys: keys, Environ: environ},
	}
}

// Load reads and validates settings from the file at path and the environment.
func Load(path string, environ []string) (*Settings, error) {
	return Build(Sources(path, environ)...)
}

// Build folds sources into validated Settings.
func Build(sources ...layered.Source) (*Settings, error) {
	tree, err := layered.Merge(sources...)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := layered.Decode("settings", tree, &doc); err != nil {
		return nil, err
	}

	settings, err := fromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}
	return settings, nil
}

func fromDocument(doc document) (*Settings, error) {
	host := strings.TrimSpace(doc.Host)
	if host == "" {
		return nil, fieldError("host", fmt.Errorf("is required"))
	}
	if _, _, err := net.SplitHostPort(host); err != nil {
		return nil, fieldError("host", err)
	}

	publicURL, err := ParseAbsoluteURL(doc.PublicURL)
	if err != nil {
		return nil, fieldError("public_url", err)
	}

	if doc.ShutdownTimeout < 0 {
		return nil, fieldError("shutdown_timeout", fmt.Errorf("must be >= 0"))
	}

	return &Settings{
		Host:              host,
		PublicURL:         publicURL,
		LogLevel:          doc.LogLevel,
		LogFormat:         doc.LogFormat,
		LogoFile:          doc.LogoFile,
		CORS:              doc.CORS,
		ShutdownTimeout:   orDefault(doc.ShutdownTimeout, 10*time.Second),
		ReadHeaderTimeout: orDefault(doc.ReadHeaderTimeout, 5*time.Second),
	}, nil
}

// ParseAbsoluteURL parses raw and requires a scheme and host.
func ParseAbsoluteURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute URL", raw)
	}
	return u, nil
}

func fieldError(field string, err error) error {
	return &layered.DecodeError{Target: "settings", Field: field, Err: err}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d == 0 {
		return fallback
	}
	return d
}
