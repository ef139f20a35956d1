package manifest

import (
	"github.com/jhaveripatric/plugin-server/internal/config"
	"github.com/jhaveripatric/plugin-server/internal/layered"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. MANIFEST.auth.type.
	EnvPrefix    = "MANIFEST"
	envSeparator = "."
)

// Loader builds manifests whose URL defaults derive from settings.
type Loader struct {
	settings *config.Settings
	environ  []string
}

// NewLoader creates a loader for the given settings. Environment overrides
// come from the process environment unless WithEnviron is used.
func NewLoader(settings *config.Settings) *Loader {
	return &Loader{settings: settings}
}

// WithEnviron replaces the process environment as the override source.
func (l *Loader) WithEnviron(environ []string) *Loader {
	l.environ = environ
	return l
}

// Sources returns the manifest sources in increasing precedence: computed
// defaults, the file at path, then MANIFEST.* environment variables.
func (l *Loader) Sources(path string) []layered.Source {
	return []layered.Source{
		layered.Defaults{
			"logo_url": l.settings.LogoURL().String(),
			"api.url":  l.settings.OpenAPIJSONURL().String(),
		},
		layered.File{Path: path},
		layered.Env{Prefix: EnvPrefix, Separator: envSeparator, Keys: keys, Environ: l.environ},
	}
}

// Load builds and validates the manifest from the file at path.
func (l *Loader) Load(path string) (*Manifest, error) {
	return Build(l.Sources(path)...)
}

// Build folds sources into a validated manifest.
func Build(sources ...layered.Source) (*Manifest, error) {
	tree, err := layered.Merge(sources...)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := layered.Decode("manifest", tree, &doc); err != nil {
		return nil, err
	}

	return fromDocument(doc)
}
