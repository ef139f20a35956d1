package layered

import (
	"os"
	"strings"
)

// Env reads overrides from environment variables named Prefix+Separator+key.
//
// Keys lists the known dotted paths of the target. A variable whose suffix
// equals a known key with dots replaced by Separator maps to that key, so with
// Separator "_" APP_PUBLIC_URL addresses public_url rather than public.url.
// Any other variable is split on Separator into a nested path.
type Env struct {
	Prefix    string
	Separator string
	Keys      []string

	// Environ overrides os.Environ, mainly for tests.
	Environ []string
}

// Name implements Source.
func (e Env) Name() string { return "env " + e.Prefix + e.Separator + "*" }

// Load implements Source.
func (e Env) Load() (map[string]any, error) {
	environ := e.Environ
	if environ == nil {
		environ = os.Environ()
	}

	known := make(map[string]string, len(e.Keys))
	for _, key := range e.Keys {
		known[strings.ToLower(strings.ReplaceAll(key, ".", e.Separator))] = key
	}

	prefix := strings.ToLower(e.Prefix + e.Separator)
	tree := make(map[string]any)
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, prefix) || len(lower) == len(prefix) {
			continue
		}
		suffix := lower[len(prefix):]

		if key, ok := known[suffix]; ok {
			setPath(tree, strings.Split(key, "."), value)
			continue
		}

		path := strings.Split(suffix, e.Separator)
		if hasEmpty(path) {
			continue
		}
		setPath(tree, path, value)
	}

	return tree, nil
}

func hasEmpty(path []string) bool {
	for _, segment := range path {
		if segment == "" {
			return true
		}
	}
	return false
}
