package layered

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// File reads a structured document from disk. When Path has no extension
// every format viper supports is tried (settings -> settings.yml, settings.json, ...).
type File struct {
	Path string
}

// Name implements Source.
func (f File) Name() string { return "file " + f.Path }

// Load implements Source. A missing file is an error.
func (f File) Load() (map[string]any, error) {
	if f.Path == "" {
		return nil, &LoadError{Source: f.Name(), Err: fmt.Errorf("no path given")}
	}

	v := viper.New()
	if filepath.Ext(f.Path) != "" {
		v.SetConfigFile(f.Path)
	} else {
		v.SetConfigName(filepath.Base(f.Path))
		v.AddConfigPath(filepath.Dir(f.Path))
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, &LoadError{Source: f.Name(), Err: err}
	}

	return v.AllSettings(), nil
}
