package layered

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	name string
	tree map[string]any
	err  error
}

func (s staticSource) Name() string                  { return s.name }
func (s staticSource) Load() (map[string]any, error) { return s.tree, s.err }

func TestMergePrecedence(t *testing.T) {
	merged, err := Merge(
		Defaults{"logo_url": "https://d.example/logo.png", "api.url": "https://d.example/openapi.json"},
		staticSource{name: "file", tree: map[string]any{
			"name": "from-file",
			"api":  map[string]any{"type": "openapi", "url": "https://f.example/openapi.json"},
		}},
		staticSource{name: "env", tree: map[string]any{
			"api": map[string]any{"url": "https://e.example/openapi.json"},
		}},
	)
	require.NoError(t, err)

	assert.Equal(t, "https://d.example/logo.png", merged["logo_url"])
	assert.Equal(t, "from-file", merged["name"])
	assert.Equal(t, map[string]any{
		"type": "openapi",
		"url":  "https://e.example/openapi.json",
	}, merged["api"])
}

func TestMergeSkipsNil(t *testing.T) {
	merged, err := Merge(
		Defaults{"host": "0.0.0.0:3000"},
		staticSource{name: "file", tree: map[string]any{"host": nil}},
	)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3000", merged["host"])
}

func TestMergeDoesNotAliasSources(t *testing.T) {
	base := map[string]any{"api": map[string]any{"type": "openapi"}}
	_, err := Merge(
		staticSource{name: "file", tree: base},
		staticSource{name: "env", tree: map[string]any{"api": map[string]any{"type": "other"}}},
	)
	require.NoError(t, err)
	assert.Equal(t, "openapi", base["api"].(map[string]any)["type"])
}

func TestMergeShapeConflict(t *testing.T) {
	t.Run("scalar over table", func(t *testing.T) {
		_, err := Merge(
			staticSource{name: "file", tree: map[string]any{"api": map[string]any{"type": "openapi"}}},
			staticSource{name: "env", tree: map[string]any{"api": "oops"}},
		)
		var mergeErr *MergeError
		require.ErrorAs(t, err, &mergeErr)
		assert.Equal(t, "env", mergeErr.Source)
		assert.Equal(t, "api", mergeErr.Key)
	})

	t.Run("table over scalar", func(t *testing.T) {
		_, err := Merge(
			staticSource{name: "file", tree: map[string]any{"auth": map[string]any{"type": "none"}}},
			staticSource{name: "env", tree: map[string]any{"auth": map[string]any{"type": map[string]any{"x": "y"}}}},
		)
		var mergeErr *MergeError
		require.ErrorAs(t, err, &mergeErr)
		assert.Equal(t, "auth.type", mergeErr.Key)
	})
}

func TestMergePropagatesLoadError(t *testing.T) {
	boom := &LoadError{Source: "file", Err: errors.New("boom")}
	_, err := Merge(staticSource{name: "file", err: boom})

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "file", loadErr.Source)
}

func TestMergeAcceptsAnyKeyedTables(t *testing.T) {
	merged, err := Merge(
		staticSource{name: "a", tree: map[string]any{"api": map[any]any{"type": "openapi"}}},
		staticSource{name: "b", tree: map[string]any{"api": map[string]any{"url": "u"}}},
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "openapi", "url": "u"}, merged["api"])
}
