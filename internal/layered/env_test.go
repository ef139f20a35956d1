package layered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvUnderscoreSeparatorUsesKnownKeys(t *testing.T) {
	src := Env{
		Prefix:    "APP",
		Separator: "_",
		Keys:      []string{"host", "public_url", "cors.allowed_origins"},
		Environ: []string{
			"APP_HOST=127.0.0.1:9000",
			"APP_PUBLIC_URL=https://p.example/",
			"APP_CORS_ALLOWED_ORIGINS=https://a.example,https://b.example",
			"OTHER_HOST=ignored",
			"APP_=ignored",
		},
	}

	tree, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"host":       "127.0.0.1:9000",
		"public_url": "https://p.example/",
		"cors":       map[string]any{"allowed_origins": "https://a.example,https://b.example"},
	}, tree)
}

func TestEnvDotSeparatorNests(t *testing.T) {
	src := Env{
		Prefix:    "MANIFEST",
		Separator: ".",
		Environ: []string{
			"MANIFEST.auth.type=oauth",
			"MANIFEST.verification_tokens..openai=skipped",
			"MANIFEST.name_for_human=Todo",
		},
	}

	tree, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"auth":           map[string]any{"type": "oauth"},
		"name_for_human": "Todo",
	}, tree)
}

func TestEnvFallsBackToSplitting(t *testing.T) {
	src := Env{
		Prefix:    "APP",
		Separator: "_",
		Environ:   []string{"APP_EXTRA_VALUE=1"},
	}

	tree, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"extra": map[string]any{"value": "1"}}, tree)
}

func TestEnvReadsProcessEnvironment(t *testing.T) {
	t.Setenv("LAYEREDTEST_HOST", "from-env")

	tree, err := Env{Prefix: "LAYEREDTEST", Separator: "_", Keys: []string{"host"}}.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", tree["host"])
}

func TestDefaultsExpandDottedKeys(t *testing.T) {
	tree, err := Defaults{"api.url": "u", "logo_url": "l"}.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"api":      map[string]any{"url": "u"},
		"logo_url": "l",
	}, tree)
}
