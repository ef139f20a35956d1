package openapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingDescriber struct{}

func (pingDescriber) Describe(doc *openapi3.T) {
	op := openapi3.NewOperation()
	op.OperationID = "ping"
	op.Responses = openapi3.NewResponses()
	op.Responses.Set("200", &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("pong")})
	doc.AddOperation("/ping", http.MethodGet, op)
}

func TestNew(t *testing.T) {
	server, err := url.Parse("https://p.example/api")
	require.NoError(t, err)

	doc, err := New("Plugin Server", "1.0", server, pingDescriber{})
	require.NoError(t, err)

	spec := doc.Spec()
	assert.Equal(t, "Plugin Server", spec.Info.Title)
	require.Len(t, spec.Servers, 1)
	assert.Equal(t, "https://p.example/api", spec.Servers[0].URL)
	assert.NotNil(t, spec.Paths.Find("/ping"))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(doc.JSON(), &raw))
	assert.Equal(t, "3.0.3", raw["openapi"])
}

func TestNewRejectsInvalid(t *testing.T) {
	server, err := url.Parse("https://p.example/api")
	require.NoError(t, err)

	_, err = New("", "1.0", server)
	assert.Error(t, err)
}

func TestServeHTTP(t *testing.T) {
	server, err := url.Parse("https://p.example/api")
	require.NoError(t, err)
	doc, err := New("Plugin Server", "1.0", server)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	doc.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, doc.JSON(), rec.Body.Bytes())
}
