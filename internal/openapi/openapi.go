// Package openapi assembles and serves the OpenAPI document that the
// manifest's api.url points at.
package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"
)

// Describer adds its operations to an OpenAPI document.
type Describer interface {
	Describe(doc *openapi3.T)
}

// Document is a built OpenAPI specification with its JSON rendering.
type Document struct {
	spec *openapi3.T
	json []byte
}

// New builds and validates a document whose single server is serverURL.
func New(title, version string, serverURL *url.URL, describers ...Describer) (*Document, error) {
	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Servers: openapi3.Servers{&openapi3.Server{URL: serverURL.String()}},
		Paths:   openapi3.NewPaths(),
	}

	for _, d := range describers {
		d.Describe(spec)
	}

	if err := spec.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi: %w", err)
	}

	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}

	return &Document{spec: spec, json: data}, nil
}

// Spec returns the underlying document.
func (d *Document) Spec() *openapi3.T { return d.spec }

// JSON returns the rendered document.
func (d *Document) JSON() []byte { return d.json }

// ServeHTTP serves the rendered document.
func (d *Document) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(d.json)
}
