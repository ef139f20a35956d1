package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/jhaveripatric/plugin-server/internal/api"
	"github.com/jhaveripatric/plugin-server/internal/manifest"
	"github.com/jhaveripatric/plugin-server/internal/openapi"
)

// Route paths served to plugin-discovery clients.
const (
	ManifestPath = "/.well-known/ai-plugin.json"
	OpenAPIPath  = "/openapi.json"
	DocsPath     = "/docs"
	APIPath      = "/api"
	LogoPath     = "/logo.png"
)

// Builder creates the plugin routes.
type Builder struct {
	manifest []byte
	openapi  *openapi.Document
	api      *api.API
	logoFile string
	logger   *zap.Logger
}

// NewBuilder renders m once so every request is served the same bytes.
func NewBuilder(m *manifest.Manifest, doc *openapi.Document, a *api.API, logoFile string, logger *zap.Logger) (*Builder, error) {
	data, err := m.JSON()
	if err != nil {
		return nil, fmt.Errorf("render manifest: %w", err)
	}
	return &Builder{
		manifest: data,
		openapi:  doc,
		api:      a,
		logoFile: logoFile,
		logger:   logger,
	}, nil
}

// Build creates the route table.
func (b *Builder) Build() chi.Router {
	r := chi.NewRouter()

	r.Get(ManifestPath, b.serveManifest)
	r.Method(http.MethodGet, OpenAPIPath, b.openapi)

	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/index.html", http.StatusMovedPermanently)
	})
	r.Get(DocsPath+"/*", httpSwagger.Handler(httpSwagger.URL(OpenAPIPath)))

	if b.logoFile != "" {
		b.logger.Info("serving logo", zap.String("file", b.logoFile))
		r.Get(LogoPath, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			http.ServeFile(w, r, b.logoFile)
		})
	}

	r.Mount(APIPath, b.api.Routes())

	b.logger.Debug("routes built",
		zap.Strings("paths", []string{ManifestPath, OpenAPIPath, DocsPath, APIPath}),
	)
	return r
}

func (b *Builder) serveManifest(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b.manifest)
}
