// Package api is the plugin API mounted under /api. It only reports the
// plugin's status; real operations register here alongside their OpenAPI
// descriptions.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
)

// Status is the body of GET /status.
type Status struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

// API serves the plugin endpoints.
type API struct {
	name string
}

// New creates the API for the plugin known to models as name.
func New(name string) *API {
	return &API{name: name}
}

// Routes returns the API router, to be mounted at /api.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/status", a.handleStatus)
	return r
}

// Describe implements openapi.Describer.
func (a *API) Describe(doc *openapi3.T) {
	op := openapi3.NewOperation()
	op.OperationID = "getStatus"
	op.Summary = "Plugin status"
	op.Tags = []string{"meta"}
	op.Responses = openapi3.NewResponses()

	schema := openapi3.NewObjectSchema().
		WithProperty("status", openapi3.NewStringSchema()).
		WithProperty("name", openapi3.NewStringSchema())
	resp := openapi3.NewResponse().WithDescription("Plugin is up")
	resp.Content = openapi3.NewContentWithJSONSchema(schema)
	op.Responses.Set("200", &openapi3.ResponseRef{Value: resp})

	doc.AddOperation("/status", http.MethodGet, op)
}

func (a *API) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Status{Status: "ok", Name: a.name})
}
