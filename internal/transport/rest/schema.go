package rest

import (
	"encoding/json"
	"net/http"

	"github.com/invopop/jsonschema"
)

// SchemaHandler publishes the JSON Schema of the dataset file.
type SchemaHandler struct {
	schema *jsonschema.Schema
}

// NewSchemaHandler creates a SchemaHandler serving s.
func NewSchemaHandler(s *jsonschema.Schema) *SchemaHandler {
	return &SchemaHandler{schema: s}
}

// Schema returns the dataset schema.
// GET /api/schema
func (h *SchemaHandler) Schema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.schema) //nolint:errcheck
}
