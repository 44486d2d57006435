package schema_registry

import "context"

// Registry provides an interface for interacting with a Confluent Schema Registry.
// It handles schema retrieval, registration, and caching for efficient transfer.
type Registry interface {
	// GetSchemaByID retrieves a schema by its ID
	GetSchemaByID(ctx context.Context, id int) (*ParsedSchema, error)

	// GetLatestSchema retrieves the latest version of a schema for a subject
	GetLatestSchema(ctx context.Context, subject string) (*Metadata, error)

	// RegisterSchema registers a schema under a subject and returns the ID
	// the registry assigned to it
	RegisterSchema(ctx context.Context, subject string, schema *ParsedSchema) (int, error)

	// CheckCompatibility checks if a schema is compatible with the latest
	// version registered under a subject
	CheckCompatibility(ctx context.Context, subject string, schema *ParsedSchema) (bool, error)
}

// Metadata contains metadata about a registered schema
type Metadata struct {
	ID      int    `json:"id"`
	Version int    `json:"version"`
	Schema  string `json:"schema"`
	Subject string `json:"subject"`
	Type    string `json:"schemaType,omitempty"`
}
