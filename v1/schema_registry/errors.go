package schema_registry

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnsupportedSchemaType is returned when a schema carries a type tag this
// client cannot parse. Only Avro schemas are supported.
var ErrUnsupportedSchemaType = errors.New("schema_registry: unsupported schema type")

// RestError is the error payload returned by the Confluent Schema Registry
// REST API, combined with the HTTP status of the response.
//
// Well-known registry error codes:
//   - 40401: subject not found
//   - 40402: version not found
//   - 40403: schema not found
type RestError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"-"`

	// Code is the registry-specific error code.
	Code int `json:"error_code"`

	// Message is the human-readable error message from the registry.
	Message string `json:"message"`
}

func (e *RestError) Error() string {
	return fmt.Sprintf("schema registry returned status %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound reports whether err signals that a schema, subject or version
// does not exist in the registry.
func IsNotFound(err error) bool {
	var restErr *RestError
	return errors.As(err, &restErr) && restErr.StatusCode == http.StatusNotFound
}

// IsUnsupportedSchemaType reports whether err was caused by a schema type
// other than Avro.
func IsUnsupportedSchemaType(err error) bool {
	return errors.Is(err, ErrUnsupportedSchemaType)
}
