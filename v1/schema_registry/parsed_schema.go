package schema_registry

import (
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// TypeAvro is the registry name of the Avro schema type. The registry omits
// the schemaType field for Avro schemas, so an empty type tag maps to it.
const TypeAvro = "AVRO"

// ParsedSchema is a schema that has been validated and normalized to its
// parsing canonical form. Two ParsedSchema values describing the same schema
// compare equal even when the original texts differ in whitespace, attribute
// order or non-normative attributes such as doc strings.
//
// ParsedSchema values are immutable; construct them with ParseSchema or
// ParseAvro.
type ParsedSchema struct {
	schemaType string
	canonical  string
	codec      *goavro.Codec
}

// ParseSchema validates schemaText as a schema of the given type. An empty
// schemaType is treated as Avro, matching the registry convention of omitting
// the type tag for Avro schemas. Any other type is rejected with
// ErrUnsupportedSchemaType.
func ParseSchema(schemaText, schemaType string) (*ParsedSchema, error) {
	if schemaType == "" {
		schemaType = TypeAvro
	}
	if schemaType != TypeAvro {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSchemaType, schemaType)
	}
	return ParseAvro(schemaText)
}

// ParseAvro validates schemaText as an Avro schema and returns it normalized
// to parsing canonical form.
func ParseAvro(schemaText string) (*ParsedSchema, error) {
	codec, err := goavro.NewCodec(schemaText)
	if err != nil {
		return nil, fmt.Errorf("invalid avro schema: %w", err)
	}

	return &ParsedSchema{
		schemaType: TypeAvro,
		canonical:  codec.CanonicalSchema(),
		codec:      codec,
	}, nil
}

// Type returns the schema type tag, e.g. "AVRO".
func (s *ParsedSchema) Type() string { return s.schemaType }

// Schema returns the schema text in parsing canonical form.
func (s *ParsedSchema) Schema() string { return s.canonical }

// Codec returns the Avro codec built from the schema. It can be used to
// decode and encode payloads written with this schema.
func (s *ParsedSchema) Codec() *goavro.Codec { return s.codec }

// Equal reports whether two parsed schemas are interchangeable: same type
// and same canonical form.
func (s *ParsedSchema) Equal(other *ParsedSchema) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.schemaType == other.schemaType && s.canonical == other.canonical
}
