package transfer

import (
	"encoding/json"

	"github.com/Aleph-Alpha/schema-transfer/v1/schema_registry"
)

// SubjectNameStrategy names the destination subject a schema is registered
// under. Implementations must be pure: the same topic, part and schema
// always produce the same subject, with no side effects.
type SubjectNameStrategy interface {
	SubjectName(topic string, isKey bool, schema *schema_registry.ParsedSchema) string
}

// TopicNameStrategy derives the subject from the topic alone: "<topic>-key"
// for keys and "<topic>-value" for values. This is the Confluent default
// and keeps destination subjects aligned with a source that uses the same
// strategy.
type TopicNameStrategy struct{}

func (TopicNameStrategy) SubjectName(topic string, isKey bool, _ *schema_registry.ParsedSchema) string {
	if isKey {
		return topic + "-key"
	}
	return topic + "-value"
}

// RecordNameStrategy derives the subject from the schema's full name. This
// decouples subjects from topics, so one schema produced to many topics is
// registered under a single subject.
type RecordNameStrategy struct{}

func (RecordNameStrategy) SubjectName(_ string, _ bool, schema *schema_registry.ParsedSchema) string {
	return schemaFullName(schema)
}

// TopicRecordNameStrategy combines topic and schema full name into
// "<topic>-<full name>".
type TopicRecordNameStrategy struct{}

func (TopicRecordNameStrategy) SubjectName(topic string, _ bool, schema *schema_registry.ParsedSchema) string {
	return topic + "-" + schemaFullName(schema)
}

// schemaFullName extracts the full record name from a schema in canonical
// form. Canonical form normalizes named types to their full names, and
// primitive schemas canonicalize to a bare JSON string holding the type
// name, which is returned as-is.
func schemaFullName(schema *schema_registry.ParsedSchema) string {
	if schema == nil {
		return ""
	}
	var node interface{}
	if err := json.Unmarshal([]byte(schema.Schema()), &node); err != nil {
		return ""
	}
	switch v := node.(type) {
	case string:
		return v
	case map[string]interface{}:
		if name, ok := v["name"].(string); ok {
			return name
		}
	}
	return ""
}
