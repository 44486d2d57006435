package transfer

import "context"

// Default configuration values
const (
	// DefaultSchemaCapacity is the number of schema transcriptions kept in
	// memory before the least recently used one is evicted.
	DefaultSchemaCapacity = 100
)

// Logger defines the logging interface used by this package.
// This matches the std logger client interface.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Config contains the configuration of the transform.
//
// The zero value disables key transfer and header forwarding, which is
// rarely what callers want; start from DefaultConfig and override fields
// instead.
type Config struct {
	// SchemaCapacity is the maximum number of schema transcriptions kept in
	// the cache. Must not be negative.
	// Default: 100
	SchemaCapacity int

	// TransferKeys controls whether record keys are rewritten. When false,
	// keys pass through untouched and only values are transformed.
	// Default: true (via DefaultConfig)
	TransferKeys bool

	// IncludeHeaders controls whether record headers are carried over to
	// the outgoing record. When false, headers are dropped.
	// Default: true (via DefaultConfig)
	IncludeHeaders bool

	// IgnoreTopics lists topic rules exempt from transformation. Each rule
	// is compiled as an anchored regular expression; a rule that is not
	// valid regex syntax degrades to literal topic-name equality. Records
	// from a matching topic pass through completely unmodified.
	IgnoreTopics []string

	// SubjectStrategy names the destination subject a schema is registered
	// under. Nil selects TopicNameStrategy.
	// Default: TopicNameStrategy
	SubjectStrategy SubjectNameStrategy
}

// DefaultConfig returns a Config carrying the documented defaults: keys are
// transferred, headers are kept, and up to 100 transcriptions are cached.
func DefaultConfig() Config {
	return Config{
		SchemaCapacity: DefaultSchemaCapacity,
		TransferKeys:   true,
		IncludeHeaders: true,
	}
}
