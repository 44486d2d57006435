package kafka

import "time"

// Default configuration values
const (
	// DefaultMinBytes is the minimum batch size the consumer accepts.
	DefaultMinBytes = 1

	// DefaultMaxBytes is the maximum batch size the consumer accepts.
	DefaultMaxBytes = 10e6

	// DefaultMaxWait is how long the consumer waits for DefaultMinBytes to
	// accumulate before returning what it has.
	DefaultMaxWait = 500 * time.Millisecond

	// DefaultCommitInterval is the auto-commit flush interval.
	DefaultCommitInterval = time.Second

	// DefaultStartOffset makes new consumer groups start at the oldest
	// retained record. A relay must not silently skip history.
	DefaultStartOffset = -2 // kafka.FirstOffset

	// DefaultPartition means "no explicit partition": consumption is driven
	// by the consumer group assignment.
	DefaultPartition = -1

	// DefaultRequiredAcks waits for all in-sync replicas.
	DefaultRequiredAcks = -1

	// DefaultBatchSize is the async producer batch size.
	DefaultBatchSize = 100

	// DefaultBatchTimeout is the async producer batch flush interval.
	DefaultBatchTimeout = time.Second

	// DefaultMaxAttempts is how often a produce is retried before failing.
	DefaultMaxAttempts = 10

	// DefaultWriteTimeout bounds a single produce round trip.
	DefaultWriteTimeout = 10 * time.Second
)

// Logger defines the logging interface used by this package.
// This matches the std logger client interface.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// TLSConfig holds the TLS settings for broker connections.
type TLSConfig struct {
	// Enabled turns TLS on for all broker connections.
	Enabled bool

	// CACertPath is the PEM file holding the broker CA certificate.
	CACertPath string

	// ClientCertPath and ClientKeyPath hold the client certificate pair for
	// mutual TLS. Both must be set together.
	ClientCertPath string
	ClientKeyPath  string

	// InsecureSkipVerify disables server certificate verification.
	InsecureSkipVerify bool
}

// SASLConfig holds the SASL authentication settings.
type SASLConfig struct {
	// Enabled turns SASL authentication on.
	Enabled bool

	// Mechanism selects the SASL mechanism: "PLAIN", "SCRAM-SHA-256" or
	// "SCRAM-SHA-512".
	Mechanism string

	// Username and Password are the SASL credentials.
	Username string
	Password string
}

// Config contains the configuration for a Kafka client. One client owns one
// role: a consumer (IsConsumer set) or a producer.
type Config struct {
	// Brokers lists the bootstrap broker addresses.
	Brokers []string

	// Topic is the topic to consume from or produce to. A producer may
	// leave it empty and set the topic per message instead.
	Topic string

	// GroupID is the consumer group. Required for consumers.
	GroupID string

	// IsConsumer selects the consumer role. When false the client is a
	// producer.
	IsConsumer bool

	// MinBytes is the minimum batch size the consumer accepts.
	// Default: 1
	MinBytes int

	// MaxBytes is the maximum batch size the consumer accepts.
	// Default: 10e6
	MaxBytes int

	// MaxWait bounds how long the consumer waits for MinBytes.
	// Default: 500ms
	MaxWait time.Duration

	// EnableAutoCommit makes the consumer commit offsets on an interval
	// instead of per explicit commit call.
	EnableAutoCommit bool

	// CommitInterval is the auto-commit flush interval.
	// Default: 1s
	CommitInterval time.Duration

	// StartOffset is where a new consumer group starts: kafka.FirstOffset,
	// kafka.LastOffset, or an absolute offset.
	// Default: kafka.FirstOffset
	StartOffset int64

	// Partition pins the consumer to one partition instead of using the
	// group assignment. Leave at default for group consumption.
	// Default: -1 (group assignment)
	Partition int

	// RequiredAcks is the number of broker acknowledgements a produce
	// waits for: -1 all in-sync replicas, 1 leader only.
	// Default: -1
	RequiredAcks int

	// Async batches produced messages instead of waiting per call.
	Async bool

	// BatchSize is the async producer batch size.
	// Default: 100
	BatchSize int

	// BatchTimeout is the async producer batch flush interval.
	// Default: 1s
	BatchTimeout time.Duration

	// MaxAttempts is how often a produce is retried before failing.
	// Default: 10
	MaxAttempts int

	// WriteTimeout bounds a single produce round trip.
	// Default: 10s
	WriteTimeout time.Duration

	// CompressionCodec compresses produced batches: "gzip", "snappy",
	// "lz4" or "zstd". Empty means no compression.
	CompressionCodec string

	// TLS configures encrypted broker connections.
	TLS TLSConfig

	// SASL configures broker authentication.
	SASL SASLConfig

	// Logger receives internal client errors (optional).
	Logger Logger

	// ErrorLogger is a custom error logging function, used when Logger is
	// not set (optional).
	ErrorLogger func(msg string, args ...interface{})
}
