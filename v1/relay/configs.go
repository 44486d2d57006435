package relay

import "context"

// OnError policies. They decide what happens to a record the transform
// rejects; fetch, produce and commit failures always stop the pipeline.
const (
	// OnErrorFail stops the pipeline at the first failing record. Run
	// returns the failure and no further records are consumed.
	OnErrorFail = "fail"

	// OnErrorSkip logs the failing record, commits its offset so it is not
	// redelivered, and continues with the next record.
	OnErrorSkip = "skip"
)

// Default configuration values
const (
	// DefaultWorkers is the number of concurrent pipeline workers.
	DefaultWorkers = 1
)

// Logger defines the logging interface used by this package.
// This matches the std logger client interface.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Config contains the configuration of the relay pipeline.
type Config struct {
	// Workers is the number of goroutines running the fetch, transform,
	// produce, commit loop. All workers share the same consumer, producer
	// and transform.
	// Default: 1
	Workers int

	// OnError selects the policy for records the transform rejects. Must
	// be OnErrorFail, OnErrorSkip, or empty.
	// Default: OnErrorFail
	OnError string
}
