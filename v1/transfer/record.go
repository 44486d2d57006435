package transfer

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// FieldType is the declared type of a record key or value as reported by
// the host pipeline. Only byte-shaped parts can carry wire-format payloads.
type FieldType string

const (
	TypeBytes  FieldType = "BYTES"
	TypeString FieldType = "STRING"
	TypeStruct FieldType = "STRUCT"
)

// RecordSchema is the host pipeline's type descriptor for a record part.
// It travels through the transform unchanged; the transform only rewrites
// the bytes underneath it.
type RecordSchema struct {
	Type     FieldType
	Optional bool
}

// Part identifies which half of a record was being rewritten when an
// operation failed.
type Part string

const (
	PartKey   Part = "key"
	PartValue Part = "value"
)

// Record is a single Kafka record moving through the transform.
//
// Key and Value are opaque and may be nil (tombstones are common for keys
// of compacted topics). When a part is present it must be a []byte for the
// transform to rewrite it; any other concrete type is rejected with
// ErrUnsupportedShape. KeySchema and ValueSchema are optional declared
// shapes and are preserved as-is on the outgoing record.
type Record struct {
	Topic     string
	Partition int
	Offset    int64

	Key   interface{}
	Value interface{}

	KeySchema   *RecordSchema
	ValueSchema *RecordSchema

	Time    time.Time
	Headers []kafka.Header
}

// part returns the raw content of the requested record part.
func (r Record) part(p Part) interface{} {
	if p == PartKey {
		return r.Key
	}
	return r.Value
}

// setPart replaces the content of the requested record part.
func (r *Record) setPart(p Part, content interface{}) {
	if p == PartKey {
		r.Key = content
		return
	}
	r.Value = content
}
