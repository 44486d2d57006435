package transfer

import (
	"github.com/Aleph-Alpha/schema-transfer/internal/lru"
	"github.com/Aleph-Alpha/schema-transfer/v1/schema_registry"
)

// SchemaTranscription is the remembered outcome of copying one schema from
// the source registry to the destination registry. Entries are never
// mutated after they are cached.
type SchemaTranscription struct {
	// DestinationID is the identifier the destination registry assigned to
	// the schema.
	DestinationID int32

	// Schema is the parsed schema that was copied.
	Schema *schema_registry.ParsedSchema
}

// Equal reports whether both transcriptions carry the same destination
// identifier and an equal schema.
func (t SchemaTranscription) Equal(other SchemaTranscription) bool {
	return t.DestinationID == other.DestinationID && t.Schema.Equal(other.Schema)
}

// TranscriptionCache remembers transcriptions by their source registry
// identifier so repeated identifiers cost no registry round trips. Only
// successful transcriptions are stored; failed lookups are retried on the
// next record carrying the same identifier.
//
// The cache is safe for concurrent use by multiple goroutines.
type TranscriptionCache struct {
	cache *lru.Cache[int32, SchemaTranscription]
}

// NewTranscriptionCache creates a cache holding at most capacity
// transcriptions. Beyond capacity the least recently used entry is evicted.
func NewTranscriptionCache(capacity int) *TranscriptionCache {
	return &TranscriptionCache{cache: lru.New[int32, SchemaTranscription](capacity)}
}

// Get returns the transcription cached under sourceID.
func (c *TranscriptionCache) Get(sourceID int32) (SchemaTranscription, bool) {
	return c.cache.Get(sourceID)
}

// Put stores the transcription under sourceID.
func (c *TranscriptionCache) Put(sourceID int32, transcription SchemaTranscription) {
	c.cache.Put(sourceID, transcription)
}

// Len returns the number of cached transcriptions.
func (c *TranscriptionCache) Len() int {
	return c.cache.Len()
}

// Capacity returns the maximum number of transcriptions the cache holds.
func (c *TranscriptionCache) Capacity() int {
	return c.cache.Capacity()
}
