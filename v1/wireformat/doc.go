// Package wireformat implements the Confluent Schema Registry wire format
// header used by registry-aware serializers.
//
// Every message produced through a registry-aware serializer is prefixed with
// a fixed 5-byte header:
//
//	[magic_byte (1 byte)] [schema_id (4 bytes, big-endian)] [payload]
//
// The magic byte is always 0x00. The schema id is the registry-assigned
// identifier of the schema the payload was serialized with. A well-formed
// message is therefore at least 6 bytes long: the 5-byte header plus a
// non-empty payload.
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/schema-transfer/v1/wireformat"
//
//	// Read the schema id out of a consumed message
//	id, err := wireformat.DecodeSchemaID(msg)
//	if err != nil {
//	    // wireformat.IsMalformed(err) == true for wrong magic byte
//	    // or truncated messages
//	    return err
//	}
//
//	// Rewrite the schema id in place, leaving magic byte and payload alone
//	if err := wireformat.SetSchemaID(msg, newID); err != nil {
//	    return err
//	}
//
//	// Build a new message from a schema id and a serialized payload
//	msg := wireformat.Prepend(42, payload)
//
// No other wire layouts are recognized. Messages with an unknown magic byte
// or fewer than 6 bytes always fail with ErrMalformed; there is no fallback
// interpretation.
package wireformat
