package relay

import (
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/Aleph-Alpha/schema-transfer/v1/transfer"
)

// recordFromMessage converts a fetched Kafka message into the record shape
// the transform consumes. Nil keys and values stay nil so tombstones pass
// through unmodified.
func recordFromMessage(msg kafka.Message) transfer.Record {
	record := transfer.Record{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Time:      msg.Time,
		Headers:   msg.Headers,
	}
	if msg.Key != nil {
		record.Key = msg.Key
	}
	if msg.Value != nil {
		record.Value = msg.Value
	}
	return record
}

// messageFromRecord converts a transformed record back into a Kafka message
// bound for the destination cluster. The topic name is preserved; the
// destination writer routes by it.
func messageFromRecord(record transfer.Record) (kafka.Message, error) {
	key, err := partBytes(record.Key)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("record key: %w", err)
	}
	value, err := partBytes(record.Value)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("record value: %w", err)
	}
	return kafka.Message{
		Topic:   record.Topic,
		Key:     key,
		Value:   value,
		Headers: record.Headers,
		Time:    record.Time,
	}, nil
}

// partBytes extracts the raw bytes of a record part. Records entering the
// pipeline carry byte slices, so anything else means a transformer handed
// back a shape Kafka cannot carry.
func partBytes(content interface{}) ([]byte, error) {
	if content == nil {
		return nil, nil
	}
	raw, ok := content.([]byte)
	if !ok {
		return nil, fmt.Errorf("relay: cannot produce %T, expected bytes", content)
	}
	return raw, nil
}
