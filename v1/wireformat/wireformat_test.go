package wireformat

import (
	"bytes"
	"testing"
)

func TestDecodeSchemaID(t *testing.T) {
	msg := []byte{0x00, 0x00, 0x00, 0x00, 0x07, 0xde, 0xad}

	id, err := DecodeSchemaID(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected schema id 7, got %d", id)
	}
}

func TestDecodeSchemaIDBigEndian(t *testing.T) {
	msg := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0xff}

	id, err := DecodeSchemaID(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 0x01020304 {
		t.Fatalf("expected schema id 0x01020304, got 0x%x", id)
	}
}

func TestDecodeSchemaIDWrongMagicByte(t *testing.T) {
	msg := []byte{0x01, 0x00, 0x00, 0x00, 0x07, 0xde}

	_, err := DecodeSchemaID(msg)
	if err == nil {
		t.Fatal("expected error for wrong magic byte")
	}
	if !IsMalformed(err) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestDecodeSchemaIDTooShort(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x00},
		{0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x07}, // header only, no payload
	}
	for _, msg := range cases {
		if _, err := DecodeSchemaID(msg); !IsMalformed(err) {
			t.Fatalf("expected malformed error for %d bytes, got %v", len(msg), err)
		}
	}
}

func TestSetSchemaIDRewritesOnlyIDBytes(t *testing.T) {
	msg := []byte{0x00, 0x00, 0x00, 0x00, 0x07, 0xca, 0xfe, 0xba, 0xbe}
	want := []byte{0x00, 0x00, 0x00, 0x00, 0x2a, 0xca, 0xfe, 0xba, 0xbe}

	if err := SetSchemaID(msg, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(msg, want) {
		t.Fatalf("expected %x, got %x", want, msg)
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	original := []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x02, 0x03}
	msg := append([]byte(nil), original...)

	id, err := DecodeSchemaID(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SetSchemaID(msg, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(msg, original) {
		t.Fatalf("round trip changed message: %x -> %x", original, msg)
	}
}

func TestSetSchemaIDTooShort(t *testing.T) {
	msg := []byte{0x00, 0x00, 0x00, 0x00, 0x07}
	if err := SetSchemaID(msg, 42); !IsMalformed(err) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestPayload(t *testing.T) {
	msg := []byte{0x00, 0x00, 0x00, 0x00, 0x07, 0x01, 0x02}

	payload, err := Payload(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(payload, []byte{0x01, 0x02}) {
		t.Fatalf("unexpected payload: %x", payload)
	}
}

func TestPrepend(t *testing.T) {
	msg := Prepend(42, []byte{0xca, 0xfe})
	want := []byte{0x00, 0x00, 0x00, 0x00, 0x2a, 0xca, 0xfe}

	if !bytes.Equal(msg, want) {
		t.Fatalf("expected %x, got %x", want, msg)
	}

	id, err := DecodeSchemaID(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected schema id 42, got %d", id)
	}
}
