package transfer

import "testing"

func TestTopicNameStrategy(t *testing.T) {
	strategy := TopicNameStrategy{}

	if got := strategy.SubjectName("orders", true, nil); got != "orders-key" {
		t.Fatalf("expected orders-key, got %q", got)
	}
	if got := strategy.SubjectName("orders", false, nil); got != "orders-value" {
		t.Fatalf("expected orders-value, got %q", got)
	}
}

func TestRecordNameStrategyUsesSchemaFullName(t *testing.T) {
	schema := mustParse(t, `{"type":"record","name":"Order","namespace":"com.example","fields":[{"name":"id","type":"string"}]}`)

	strategy := RecordNameStrategy{}
	if got := strategy.SubjectName("orders", false, schema); got != "com.example.Order" {
		t.Fatalf("expected com.example.Order, got %q", got)
	}
}

func TestRecordNameStrategyPrimitiveSchema(t *testing.T) {
	schema := mustParse(t, `"string"`)

	strategy := RecordNameStrategy{}
	if got := strategy.SubjectName("orders", true, schema); got != "string" {
		t.Fatalf("expected string, got %q", got)
	}
}

func TestTopicRecordNameStrategy(t *testing.T) {
	schema := mustParse(t, `{"type":"record","name":"Order","namespace":"com.example","fields":[{"name":"id","type":"string"}]}`)

	strategy := TopicRecordNameStrategy{}
	if got := strategy.SubjectName("orders", false, schema); got != "orders-com.example.Order" {
		t.Fatalf("expected orders-com.example.Order, got %q", got)
	}
}
