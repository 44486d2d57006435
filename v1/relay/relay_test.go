package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	kafkaclient "github.com/Aleph-Alpha/schema-transfer/v1/kafka"
	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
	"github.com/Aleph-Alpha/schema-transfer/v1/transfer"
)

// pipelineLog records the order of publish and commit calls across fakes.
// A nil log discards events.
type pipelineLog struct {
	mu     sync.Mutex
	events []string
}

func (l *pipelineLog) add(event string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *pipelineLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// fakeConsumer hands out queued messages and then blocks like a real reader
// with no traffic. A non-nil fetchErr is returned once the queue is drained.
type fakeConsumer struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []kafka.Message
	fetchErr  error
	commitErr error
	log       *pipelineLog
}

func (c *fakeConsumer) FetchMessage(ctx context.Context) (kafka.Message, error) {
	c.mu.Lock()
	if len(c.queue) > 0 {
		msg := c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()
		return msg, nil
	}
	fetchErr := c.fetchErr
	c.mu.Unlock()

	if fetchErr != nil {
		return kafka.Message{}, fetchErr
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (c *fakeConsumer) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.commitErr != nil {
		return c.commitErr
	}
	for _, msg := range msgs {
		c.log.add(fmt.Sprintf("commit %s@%d", msg.Topic, msg.Offset))
		c.committed = append(c.committed, msg)
	}
	return nil
}

func (c *fakeConsumer) commitCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.committed)
}

// fakeProducer records published messages.
type fakeProducer struct {
	mu         sync.Mutex
	published  []kafka.Message
	publishErr error
	log        *pipelineLog
}

func (p *fakeProducer) PublishMessages(_ context.Context, msgs ...kafka.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.publishErr != nil {
		return p.publishErr
	}
	for _, msg := range msgs {
		p.log.add("publish " + msg.Topic)
		p.published = append(p.published, msg)
	}
	return nil
}

func (p *fakeProducer) publishedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func (p *fakeProducer) publishedMessages() []kafka.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]kafka.Message(nil), p.published...)
}

// fakeTransformer applies the configured function, or passes records through
// untouched when none is set.
type fakeTransformer struct {
	apply func(ctx context.Context, record transfer.Record) (transfer.Record, error)
}

func (t *fakeTransformer) Apply(ctx context.Context, record transfer.Record) (transfer.Record, error) {
	if t.apply != nil {
		return t.apply(ctx, record)
	}
	return record, nil
}

func (t *fakeTransformer) Close() error { return nil }

// markingTransformer prefixes every record value so tests can tell
// transformed records from originals.
func markingTransformer() *fakeTransformer {
	return &fakeTransformer{
		apply: func(_ context.Context, record transfer.Record) (transfer.Record, error) {
			raw, _ := record.Value.([]byte)
			record.Value = append([]byte("rewritten:"), raw...)
			return record, nil
		},
	}
}

// failingTransformer rejects the record at failOffset and passes everything
// else through.
func failingTransformer(failOffset int64, failErr error) *fakeTransformer {
	return &fakeTransformer{
		apply: func(_ context.Context, record transfer.Record) (transfer.Record, error) {
			if record.Offset == failOffset {
				return transfer.Record{}, failErr
			}
			return record, nil
		},
	}
}

type fakeObserver struct {
	mu  sync.Mutex
	ops []observability.OperationContext
}

func (o *fakeObserver) ObserveOperation(ctx observability.OperationContext) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, ctx)
}

func (o *fakeObserver) outcomes() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []string
	for _, op := range o.ops {
		if outcome, ok := op.Metadata["outcome"].(string); ok {
			out = append(out, outcome)
		}
	}
	return out
}

type fakeLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
	errs  []string
}

func (l *fakeLogger) InfoWithContext(_ context.Context, msg string, _ error, _ ...map[string]interface{}) {
	l.record(&l.infos, msg)
}

func (l *fakeLogger) WarnWithContext(_ context.Context, msg string, _ error, _ ...map[string]interface{}) {
	l.record(&l.warns, msg)
}

func (l *fakeLogger) ErrorWithContext(_ context.Context, msg string, _ error, _ ...map[string]interface{}) {
	l.record(&l.errs, msg)
}

func (l *fakeLogger) record(dst *[]string, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*dst = append(*dst, msg)
}

func (l *fakeLogger) errorMessages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errs...)
}

func sourceMessage(topic string, offset int64, key, value string) kafka.Message {
	return kafka.Message{
		Topic:     topic,
		Partition: 0,
		Offset:    offset,
		Key:       []byte(key),
		Value:     []byte(value),
		Time:      time.Unix(1700000000+offset, 0).UTC(),
	}
}

// runUntil runs the relay in the background until cond holds, then cancels
// the context and returns Run's result.
func runUntil(t *testing.T, r *Relay, cond func() bool) error {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		select {
		case err := <-done:
			t.Fatalf("relay stopped before reaching the expected state: %v", err)
		default:
		}
		if time.Now().After(deadline) {
			cancel()
			<-done
			t.Fatal("relay did not reach the expected state in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not stop after cancellation")
		return nil
	}
}

func TestRelayTransfersRecords(t *testing.T) {
	log := &pipelineLog{}
	consumer := &fakeConsumer{
		queue: []kafka.Message{
			sourceMessage("orders", 0, "k0", "v0"),
			sourceMessage("orders", 1, "k1", "v1"),
			sourceMessage("users", 0, "k2", "v2"),
		},
		log: log,
	}
	consumer.queue[0].Headers = []kafka.Header{{Key: "trace", Value: []byte("abc")}}
	producer := &fakeProducer{log: log}
	observer := &fakeObserver{}

	r, err := NewRelay(Config{}, consumer, producer, markingTransformer())
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}
	r = r.WithObserver(observer)

	if err := runUntil(t, r, func() bool { return producer.publishedCount() == 3 }); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	published := producer.publishedMessages()
	wantTopics := []string{"orders", "orders", "users"}
	for i, msg := range published {
		if msg.Topic != wantTopics[i] {
			t.Errorf("message %d produced to topic %q, want %q", i, msg.Topic, wantTopics[i])
		}
		if !strings.HasPrefix(string(msg.Value), "rewritten:") {
			t.Errorf("message %d value %q was not transformed", i, msg.Value)
		}
	}
	if string(published[0].Key) != "k0" {
		t.Errorf("key not preserved, got %q", published[0].Key)
	}
	if len(published[0].Headers) != 1 || published[0].Headers[0].Key != "trace" {
		t.Errorf("headers not preserved, got %v", published[0].Headers)
	}
	if !published[0].Time.Equal(time.Unix(1700000000, 0).UTC()) {
		t.Errorf("timestamp not preserved, got %v", published[0].Time)
	}

	if got := consumer.commitCount(); got != 3 {
		t.Errorf("committed %d records, want 3", got)
	}

	// Each record must be produced before its offset is committed.
	events := log.list()
	if len(events) != 6 {
		t.Fatalf("got %d pipeline events, want 6: %v", len(events), events)
	}
	for i, event := range events {
		want := "publish"
		if i%2 == 1 {
			want = "commit"
		}
		if !strings.HasPrefix(event, want) {
			t.Errorf("event %d is %q, want a %s event", i, event, want)
		}
	}

	for i, outcome := range observer.outcomes() {
		if outcome != "transferred" {
			t.Errorf("outcome %d is %q, want transferred", i, outcome)
		}
	}
}

func TestRelayTombstonePassesThrough(t *testing.T) {
	consumer := &fakeConsumer{
		queue: []kafka.Message{{Topic: "orders", Offset: 0, Key: []byte("k"), Value: nil}},
	}
	producer := &fakeProducer{}

	r, err := NewRelay(Config{}, consumer, producer, &fakeTransformer{})
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}

	if err := runUntil(t, r, func() bool { return producer.publishedCount() == 1 }); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	published := producer.publishedMessages()[0]
	if published.Value != nil {
		t.Errorf("tombstone value changed, got %v", published.Value)
	}
	if string(published.Key) != "k" {
		t.Errorf("tombstone key changed, got %q", published.Key)
	}
}

func TestRelayFailPolicyStopsPipeline(t *testing.T) {
	failErr := errors.New("schema 7 is gone")
	consumer := &fakeConsumer{
		queue: []kafka.Message{
			sourceMessage("orders", 0, "k0", "v0"),
			sourceMessage("orders", 1, "k1", "v1"),
			sourceMessage("orders", 2, "k2", "v2"),
		},
	}
	producer := &fakeProducer{}
	observer := &fakeObserver{}

	r, err := NewRelay(Config{}, consumer, producer, failingTransformer(1, failErr))
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}
	r = r.WithObserver(observer)

	err = r.Run(context.Background())
	if err == nil {
		t.Fatal("Run succeeded, want record failure")
	}
	if !errors.Is(err, failErr) {
		t.Errorf("Run error %v does not wrap the transform failure", err)
	}
	recordErr, ok := IsRecordError(err)
	if !ok {
		t.Fatalf("Run error %v is not a record error", err)
	}
	if recordErr.Topic != "orders" || recordErr.Offset != 1 {
		t.Errorf("record error identifies %s@%d, want orders@1", recordErr.Topic, recordErr.Offset)
	}

	if got := producer.publishedCount(); got != 1 {
		t.Errorf("published %d records, want 1", got)
	}
	if got := consumer.commitCount(); got != 1 {
		t.Errorf("committed %d records, want 1; the failing record must stay uncommitted", got)
	}

	outcomes := observer.outcomes()
	if len(outcomes) != 2 || outcomes[0] != "transferred" || outcomes[1] != "failed" {
		t.Errorf("outcomes %v, want [transferred failed]", outcomes)
	}
}

func TestRelaySkipPolicyContinues(t *testing.T) {
	failErr := errors.New("schema 7 is gone")
	consumer := &fakeConsumer{
		queue: []kafka.Message{
			sourceMessage("orders", 0, "k0", "v0"),
			sourceMessage("orders", 1, "k1", "v1"),
			sourceMessage("orders", 2, "k2", "v2"),
		},
	}
	producer := &fakeProducer{}
	observer := &fakeObserver{}
	logger := &fakeLogger{}

	r, err := NewRelay(Config{OnError: OnErrorSkip}, consumer, producer, failingTransformer(1, failErr))
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}
	r = r.WithObserver(observer).WithLogger(logger)

	if err := runUntil(t, r, func() bool { return producer.publishedCount() == 2 }); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := consumer.commitCount(); got != 3 {
		t.Errorf("committed %d records, want 3; skipped records must be committed", got)
	}

	outcomes := observer.outcomes()
	want := []string{"transferred", "skipped", "transferred"}
	if len(outcomes) != len(want) {
		t.Fatalf("outcomes %v, want %v", outcomes, want)
	}
	for i := range want {
		if outcomes[i] != want[i] {
			t.Errorf("outcome %d is %q, want %q", i, outcomes[i], want[i])
		}
	}

	errs := logger.errorMessages()
	if len(errs) != 1 || errs[0] != "Skipping record that could not be transformed" {
		t.Errorf("error logs %v, want a single skip message", errs)
	}
}

func TestRelayProduceFailureStopsEvenWhenSkipping(t *testing.T) {
	produceErr := errors.New("destination brokers unreachable")
	consumer := &fakeConsumer{
		queue: []kafka.Message{sourceMessage("orders", 0, "k0", "v0")},
	}
	producer := &fakeProducer{publishErr: produceErr}

	r, err := NewRelay(Config{OnError: OnErrorSkip}, consumer, producer, &fakeTransformer{})
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}

	err = r.Run(context.Background())
	if !errors.Is(err, produceErr) {
		t.Fatalf("Run error %v does not wrap the produce failure", err)
	}
	if _, ok := IsRecordError(err); ok {
		t.Error("produce failure reported as a record error; it must not be skippable")
	}
	if got := consumer.commitCount(); got != 0 {
		t.Errorf("committed %d records after a produce failure, want 0", got)
	}
}

func TestRelayCommitFailureStops(t *testing.T) {
	commitErr := errors.New("group coordinator moved")
	consumer := &fakeConsumer{
		queue:     []kafka.Message{sourceMessage("orders", 0, "k0", "v0")},
		commitErr: commitErr,
	}
	producer := &fakeProducer{}

	r, err := NewRelay(Config{}, consumer, producer, &fakeTransformer{})
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}

	err = r.Run(context.Background())
	if !errors.Is(err, commitErr) {
		t.Fatalf("Run error %v does not wrap the commit failure", err)
	}
}

func TestRelayFetchFailureStops(t *testing.T) {
	fetchErr := errors.New("source brokers unreachable")
	consumer := &fakeConsumer{fetchErr: fetchErr}
	producer := &fakeProducer{}

	r, err := NewRelay(Config{}, consumer, producer, &fakeTransformer{})
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}

	err = r.Run(context.Background())
	if !errors.Is(err, fetchErr) {
		t.Fatalf("Run error %v does not wrap the fetch failure", err)
	}
}

func TestRelayShutdownEndsCleanly(t *testing.T) {
	shutdownErrs := map[string]error{
		"reader closed": io.EOF,
		"group closed":  kafka.ErrGroupClosed,
		"client closed": kafkaclient.ErrClientClosed,
	}

	for name, shutdownErr := range shutdownErrs {
		t.Run(name, func(t *testing.T) {
			consumer := &fakeConsumer{fetchErr: shutdownErr}
			r, err := NewRelay(Config{}, consumer, &fakeProducer{}, &fakeTransformer{})
			if err != nil {
				t.Fatalf("NewRelay: %v", err)
			}
			if err := r.Run(context.Background()); err != nil {
				t.Errorf("Run returned %v on source shutdown, want nil", err)
			}
		})
	}
}

func TestRelayRejectsNonByteTransformOutput(t *testing.T) {
	badTransformer := &fakeTransformer{
		apply: func(_ context.Context, record transfer.Record) (transfer.Record, error) {
			record.Value = 42
			return record, nil
		},
	}
	consumer := &fakeConsumer{
		queue: []kafka.Message{sourceMessage("orders", 0, "k0", "v0")},
	}
	producer := &fakeProducer{}

	r, err := NewRelay(Config{}, consumer, producer, badTransformer)
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}

	err = r.Run(context.Background())
	if _, ok := IsRecordError(err); !ok {
		t.Fatalf("Run error %v is not a record error", err)
	}
	if got := producer.publishedCount(); got != 0 {
		t.Errorf("published %d records, want 0", got)
	}
	if got := consumer.commitCount(); got != 0 {
		t.Errorf("committed %d records, want 0", got)
	}
}

func TestRelayParallelWorkers(t *testing.T) {
	topics := []string{"orders", "users", "payments", "shipments"}
	var queue []kafka.Message
	for offset := int64(0); offset < 10; offset++ {
		for _, topic := range topics {
			queue = append(queue, sourceMessage(topic, offset, "k", fmt.Sprintf("%s-%d", topic, offset)))
		}
	}
	consumer := &fakeConsumer{queue: queue}
	producer := &fakeProducer{}

	r, err := NewRelay(Config{Workers: 4}, consumer, producer, markingTransformer())
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}

	if err := runUntil(t, r, func() bool { return producer.publishedCount() == len(queue) }); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	seen := make(map[string]int)
	for _, msg := range producer.publishedMessages() {
		seen[string(msg.Value)]++
	}
	if len(seen) != len(queue) {
		t.Errorf("got %d distinct records, want %d", len(seen), len(queue))
	}
	for value, count := range seen {
		if count != 1 {
			t.Errorf("record %q produced %d times, want exactly once", value, count)
		}
	}
	if got := consumer.commitCount(); got != len(queue) {
		t.Errorf("committed %d records, want %d", got, len(queue))
	}
}

func TestNewRelayValidation(t *testing.T) {
	consumer := &fakeConsumer{}
	producer := &fakeProducer{}
	transformer := &fakeTransformer{}

	if _, err := NewRelay(Config{}, nil, producer, transformer); !errors.Is(err, ErrConsumerRequired) {
		t.Errorf("nil consumer returned %v, want ErrConsumerRequired", err)
	}
	if _, err := NewRelay(Config{}, consumer, nil, transformer); !errors.Is(err, ErrProducerRequired) {
		t.Errorf("nil producer returned %v, want ErrProducerRequired", err)
	}
	if _, err := NewRelay(Config{}, consumer, producer, nil); !errors.Is(err, ErrTransformerRequired) {
		t.Errorf("nil transformer returned %v, want ErrTransformerRequired", err)
	}
	if _, err := NewRelay(Config{Workers: -1}, consumer, producer, transformer); err == nil {
		t.Error("negative worker count accepted")
	}
	if _, err := NewRelay(Config{OnError: "retry"}, consumer, producer, transformer); err == nil {
		t.Error("unsupported on-error policy accepted")
	}

	r, err := NewRelay(Config{}, consumer, producer, transformer)
	if err != nil {
		t.Fatalf("NewRelay with defaults: %v", err)
	}
	if r.cfg.Workers != DefaultWorkers {
		t.Errorf("default workers is %d, want %d", r.cfg.Workers, DefaultWorkers)
	}
	if r.cfg.OnError != OnErrorFail {
		t.Errorf("default on-error policy is %q, want %q", r.cfg.OnError, OnErrorFail)
	}
}
