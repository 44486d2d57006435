package kafka

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestKafkaRoundTrip publishes records and consumes them back through a
// single-node KRaft broker.
func TestKafkaRoundTrip(t *testing.T) {
	// Skip if running in short mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	broker, containerInstance := initializeKafka(ctx, t)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	topic := fmt.Sprintf("round-trip-%d", time.Now().UnixNano())

	producer, err := NewClient(Config{
		Brokers: []string{broker},
		Topic:   topic,
	})
	require.NoError(t, err)
	defer producer.GracefulShutdown()

	headers := []kafkago.Header{{Key: "origin", Value: []byte("integration")}}
	for i := 0; i < 3; i++ {
		key := []byte(fmt.Sprintf("key-%d", i))
		value := []byte(fmt.Sprintf("value-%d", i))
		require.NoError(t, producer.Publish(ctx, key, value, headers))
	}

	consumer, err := NewClient(Config{
		Brokers:    []string{broker},
		Topic:      topic,
		GroupID:    fmt.Sprintf("group-%d", time.Now().UnixNano()),
		IsConsumer: true,
	})
	require.NoError(t, err)
	defer consumer.GracefulShutdown()

	consumeCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	wg := &sync.WaitGroup{}
	msgChan := consumer.Consume(consumeCtx, wg)

	received := map[string]string{}
	for len(received) < 3 {
		select {
		case msg, ok := <-msgChan:
			require.True(t, ok, "consumer channel closed early")
			received[string(msg.Key())] = string(msg.Body())
			assert.Equal(t, topic, msg.Topic())
			assert.Equal(t, "integration", msg.Header()["origin"])
			require.NoError(t, msg.CommitMsg())
		case <-consumeCtx.Done():
			t.Fatalf("timed out, received %d of 3 records", len(received))
		}
	}

	cancel()
	wg.Wait()

	for i := 0; i < 3; i++ {
		assert.Equal(t, fmt.Sprintf("value-%d", i), received[fmt.Sprintf("key-%d", i)])
	}
}

// TestKafkaPerMessageTopics verifies a topic-less producer routes messages
// by their own topic field.
func TestKafkaPerMessageTopics(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	broker, containerInstance := initializeKafka(ctx, t)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	suffix := time.Now().UnixNano()
	topicA := fmt.Sprintf("multi-a-%d", suffix)
	topicB := fmt.Sprintf("multi-b-%d", suffix)

	producer, err := NewClient(Config{Brokers: []string{broker}})
	require.NoError(t, err)
	defer producer.GracefulShutdown()

	require.NoError(t, producer.PublishMessages(ctx,
		kafkago.Message{Topic: topicA, Value: []byte("for-a")},
		kafkago.Message{Topic: topicB, Value: []byte("for-b")},
	))

	for topic, want := range map[string]string{topicA: "for-a", topicB: "for-b"} {
		consumer, err := NewClient(Config{
			Brokers:    []string{broker},
			Topic:      topic,
			GroupID:    fmt.Sprintf("group-%s", topic),
			IsConsumer: true,
		})
		require.NoError(t, err)

		fetchCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		msg, err := consumer.FetchMessage(fetchCtx)
		cancel()
		require.NoError(t, err)
		assert.Equal(t, want, string(msg.Value))

		require.NoError(t, consumer.GracefulShutdown())
	}
}

// initializeKafka starts a single-node KRaft broker and returns its
// host-reachable address. The host port is fixed up front so the broker can
// advertise it.
func initializeKafka(ctx context.Context, t *testing.T) (string, testcontainers.Container) {
	t.Helper()

	hostPort, err := getFreePort()
	require.NoError(t, err)

	containerInstance, err := createKafkaContainer(ctx, hostPort)
	require.NoError(t, err)

	host, err := containerInstance.Host(ctx)
	require.NoError(t, err)

	broker := net.JoinHostPort(host, hostPort)

	// Wait for the broker to accept connections
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", broker, 2*time.Second)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 60*time.Second, 500*time.Millisecond, "Kafka port not ready")

	return broker, containerInstance
}

func createKafkaContainer(ctx context.Context, hostPort string) (testcontainers.Container, error) {
	portBindings := nat.PortMap{
		"9092/tcp": []nat.PortBinding{{HostPort: hostPort}},
	}

	req := testcontainers.ContainerRequest{
		Image: "apache/kafka:3.8.0",
		ExposedPorts: []string{
			"9092/tcp",
		},
		Env: map[string]string{
			"KAFKA_NODE_ID":                          "1",
			"KAFKA_PROCESS_ROLES":                    "broker,controller",
			"KAFKA_LISTENERS":                        "PLAINTEXT://0.0.0.0:9092,CONTROLLER://0.0.0.0:9093",
			"KAFKA_ADVERTISED_LISTENERS":             "PLAINTEXT://localhost:" + hostPort,
			"KAFKA_LISTENER_SECURITY_PROTOCOL_MAP":   "CONTROLLER:PLAINTEXT,PLAINTEXT:PLAINTEXT",
			"KAFKA_CONTROLLER_LISTENER_NAMES":        "CONTROLLER",
			"KAFKA_CONTROLLER_QUORUM_VOTERS":         "1@localhost:9093",
			"KAFKA_OFFSETS_TOPIC_REPLICATION_FACTOR": "1",
			"KAFKA_GROUP_INITIAL_REBALANCE_DELAY_MS": "0",
			"KAFKA_AUTO_CREATE_TOPICS_ENABLE":        "true",
		},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForLog("Kafka Server started").WithStartupTimeout(60 * time.Second),
	}

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func getFreePort() (string, error) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return "", err
	}
	defer l.Close()
	addr := l.Addr().(*net.TCPAddr)
	return strconv.Itoa(addr.Port), nil
}
