// Package kafka provides functionality for interacting with Apache Kafka.
//
// The kafka package offers a simplified interface for working with Kafka
// message brokers, providing connection management, raw record publishing,
// and consuming capabilities with a focus on reliability and ease of use.
// Records move through as opaque bytes; this package never touches payload
// encoding.
//
// Core Features:
//   - Consumer group support with explicit or interval-based commits
//   - Raw record publishing, to a fixed topic or per-message topics
//   - TLS and SASL (PLAIN, SCRAM-SHA-256, SCRAM-SHA-512) broker connections
//   - Producer compression (gzip, snappy, lz4, zstd)
//   - Integration with the logger package for structured logging
//   - Distributed tracing support via message headers
//
// Basic Usage:
//
//	import (
//		"github.com/Aleph-Alpha/schema-transfer/v1/kafka"
//		"context"
//		"sync"
//	)
//
//	// Create a consumer client
//	client, err := kafka.NewClient(kafka.Config{
//		Brokers:    []string{"localhost:9092"},
//		Topic:      "events",
//		GroupID:    "my-consumer-group",
//		IsConsumer: true,
//	})
//	if err != nil {
//		log.Fatal("Failed to connect to Kafka", err, nil)
//	}
//	defer client.GracefulShutdown()
//
//	// Consume messages
//	wg := &sync.WaitGroup{}
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	msgChan := client.Consume(ctx, wg)
//	for msg := range msgChan {
//		// Process the message
//		process(msg.Key(), msg.Body())
//
//		// Commit the message
//		if err := msg.CommitMsg(); err != nil {
//			log.Error("Failed to commit message", err, nil)
//		}
//	}
//
// Publishing:
//
//	producer, err := kafka.NewClient(kafka.Config{
//		Brokers: []string{"localhost:9092"},
//		Topic:   "events",
//	})
//	if err != nil {
//		return err
//	}
//	defer producer.GracefulShutdown()
//
//	err = producer.Publish(ctx, key, value, nil)
//
// A producer created without a fixed topic routes each message by its own
// Topic field, which is what a relay mirroring many topics needs:
//
//	producer, err := kafka.NewClient(kafka.Config{
//		Brokers: []string{"dest-broker:9092"},
//	})
//	...
//	err = producer.PublishMessages(ctx, kafkago.Message{
//		Topic: msg.Topic(),
//		Key:   msg.Key(),
//		Value: transformed,
//	})
//
// High-Throughput Consumption with Parallel Workers:
//
// For high-volume topics, use ConsumeParallel to fetch concurrently:
//
//	msgChan := client.ConsumeParallel(ctx, wg, 5)
//	for msg := range msgChan {
//		processMessage(msg)
//		if err := msg.CommitMsg(); err != nil {
//			log.Error("Failed to commit message", err, nil)
//		}
//	}
//
// Distributed Tracing with Message Headers:
//
// Message.Header returns the record headers as a string map, the shape the
// tracer's carrier helpers consume:
//
//	for msg := range msgChan {
//		ctx = tracerClient.SetCarrierOnContext(ctx, msg.Header())
//		ctx, span := tracerClient.StartSpan(ctx, "process-message")
//		// ...
//		span.End()
//	}
//
// FX Module Integration:
//
// This package provides a fx module for easy integration:
//
//	app := fx.New(
//	    logger.FXModule, // Optional: provides the structured logger
//	    kafka.FXModule,
//	    // ... other modules
//	)
//	app.Run()
//
// The Kafka module will automatically use the logger if it's available in
// the dependency injection container. Applications talking to two clusters
// construct both clients directly with NewClient.
//
// Thread Safety:
//
// All methods on KafkaClient are safe for concurrent use by multiple
// goroutines.
package kafka
