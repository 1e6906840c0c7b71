// Package consumer ingests orders the storefront checkout publishes to
// Kafka. The back office never creates checkout orders itself; it receives
// them here, records them locally and lets the sync queue write them to the
// remote store.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/validation"
)

// MessageReader abstracts kafka reader operations for easier testing.
type MessageReader interface {
	FetchMessage(context.Context) (kafka.Message, error)
	CommitMessages(context.Context, ...kafka.Message) error
	Close() error
}

// OrderCreator records a checkout order locally and schedules the remote write.
type OrderCreator interface {
	Create(order models.Order) models.Order
}

// Run consumes checkout orders until ctx is cancelled.
func Run(ctx context.Context, brokers, topic, group string, orders OrderCreator) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     strings.Split(brokers, ","),
		GroupID:     group,
		GroupTopics: []string{topic},
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10 << 20,
		Logger:      log.New(os.Stdout, "[checkout] ", 0),
		ErrorLogger: log.New(os.Stderr, "[checkout-err] ", 0),
	})
	defer reader.Close()

	log.Printf("checkout consumer START (brokers=%s topic=%s group=%s)", brokers, topic, group)

	return consume(ctx, reader, orders, validation.New())
}

// consume is the reader loop. Malformed or invalid payloads are committed
// and skipped; a bad checkout message must never wedge the topic.
func consume(ctx context.Context, reader MessageReader, orders OrderCreator, v *validation.Validator) error {
	for {
		m, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var o models.Order
		if err := json.Unmarshal(m.Value, &o); err != nil {
			log.Printf("skip malformed checkout msg: %v", err)
			_ = reader.CommitMessages(ctx, m)
			continue
		}
		if err := v.ValidateOrder(&o); err != nil {
			oid := o.ID
			if oid == "" {
				oid = "<unknown>"
			}
			log.Printf("skip invalid checkout order %s: %v", oid, err)
			_ = reader.CommitMessages(ctx, m)
			continue
		}

		orders.Create(o)

		if err := reader.CommitMessages(ctx, m); err != nil {
			log.Printf("commit failed: %v", err)
		}
	}
}
