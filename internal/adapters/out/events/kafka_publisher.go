// internal/adapters/out/events/kafka_publisher.go
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	orderdom "storefront/internal/domain/order"
)

// DefaultOrderPlacedTopic is where checkout events land unless configured
// otherwise.
const DefaultOrderPlacedTopic = "order.placed"

// KafkaPublisher implements usecase.EventPublisher on a kafka-go Writer.
// Messages are keyed by order number so all events of one order stay on one
// partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher builds a publisher; with no brokers configured it is
// disabled and Publish calls become logged no-ops.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if len(brokers) == 0 {
		return &KafkaPublisher{}
	}
	if topic == "" {
		topic = DefaultOrderPlacedTopic
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Enabled reports whether a broker connection is configured.
func (p *KafkaPublisher) Enabled() bool {
	return p != nil && p.writer != nil
}

// orderPlacedEvent is the wire payload for a checkout.
type orderPlacedEvent struct {
	Number      string  `json:"number"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
	ClientEmail string  `json:"clientEmail,omitempty"`
	Positions   int     `json:"positions"`
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, o *orderdom.Order) error {
	if o == nil {
		return fmt.Errorf("kafka_publisher: order is nil")
	}
	if !p.Enabled() {
		log.Printf("[kafka] disabled, dropping order.placed order=%s", o.Number)
		return nil
	}

	ev := orderPlacedEvent{
		Number:    o.Number,
		Date:      o.Date,
		Status:    string(o.Status.Title),
		Price:     o.Price(),
		Positions: len(o.Items()),
	}
	if o.Client != nil {
		ev.ClientEmail = o.Client.Email
	}

	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.Number),
		Value: value,
	})
}

// Close flushes and releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.writer.Close()
}
