package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

const (
	EventFlowResolved = "flow.resolved"
	flowEventVersion  = "1"
)

// MessageWriter is the part of *kafka.Writer the producer uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	w     MessageWriter
	topic string
	now   func() time.Time
}

var _ interfaces.IFlowJournal = (*Producer)(nil)

func NewProducer(brokers []string, topic string) *Producer {
	return NewProducerWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{}, // partition by flow id
		AllowAutoTopicCreation: true,
	}, topic)
}

func NewProducerWithWriter(w MessageWriter, topic string) *Producer {
	return &Producer{w: w, topic: topic, now: time.Now}
}

func (p *Producer) Close() error { return p.w.Close() }

// Envelope is the event schema published by the bridge.
type Envelope struct {
	EventType    string    `json:"eventType"`
	EventVersion string    `json:"eventVersion"`
	OccurredAt   time.Time `json:"occurredAt"`
	AggregateID  string    `json:"aggregateId"`
	Data         any       `json:"data"`
}

type flowResolvedData struct {
	Kind       entities.FlowKind      `json:"kind"`
	Status     entities.OutcomeStatus `json:"status"`
	ErrorCode  string                 `json:"errorCode,omitempty"`
	StartedAt  time.Time              `json:"startedAt"`
	ResolvedAt time.Time              `json:"resolvedAt"`
}

// Publish writes a single message keyed by key.
func (p *Producer) Publish(ctx context.Context, key string, evt Envelope) error {
	evt.OccurredAt = p.now().UTC()
	val, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(key),
		Value: val,
	})
}

// Record publishes a flow.resolved event for rec.
func (p *Producer) Record(ctx context.Context, rec entities.FlowRecord) error {
	return p.Publish(ctx, rec.ID, Envelope{
		EventType:    EventFlowResolved,
		EventVersion: flowEventVersion,
		AggregateID:  rec.ID,
		Data: flowResolvedData{
			Kind:       rec.Kind,
			Status:     rec.Status,
			ErrorCode:  rec.ErrorCode,
			StartedAt:  rec.StartedAt.UTC(),
			ResolvedAt: rec.ResolvedAt.UTC(),
		},
	})
}
