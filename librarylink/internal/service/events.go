package service

import (
	"context"

	"github.com/Astemirdum/library-link/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// EventLog receives a domain event after its state change was saved.
// Publishing is best effort and never fails the operation.
type EventLog interface {
	Publish(ctx context.Context, ev kafka.Event)
	Close() error
}

func (s *Service) publish(ctx context.Context, ev kafka.Event) {
	ev.ID = uuid.NewString()
	ev.Timestamp = s.now().UTC()
	s.events.Publish(ctx, ev)
}

type NopEventLog struct{}

func (NopEventLog) Publish(context.Context, kafka.Event) {}

func (NopEventLog) Close() error { return nil }

type kafkaEventLog struct {
	producer sarama.AsyncProducer
	log      *zap.Logger
	done     chan struct{}
}

// NewKafkaEventLog writes events to kafka.EventsTopic keyed by event type.
// Delivery errors are logged.
func NewKafkaEventLog(producer sarama.AsyncProducer, log *zap.Logger) EventLog {
	l := &kafkaEventLog{
		producer: producer,
		log:      log.Named("events"),
		done:     make(chan struct{}),
	}
	go l.drain()
	return l
}

func (l *kafkaEventLog) drain() {
	defer close(l.done)
	for err := range l.producer.Errors() {
		l.log.Error("publish event", zap.Error(err))
	}
}

func (l *kafkaEventLog) Publish(ctx context.Context, ev kafka.Event) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(ev)
	if err != nil {
		l.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.EventsTopic,
		Key:   sarama.StringEncoder(ev.Type),
		Value: sarama.ByteEncoder(data),
	}
	select {
	case l.producer.Input() <- msg:
	case <-ctx.Done():
		l.log.Warn("event dropped", zap.String("type", string(ev.Type)), zap.Error(ctx.Err()))
	}
}

// Close flushes buffered events and waits for the error stream to end.
func (l *kafkaEventLog) Close() error {
	err := l.producer.Close()
	<-l.done
	return err
}
