package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/librarylink/internal/repository"
	"github.com/Astemirdum/library-link/librarylink/internal/service"
	"github.com/Astemirdum/library-link/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestKafkaEventLog(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	producer := mocks.NewAsyncProducer(t, nil)
	producer.ExpectInputWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != kafka.EventsTopic {
			return errors.Errorf("topic %s", msg.Topic)
		}
		data, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var ev kafka.Event
		if err := jsoniter.Unmarshal(data, &ev); err != nil {
			return err
		}
		if ev.Type != kafka.EventBookBorrowed || ev.TotalSavings != 47.5 || ev.UserName != "alice" {
			return errors.Errorf("unexpected event %+v", ev)
		}
		return nil
	})
	events := service.NewKafkaEventLog(producer, zap.NewNop())

	svc := service.NewService(repository.NewMemory(), nil, profile, zap.NewNop(),
		service.WithClock(func() time.Time { return now }),
		service.WithEventLog(events),
	)
	_, err := svc.BorrowBook(context.Background(), "alice", model.BookRecord{ISBN: "978-0-13-475759-9", Price: 47.5})
	require.NoError(t, err)

	require.NoError(t, events.Close())
}

func TestKafkaEventLog_DeliveryErrorIsLogged(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	producer := mocks.NewAsyncProducer(t, nil)
	producer.ExpectInputAndFail(sarama.ErrOutOfBrokers)
	core, logs := observer.New(zap.ErrorLevel)
	events := service.NewKafkaEventLog(producer, zap.New(core))

	events.Publish(context.Background(), kafka.Event{Type: kafka.EventPersonaSwitched, Persona: "professor"})

	require.Eventually(t, func() bool {
		return logs.FilterMessage("publish event").Len() == 1
	}, time.Second, 10*time.Millisecond)
	require.NoError(t, events.Close())
}
