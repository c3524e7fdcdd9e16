package handler_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/handler"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/IBM/sarama"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/library-link/librarylink/internal/handler/mocks"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx context.Context

	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := gomock.NewController(t)
	svc := service_mocks.NewMockLinkService(c)
	svc.EXPECT().AddRequest(gomock.Any(), "bob", model.BookRecord{ISBN: "978-0-13-475759-9"}).Return(1, nil)
	svc.EXPECT().GetSavings(gomock.Any()).Return(12.5, nil)

	consumer := handler.NewConsumer(handler.NewDispatcher(svc, zap.NewNop()), "student", zap.NewNop())

	claim := fakeClaim{messages: make(chan *sarama.ConsumerMessage, 4)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Value: []byte(`{"action":"addRequest","username":"bob","book":{"isbn":"978-0-13-475759-9"}}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte(`{"action":`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3, Value: []byte(`{"action":"frobnicate"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 4, Value: []byte(`{"action":"getSavings"}`)}
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.Equal(t, []int64{1, 2, 3, 4}, session.marked, "bad messages are skipped, not retried")
}

func TestConsumer_StopsWithSession(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := gomock.NewController(t)
	consumer := handler.NewConsumer(handler.NewDispatcher(service_mocks.NewMockLinkService(c), zap.NewNop()), "student", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	session := &fakeSession{ctx: ctx}
	claim := fakeClaim{messages: make(chan *sarama.ConsumerMessage)}

	done := make(chan error)
	go func() {
		done <- consumer.ConsumeClaim(session, claim)
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
}
