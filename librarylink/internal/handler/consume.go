package handler

import (
	"context"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Consumer feeds Message envelopes read from Kafka through the dispatcher.
// Replies have no one to go back to, so they are logged.
type Consumer struct {
	dispatcher  *Dispatcher
	defaultUser string
	log         *zap.Logger
}

func NewConsumer(dispatcher *Dispatcher, defaultUser string, log *zap.Logger) *Consumer {
	return &Consumer{
		dispatcher:  dispatcher,
		defaultUser: defaultUser,
		log:         log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.handle(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle never fails: a message that cannot be decoded or dispatched is
// logged and skipped so it does not block the partition.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	var msg Message
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(message.Value, &msg); err != nil {
		consumer.log.Error("decode message", zap.Error(err), zap.Int64("offset", message.Offset))
		return
	}
	user := msg.UserName
	if user == "" {
		user = consumer.defaultUser
	}
	reply, err := consumer.dispatcher.Dispatch(ctx, user, msg)
	if err != nil {
		consumer.log.Error("dispatch", zap.String("action", msg.Action), zap.Error(err))
		return
	}
	consumer.log.Info("reply",
		zap.String("action", msg.Action),
		zap.String("user", user),
		zap.Any("reply", reply),
		zap.Int64("offset", message.Offset),
	)
}
