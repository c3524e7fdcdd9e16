package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const (
	EventsTopic   = "library-link.events"
	MessagesTopic = "library-link.messages"

	MessagesConsumerGroup = "library-link-messages"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

// Enabled reports whether any broker is configured.
func (cfg Config) Enabled() bool {
	return len(cfg.Addrs) > 0
}

type EventType string

const (
	EventBookBorrowed           EventType = "BOOK_BORROWED"
	EventBookRequested          EventType = "BOOK_REQUESTED"
	EventBookRequestedForCourse EventType = "BOOK_REQUESTED_FOR_COURSE"
	EventCourseReserveAdded     EventType = "COURSE_RESERVE_ADDED"
	EventCourseReserveRemoved   EventType = "COURSE_RESERVE_REMOVED"
	EventPersonaSwitched        EventType = "PERSONA_SWITCHED"
)

// Event is published to EventsTopic after a state change has been committed.
type Event struct {
	ID           string    `json:"id"`
	Type         EventType `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
	UserName     string    `json:"username,omitempty"`
	ISBN         string    `json:"isbn,omitempty"`
	Title        string    `json:"title,omitempty"`
	CourseCode   string    `json:"courseCode,omitempty"`
	Persona      string    `json:"persona,omitempty"`
	RequestCount int       `json:"requestCount,omitempty"`
	TotalSavings float64   `json:"totalSavings,omitempty"`
}

// NewAsyncProducer returns a producer whose Errors channel must be drained
// by the caller.
func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Errors = true

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs consumer sessions until ctx is done or the group is closed.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return errors.Wrap(err, "group.Consume")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
