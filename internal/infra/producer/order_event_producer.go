package producer

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/event"
	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/segmentio/kafka-go"
)

type IOrderEventProducer interface {
	PublishOrderCreated(ctx context.Context, order *model.Order) error
	PublishOrderPaid(ctx context.Context, order *model.Order) error
	PublishOrderDelivered(ctx context.Context, order *model.Order) error
	Close() error
}

// OrderEventProducer 同步發送訂單事件
// 事件只做通知用途，發送失敗由呼叫端決定要不要忽略
type OrderEventProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Printf("kafka producer error: "+msg, args...)
		}),
		Compression: kafka.Snappy,
	}

	return &OrderEventProducer{writer: writer}
}

func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, order *model.Order) error {
	evt := event.NewOrderCreatedEvent(order)
	return p.publish(ctx, order.UserID, evt)
}

func (p *OrderEventProducer) PublishOrderPaid(ctx context.Context, order *model.Order) error {
	evt := event.NewOrderPaidEvent(order)
	return p.publish(ctx, order.UserID, evt)
}

func (p *OrderEventProducer) PublishOrderDelivered(ctx context.Context, order *model.Order) error {
	evt := event.NewOrderDeliveredEvent(order)
	return p.publish(ctx, order.UserID, evt)
}

// 以 userID 作為 key，同一個使用者的事件會進同一個分區
func (p *OrderEventProducer) publish(ctx context.Context, userID string, evt event.Event) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	value, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(userID),
		Value: value,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte(evt.Type()),
			},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *OrderEventProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

var _ IOrderEventProducer = (*OrderEventProducer)(nil)
