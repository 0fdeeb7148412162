package event

import (
	"time"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	OrderCreatedEventName   EventType = "order.created"
	OrderPaidEventName      EventType = "order.paid"
	OrderDeliveredEventName EventType = "order.delivered"
)

type Event interface {
	Type() EventType
}

type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (e BaseEvent) Type() EventType {
	return e.EventType
}

func newBaseEvent(t EventType) BaseEvent {
	return BaseEvent{
		EventID:   uuid.New().String(),
		EventType: t,
		CreatedAt: time.Now().UTC(),
	}
}

type OrderEventItem struct {
	BookID   string          `json:"book_id"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type OrderCreatedEvent struct {
	BaseEvent
	OrderID    string           `json:"order_id"`
	UserID     string           `json:"user_id"`
	Items      []OrderEventItem `json:"items"`
	TotalPrice decimal.Decimal  `json:"total_price"`
	State      uint             `json:"state"`
}

func NewOrderCreatedEvent(order *model.Order) OrderCreatedEvent {
	items := make([]OrderEventItem, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, OrderEventItem{
			BookID:   item.BookID,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return OrderCreatedEvent{
		BaseEvent:  newBaseEvent(OrderCreatedEventName),
		OrderID:    order.OrderID,
		UserID:     order.UserID,
		Items:      items,
		TotalPrice: order.TotalPrice,
		State:      order.State,
	}
}

type OrderPaidEvent struct {
	BaseEvent
	OrderID   string `json:"order_id"`
	UserID    string `json:"user_id"`
	PaymentID string `json:"payment_id"`
	State     uint   `json:"state"`
}

func NewOrderPaidEvent(order *model.Order) OrderPaidEvent {
	return OrderPaidEvent{
		BaseEvent: newBaseEvent(OrderPaidEventName),
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		PaymentID: order.PaymentResult.PaymentID,
		State:     order.State,
	}
}

type OrderDeliveredEvent struct {
	BaseEvent
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
	State   uint   `json:"state"`
}

func NewOrderDeliveredEvent(order *model.Order) OrderDeliveredEvent {
	return OrderDeliveredEvent{
		BaseEvent: newBaseEvent(OrderDeliveredEventName),
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		State:     order.State,
	}
}
