package service

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/producer"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/db"
)

type IOrderService interface {
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	MarkOrderDelivered(ctx context.Context, orderID string) (*model.Order, error)
}

type OrderService struct {
	orderRepo db.IOrderRepository
	producer  producer.IOrderEventProducer
}

func NewOrderService(orderRepo db.IOrderRepository, orderProducer producer.IOrderEventProducer) *OrderService {
	return &OrderService{orderRepo: orderRepo, producer: orderProducer}
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orderRepo.GetOrdersByUserID(ctx, userID)
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.GetAllOrders(ctx)
}

// MarkOrderDelivered 只允許 Paid -> Delivered
// 未付款訂單不能出貨，狀態機不存在「已出貨未付款」
func (s *OrderService) MarkOrderDelivered(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsDelivered() {
		return nil, ErrOrderAlreadyDelivered
	}
	if !order.IsPaid() {
		return nil, ErrOrderNotPaid
	}

	now := time.Now().UTC()
	if err := s.orderRepo.MarkOrderDelivered(ctx, orderID, now); err != nil {
		return nil, err
	}

	order.State = model.OrderStatusDelivered
	order.DeliveredAt = &now

	if s.producer != nil {
		_ = s.producer.PublishOrderDelivered(ctx, order)
	}

	return order, nil
}

var _ IOrderService = (*OrderService)(nil)
