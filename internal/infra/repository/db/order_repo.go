package db

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"gorm.io/gorm"
)

type IOrderRepository interface {
	CreateOrderAndDeductStock(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, orderID string) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	MarkOrderPaid(ctx context.Context, orderID string, paidAt time.Time, result model.PaymentResult) error
	MarkOrderDelivered(ctx context.Context, orderID string, deliveredAt time.Time) error
}

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrderAndDeductStock 建立訂單與扣庫存走同一個 transaction
// 扣庫存帶 stock >= quantity 條件，併發結帳不會超賣
func (r *OrderRepo) CreateOrderAndDeductStock(ctx context.Context, order *model.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.OrderItems {
			if err := deductStockTx(tx.WithContext(ctx), item.BookID, item.Quantity); err != nil {
				return err
			}
		}
		return tx.WithContext(ctx).Create(order).Error
	})
}

func (r *OrderRepo) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Preload("OrderItems").Where("order_id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("order_date desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Preload("OrderItems").
		Order("order_date desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) MarkOrderPaid(ctx context.Context, orderID string, paidAt time.Time, result model.PaymentResult) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"state":                 model.OrderStatusPaid,
			"paid_at":               paidAt,
			"payment_payment_id":    result.PaymentID,
			"payment_status":        result.Status,
			"payment_update_time":   result.UpdateTime,
			"payment_email_address": result.EmailAddress,
		}).Error
}

func (r *OrderRepo) MarkOrderDelivered(ctx context.Context, orderID string, deliveredAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"state":        model.OrderStatusDelivered,
			"delivered_at": deliveredAt,
		}).Error
}

var _ IOrderRepository = (*OrderRepo)(nil)
