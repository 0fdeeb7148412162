package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/bookstore/internal/constants"
	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/producer"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/bookstore/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

type CheckoutSummary struct {
	Items []model.CartLineData `json:"items"`
	pricing.Breakdown
}

type ICheckoutService interface {
	GetSummary(ctx context.Context, userID string) (*CheckoutSummary, error)
	Validate(ctx context.Context, userID string) ([]string, error)
	ProcessCheckout(ctx context.Context, userID string, addr model.ShippingAddress, paymentMethod string) (*model.Order, error)
	ProcessPayment(ctx context.Context, userID, userEmail, orderID string, result model.PaymentResult) (*model.Order, error)
}

// CheckoutService 把購物車轉成訂單
// 訂單寫入與扣庫存在 repo 內同一個 transaction 完成
type CheckoutService struct {
	cartRepo  redis_repo.ICartRepository
	bookRepo  db.IBookRepository
	orderRepo db.IOrderRepository
	producer  producer.IOrderEventProducer
}

func NewCheckoutService(
	cartRepo redis_repo.ICartRepository,
	bookRepo db.IBookRepository,
	orderRepo db.IOrderRepository,
	orderProducer producer.IOrderEventProducer,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
		producer:  orderProducer,
	}
}

// resolvedLine 結帳當下的購物車明細與活書籍資料
type resolvedLine struct {
	book     *model.Book
	quantity int
}

func (s *CheckoutService) resolveCart(ctx context.Context, userID string) ([]resolvedLine, error) {
	lines, err := s.cartRepo.GetLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	resolved := make([]resolvedLine, 0, len(lines))
	for _, line := range lines {
		book, err := s.bookRepo.GetBookByID(ctx, line.BookID)
		if err != nil {
			return nil, err
		}
		if book == nil {
			return nil, fmt.Errorf("%w: %s", ErrBookNotFound, line.BookID)
		}
		resolved = append(resolved, resolvedLine{book: book, quantity: line.Quantity})
	}
	return resolved, nil
}

func toPricingItems(resolved []resolvedLine) []pricing.Item {
	items := make([]pricing.Item, 0, len(resolved))
	for _, line := range resolved {
		items = append(items, pricing.Item{UnitPrice: line.book.Price, Quantity: line.quantity})
	}
	return items
}

// GetSummary 結帳預覽，只讀不寫
func (s *CheckoutService) GetSummary(ctx context.Context, userID string) (*CheckoutSummary, error) {
	resolved, err := s.resolveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown, err := pricing.Calculate(toPricingItems(resolved))
	if err != nil {
		return nil, err
	}

	items := make([]model.CartLineData, 0, len(resolved))
	for _, line := range resolved {
		items = append(items, model.CartLineData{
			BookID:   line.book.BookID,
			Title:    line.book.Title,
			Price:    line.book.Price,
			Quantity: line.quantity,
			Subtotal: line.book.Price.Mul(decimalFromInt(line.quantity)),
		})
	}

	return &CheckoutSummary{Items: items, Breakdown: breakdown}, nil
}

// Validate 收集所有庫存問題，不中斷也不異動
func (s *CheckoutService) Validate(ctx context.Context, userID string) ([]string, error) {
	lines, err := s.cartRepo.GetLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var problems []string
	for _, line := range lines {
		book, err := s.bookRepo.GetBookByID(ctx, line.BookID)
		if err != nil {
			return nil, err
		}
		if book == nil {
			problems = append(problems, fmt.Sprintf("book %s not found", line.BookID))
			continue
		}
		if uint(line.Quantity) > book.Stock {
			problems = append(problems, fmt.Sprintf("insufficient stock for %s. available: %d, requested: %d",
				book.Title, book.Stock, line.Quantity))
		}
	}
	return problems, nil
}

// ProcessCheckout 結帳流程：
// 驗證輸入 -> 讀購物車 -> 檢查庫存 -> 計價 -> 凍結明細成訂單 -> 同一交易寫單扣庫存 -> 清購物車
// 進到寫入前任何失敗都不留下狀態
func (s *CheckoutService) ProcessCheckout(ctx context.Context, userID string, addr model.ShippingAddress, paymentMethod string) (*model.Order, error) {
	if addr.Address == "" || addr.City == "" || addr.PostalCode == "" || paymentMethod == "" {
		return nil, ErrCheckoutFieldsRequired
	}
	if !constants.IsValidPaymentMethod(paymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	resolved, err := s.resolveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, line := range resolved {
		if uint(line.quantity) > line.book.Stock {
			return nil, &InsufficientStockError{
				Title:     line.book.Title,
				Available: line.book.Stock,
				Requested: line.quantity,
			}
		}
	}

	breakdown, err := pricing.Calculate(toPricingItems(resolved))
	if err != nil {
		return nil, err
	}

	orderID := uuid.New().String()
	orderItems := make([]model.OrderItem, 0, len(resolved))
	for _, line := range resolved {
		orderItems = append(orderItems, model.OrderItem{
			OrderID:  orderID,
			BookID:   line.book.BookID,
			Title:    line.book.Title,
			Price:    line.book.Price,
			Quantity: line.quantity,
		})
	}

	order := &model.Order{
		OrderID:         orderID,
		UserID:          userID,
		OrderItems:      orderItems,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
		ItemsPrice:      breakdown.ItemsPrice,
		TaxPrice:        breakdown.TaxPrice,
		ShippingPrice:   breakdown.ShippingPrice,
		TotalPrice:      breakdown.TotalPrice,
		State:           model.OrderStatusPending,
		OrderDate:       time.Now().UTC(),
	}

	if err := s.orderRepo.CreateOrderAndDeductStock(ctx, order); err != nil {
		// 交易內的條件式扣庫存輸了，補上書名跟剩餘庫存再回
		var stockErr *db.StockNotEnoughError
		if errors.As(err, &stockErr) {
			return nil, s.insufficientStockFor(ctx, resolved, stockErr.BookID)
		}
		return nil, err
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return nil, err
	}

	// 事件只做通知，發不出去不影響已成立的訂單
	if s.producer != nil {
		_ = s.producer.PublishOrderCreated(ctx, order)
	}

	return order, nil
}

func (s *CheckoutService) insufficientStockFor(ctx context.Context, resolved []resolvedLine, bookID string) error {
	for _, line := range resolved {
		if line.book.BookID != bookID {
			continue
		}
		current, err := s.bookRepo.GetBookByID(ctx, bookID)
		if err != nil || current == nil {
			return &InsufficientStockError{Title: line.book.Title, Available: 0, Requested: line.quantity}
		}
		return &InsufficientStockError{Title: current.Title, Available: current.Stock, Requested: line.quantity}
	}
	return &InsufficientStockError{Title: bookID, Requested: 0}
}

// ProcessPayment 唯一的 Pending -> Paid 轉移
// 缺省欄位照原系統規則補值
func (s *CheckoutService) ProcessPayment(ctx context.Context, userID, userEmail, orderID string, result model.PaymentResult) (*model.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	if order.IsPaid() {
		return nil, ErrOrderAlreadyPaid
	}

	now := time.Now().UTC()
	if result.PaymentID == "" {
		result.PaymentID = fmt.Sprintf("payment_%d", now.UnixMilli())
	}
	if result.Status == "" {
		result.Status = "completed"
	}
	if result.UpdateTime == "" {
		result.UpdateTime = now.Format(time.RFC3339)
	}
	if result.EmailAddress == "" {
		result.EmailAddress = userEmail
	}

	if err := s.orderRepo.MarkOrderPaid(ctx, orderID, now, result); err != nil {
		return nil, err
	}

	order.State = model.OrderStatusPaid
	order.PaidAt = &now
	order.PaymentResult = result

	if s.producer != nil {
		_ = s.producer.PublishOrderPaid(ctx, order)
	}

	return order, nil
}

var _ ICheckoutService = (*CheckoutService)(nil)
