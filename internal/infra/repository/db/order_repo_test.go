package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db        *gorm.DB
	orderRepo *OrderRepo
	bookRepo  *BookRepo
	userRepo  *UserRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_bookstore", "localhost", "5432", "royce", "password")
	if err != nil {
		suite.T().Skipf("postgres not available: %v", err)
	}
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.orderRepo = NewOrderRepo(dbDao)
	suite.bookRepo = NewBookRepo(dbDao)
	suite.userRepo = NewUserRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *OrderRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM books")
	suite.db.Exec("DELETE FROM users")
}

// TearDownSuite 在測試套件結束後執行
func (suite *OrderRepoTestSuite) TearDownSuite() {
	if suite.db == nil {
		return
	}
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *OrderRepoTestSuite) createTestBooks(count int, stock uint) []*model.Book {
	books := make([]*model.Book, count)
	for i := 0; i < count; i++ {
		book := &model.Book{
			BookID: uuid.New().String(),
			Title:  fmt.Sprintf("Test Book %d", i+1),
			Author: "Test Author",
			Price:  decimal.NewFromInt(int64(10 * (i + 1))),
			Stock:  stock,
		}
		require.NoError(suite.T(), suite.bookRepo.CreateBook(context.Background(), book))
		books[i] = book
	}
	return books
}

func (suite *OrderRepoTestSuite) newOrder(userID string, items []model.OrderItem) *model.Order {
	orderID := uuid.New().String()
	for i := range items {
		items[i].OrderID = orderID
	}
	return &model.Order{
		OrderID:    orderID,
		UserID:     userID,
		OrderItems: items,
		ShippingAddress: model.ShippingAddress{
			Address:    "123 Test St",
			City:       "Taipei",
			PostalCode: "10617",
		},
		PaymentMethod: "card",
		ItemsPrice:    decimal.NewFromInt(30),
		TaxPrice:      decimal.RequireFromString("4.5"),
		ShippingPrice: decimal.NewFromInt(10),
		TotalPrice:    decimal.RequireFromString("44.5"),
		State:         model.OrderStatusPending,
		OrderDate:     time.Now().UTC(),
	}
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

func (suite *OrderRepoTestSuite) TestCreateOrderAndDeductStock() {
	ctx := context.Background()
	books := suite.createTestBooks(2, 5)

	order := suite.newOrder("user-1", []model.OrderItem{
		{BookID: books[0].BookID, Title: books[0].Title, Price: books[0].Price, Quantity: 2},
		{BookID: books[1].BookID, Title: books[1].Title, Price: books[1].Price, Quantity: 1},
	})

	err := suite.orderRepo.CreateOrderAndDeductStock(ctx, order)
	assert.NoError(suite.T(), err)

	got, err := suite.orderRepo.GetOrderByID(ctx, order.OrderID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got.OrderItems, 2)

	// 庫存已扣
	b0, _ := suite.bookRepo.GetBookByID(ctx, books[0].BookID)
	assert.Equal(suite.T(), uint(3), b0.Stock)
	b1, _ := suite.bookRepo.GetBookByID(ctx, books[1].BookID)
	assert.Equal(suite.T(), uint(4), b1.Stock)
}

func (suite *OrderRepoTestSuite) TestCreateOrderStockNotEnough() {
	ctx := context.Background()
	books := suite.createTestBooks(2, 1)

	order := suite.newOrder("user-1", []model.OrderItem{
		{BookID: books[0].BookID, Title: books[0].Title, Price: books[0].Price, Quantity: 1},
		{BookID: books[1].BookID, Title: books[1].Title, Price: books[1].Price, Quantity: 3},
	})

	err := suite.orderRepo.CreateOrderAndDeductStock(ctx, order)

	var stockErr *StockNotEnoughError
	assert.True(suite.T(), errors.As(err, &stockErr))
	assert.Equal(suite.T(), books[1].BookID, stockErr.BookID)

	// 整筆 rollback，第一本書的庫存也不能動
	b0, _ := suite.bookRepo.GetBookByID(ctx, books[0].BookID)
	assert.Equal(suite.T(), uint(1), b0.Stock)

	got, err := suite.orderRepo.GetOrderByID(ctx, order.OrderID)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)
}

func (suite *OrderRepoTestSuite) TestMarkOrderPaidAndDelivered() {
	ctx := context.Background()
	books := suite.createTestBooks(1, 5)

	order := suite.newOrder("user-1", []model.OrderItem{
		{BookID: books[0].BookID, Title: books[0].Title, Price: books[0].Price, Quantity: 1},
	})
	require.NoError(suite.T(), suite.orderRepo.CreateOrderAndDeductStock(ctx, order))

	paidAt := time.Now().UTC()
	err := suite.orderRepo.MarkOrderPaid(ctx, order.OrderID, paidAt, model.PaymentResult{
		PaymentID:    "payment_123",
		Status:       "completed",
		UpdateTime:   paidAt.Format(time.RFC3339),
		EmailAddress: "test@example.com",
	})
	assert.NoError(suite.T(), err)

	got, _ := suite.orderRepo.GetOrderByID(ctx, order.OrderID)
	assert.Equal(suite.T(), model.OrderStatusPaid, got.State)
	assert.NotNil(suite.T(), got.PaidAt)
	assert.Equal(suite.T(), "payment_123", got.PaymentResult.PaymentID)

	err = suite.orderRepo.MarkOrderDelivered(ctx, order.OrderID, time.Now().UTC())
	assert.NoError(suite.T(), err)

	got, _ = suite.orderRepo.GetOrderByID(ctx, order.OrderID)
	assert.Equal(suite.T(), model.OrderStatusDelivered, got.State)
	assert.NotNil(suite.T(), got.DeliveredAt)
}

func (suite *OrderRepoTestSuite) TestGetOrdersByUserID() {
	ctx := context.Background()
	books := suite.createTestBooks(1, 10)

	for i := 0; i < 3; i++ {
		userID := "user-1"
		if i == 2 {
			userID = "user-2"
		}
		order := suite.newOrder(userID, []model.OrderItem{
			{BookID: books[0].BookID, Title: books[0].Title, Price: books[0].Price, Quantity: 1},
		})
		require.NoError(suite.T(), suite.orderRepo.CreateOrderAndDeductStock(ctx, order))
	}

	orders, err := suite.orderRepo.GetOrdersByUserID(ctx, "user-1")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), orders, 2)

	all, err := suite.orderRepo.GetAllOrders(ctx)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), all, 3)
}

func (suite *OrderRepoTestSuite) TestGetOrderNotFound() {
	got, err := suite.orderRepo.GetOrderByID(context.Background(), "missing")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)
}
