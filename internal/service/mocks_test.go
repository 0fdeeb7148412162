package service

import (
	"context"
	"sort"
	"time"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/producer"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/redis_repo"
	"github.com/shopspring/decimal"
)

// fakeCartRepo 記憶體版購物車，行為對齊 redis 實作
type fakeCartRepo struct {
	items  map[string]map[string]int
	totals map[string]decimal.Decimal
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		items:  make(map[string]map[string]int),
		totals: make(map[string]decimal.Decimal),
	}
}

func (f *fakeCartRepo) GetLines(ctx context.Context, userID string) ([]model.CartLine, error) {
	cart := f.items[userID]
	lines := make([]model.CartLine, 0, len(cart))
	for bookID, quantity := range cart {
		lines = append(lines, model.CartLine{BookID: bookID, Quantity: quantity})
	}
	//map 迭代順序不固定，排序讓測試可預期
	sort.Slice(lines, func(i, j int) bool { return lines[i].BookID < lines[j].BookID })
	return lines, nil
}

func (f *fakeCartRepo) HasLine(ctx context.Context, userID, bookID string) (bool, error) {
	_, ok := f.items[userID][bookID]
	return ok, nil
}

func (f *fakeCartRepo) AddQuantity(ctx context.Context, userID, bookID string, delta int) error {
	if f.items[userID] == nil {
		f.items[userID] = make(map[string]int)
	}
	next := f.items[userID][bookID] + delta
	if next <= 0 {
		delete(f.items[userID], bookID)
		return nil
	}
	f.items[userID][bookID] = next
	return nil
}

func (f *fakeCartRepo) SetQuantity(ctx context.Context, userID, bookID string, quantity int) error {
	if f.items[userID] == nil {
		f.items[userID] = make(map[string]int)
	}
	if quantity <= 0 {
		delete(f.items[userID], bookID)
		return nil
	}
	f.items[userID][bookID] = quantity
	return nil
}

func (f *fakeCartRepo) RemoveLine(ctx context.Context, userID, bookID string) error {
	delete(f.items[userID], bookID)
	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, userID string) error {
	delete(f.items, userID)
	delete(f.totals, userID)
	return nil
}

func (f *fakeCartRepo) Exists(ctx context.Context, userID string) (bool, error) {
	return len(f.items[userID]) > 0, nil
}

func (f *fakeCartRepo) SetTotalAmount(ctx context.Context, userID string, amount decimal.Decimal) error {
	f.totals[userID] = amount
	return nil
}

func (f *fakeCartRepo) GetTotalAmount(ctx context.Context, userID string) (decimal.Decimal, error) {
	return f.totals[userID], nil
}

// fakeBookRepo 記憶體書籍庫，找不到回 nil, nil 對齊 gorm repo
type fakeBookRepo struct {
	books map[string]*model.Book
}

func newFakeBookRepo(books ...*model.Book) *fakeBookRepo {
	repo := &fakeBookRepo{books: make(map[string]*model.Book)}
	for _, b := range books {
		copied := *b
		repo.books[b.BookID] = &copied
	}
	return repo
}

func (f *fakeBookRepo) CreateBook(ctx context.Context, book *model.Book) error {
	copied := *book
	f.books[book.BookID] = &copied
	return nil
}

func (f *fakeBookRepo) GetBookByID(ctx context.Context, bookID string) (*model.Book, error) {
	book, ok := f.books[bookID]
	if !ok {
		return nil, nil
	}
	copied := *book
	return &copied, nil
}

func (f *fakeBookRepo) GetBookByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	for _, book := range f.books {
		if book.ISBN == isbn {
			copied := *book
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookRepo) GetAllBooks(ctx context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0, len(f.books))
	for _, book := range f.books {
		books = append(books, *book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].BookID < books[j].BookID })
	return books, nil
}

func (f *fakeBookRepo) GetBooksPaginated(ctx context.Context, page, pageSize int) ([]model.Book, int64, error) {
	all, _ := f.GetAllBooks(ctx)
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []model.Book{}, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeBookRepo) UpdateBook(ctx context.Context, book *model.Book) error {
	copied := *book
	f.books[book.BookID] = &copied
	return nil
}

func (f *fakeBookRepo) HardDeleteBook(ctx context.Context, bookID string) error {
	delete(f.books, bookID)
	return nil
}

// fakeOrderRepo 記憶體訂單庫，扣庫存直接打在 fakeBookRepo 上
// 庫存不足時整筆不寫入，模擬 transaction rollback
type fakeOrderRepo struct {
	books  *fakeBookRepo
	orders map[string]*model.Order
}

func newFakeOrderRepo(books *fakeBookRepo) *fakeOrderRepo {
	return &fakeOrderRepo{books: books, orders: make(map[string]*model.Order)}
}

func (f *fakeOrderRepo) CreateOrderAndDeductStock(ctx context.Context, order *model.Order) error {
	for _, item := range order.OrderItems {
		book, ok := f.books.books[item.BookID]
		if !ok || uint(item.Quantity) > book.Stock {
			return &db.StockNotEnoughError{BookID: item.BookID}
		}
	}
	for _, item := range order.OrderItems {
		f.books.books[item.BookID].Stock -= uint(item.Quantity)
	}
	copied := *order
	f.orders[order.OrderID] = &copied
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	for _, order := range f.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID })
	return orders, nil
}

func (f *fakeOrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0, len(f.orders))
	for _, order := range f.orders {
		orders = append(orders, *order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID })
	return orders, nil
}

func (f *fakeOrderRepo) MarkOrderPaid(ctx context.Context, orderID string, paidAt time.Time, result model.PaymentResult) error {
	order, ok := f.orders[orderID]
	if !ok {
		return nil
	}
	order.State = model.OrderStatusPaid
	order.PaidAt = &paidAt
	order.PaymentResult = result
	return nil
}

func (f *fakeOrderRepo) MarkOrderDelivered(ctx context.Context, orderID string, deliveredAt time.Time) error {
	order, ok := f.orders[orderID]
	if !ok {
		return nil
	}
	order.State = model.OrderStatusDelivered
	order.DeliveredAt = &deliveredAt
	return nil
}

// fakeOrderProducer 只記錄發出去的事件型別
type fakeOrderProducer struct {
	created   []string
	paid      []string
	delivered []string
}

func (f *fakeOrderProducer) PublishOrderCreated(ctx context.Context, order *model.Order) error {
	f.created = append(f.created, order.OrderID)
	return nil
}

func (f *fakeOrderProducer) PublishOrderPaid(ctx context.Context, order *model.Order) error {
	f.paid = append(f.paid, order.OrderID)
	return nil
}

func (f *fakeOrderProducer) PublishOrderDelivered(ctx context.Context, order *model.Order) error {
	f.delivered = append(f.delivered, order.OrderID)
	return nil
}

func (f *fakeOrderProducer) Close() error {
	return nil
}

// fakeUserRepo 記憶體使用者庫
type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		copied := *u
		repo.users[u.UserID] = &copied
	}
	return repo
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	copied := *user
	f.users[user.UserID] = &copied
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.UserEmail == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	copied := *user
	f.users[user.UserID] = &copied
	return nil
}

func (f *fakeUserRepo) HardDeleteUser(ctx context.Context, userID string) error {
	delete(f.users, userID)
	return nil
}

var (
	_ redis_repo.ICartRepository  = (*fakeCartRepo)(nil)
	_ db.IBookRepository          = (*fakeBookRepo)(nil)
	_ db.IOrderRepository         = (*fakeOrderRepo)(nil)
	_ db.IUserRepository          = (*fakeUserRepo)(nil)
	_ producer.IOrderEventProducer = (*fakeOrderProducer)(nil)
)
