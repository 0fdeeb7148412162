package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"gorm.io/gorm"
)

// StockNotEnoughError 條件式扣庫存失敗，呼叫端需要知道是哪本書
type StockNotEnoughError struct {
	BookID string
}

func (e *StockNotEnoughError) Error() string {
	return fmt.Sprintf("book %s stock not enough", e.BookID)
}

type IBookRepository interface {
	CreateBook(ctx context.Context, book *model.Book) error
	GetBookByID(ctx context.Context, bookID string) (*model.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (*model.Book, error)
	GetAllBooks(ctx context.Context) ([]model.Book, error)
	GetBooksPaginated(ctx context.Context, page, pageSize int) ([]model.Book, int64, error)
	UpdateBook(ctx context.Context, book *model.Book) error
	HardDeleteBook(ctx context.Context, bookID string) error
}

type BookRepo struct {
	db *DbDao
}

func NewBookRepo(db *DbDao) *BookRepo {
	return &BookRepo{db: db}
}

func (r *BookRepo) CreateBook(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// 查無資料回傳 nil, nil，由 service 決定要不要當錯誤
func (r *BookRepo) GetBookByID(ctx context.Context, bookID string) (*model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepo) GetBookByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepo) GetAllBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	err := r.db.WithContext(ctx).Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// 分頁查詢書籍
func (r *BookRepo) GetBooksPaginated(ctx context.Context, page, pageSize int) ([]model.Book, int64, error) {
	var books []model.Book
	var total int64

	offset := (page - 1) * pageSize

	if err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Offset(offset).Limit(pageSize).Find(&books).Error
	return books, total, err
}

func (r *BookRepo) UpdateBook(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}

// Delete - 硬刪除書籍
func (r *BookRepo) HardDeleteBook(ctx context.Context, bookID string) error {
	return r.db.WithContext(ctx).Where("book_id = ?", bookID).Delete(&model.Book{}).Error
}

// deductStockTx 條件式扣庫存，stock 不足時不更新
// 必須在 transaction 內使用
func deductStockTx(tx *gorm.DB, bookID string, quantity int) error {
	res := tx.Model(&model.Book{}).
		Where("book_id = ? AND stock >= ?", bookID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &StockNotEnoughError{BookID: bookID}
	}
	return nil
}

var _ IBookRepository = (*BookRepo)(nil)
