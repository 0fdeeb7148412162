package service

import (
	"context"
	"fmt"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/db"
	"github.com/google/uuid"
)

type IBookService interface {
	GetAllBooks(ctx context.Context) ([]model.Book, error)
	GetBooksPaginated(ctx context.Context, page, pageSize int) ([]model.Book, int64, error)
	GetBook(ctx context.Context, bookID string) (*model.Book, error)
	CreateBook(ctx context.Context, book *model.Book) (*model.Book, error)
	UpdateBook(ctx context.Context, bookID string, patch *model.Book) (*model.Book, error)
	DeleteBook(ctx context.Context, bookID string) error
}

type BookService struct {
	bookRepo db.IBookRepository
}

func NewBookService(bookRepo db.IBookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

func (s *BookService) GetAllBooks(ctx context.Context) ([]model.Book, error) {
	return s.bookRepo.GetAllBooks(ctx)
}

func (s *BookService) GetBooksPaginated(ctx context.Context, page, pageSize int) ([]model.Book, int64, error) {
	return s.bookRepo.GetBooksPaginated(ctx, page, pageSize)
}

func (s *BookService) GetBook(ctx context.Context, bookID string) (*model.Book, error) {
	book, err := s.bookRepo.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (s *BookService) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	if book.Title == "" || book.Author == "" {
		return nil, fmt.Errorf("%w: title and author are required", ErrInvalidBookData)
	}
	if book.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidBookData)
	}

	// ISBN 非必填，有填才檢查唯一
	if book.ISBN != "" {
		existing, err := s.bookRepo.GetBookByISBN(ctx, book.ISBN)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrISBNAlreadyExist
		}
	}

	book.BookID = uuid.New().String()
	if err := s.bookRepo.CreateBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook 部分更新，零值欄位保留原值
func (s *BookService) UpdateBook(ctx context.Context, bookID string, patch *model.Book) (*model.Book, error) {
	book, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if patch.Title != "" {
		book.Title = patch.Title
	}
	if patch.Author != "" {
		book.Author = patch.Author
	}
	if patch.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidBookData)
	}
	if !patch.Price.IsZero() {
		book.Price = patch.Price
	}
	if patch.Description != "" {
		book.Description = patch.Description
	}
	if patch.Category != "" {
		book.Category = patch.Category
	}
	if patch.Stock != 0 {
		book.Stock = patch.Stock
	}
	if patch.Image != "" {
		book.Image = patch.Image
	}
	if patch.ISBN != "" && patch.ISBN != book.ISBN {
		existing, err := s.bookRepo.GetBookByISBN(ctx, patch.ISBN)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrISBNAlreadyExist
		}
		book.ISBN = patch.ISBN
	}

	if err := s.bookRepo.UpdateBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, bookID string) error {
	if _, err := s.GetBook(ctx, bookID); err != nil {
		return err
	}
	return s.bookRepo.HardDeleteBook(ctx, bookID)
}

var _ IBookService = (*BookService)(nil)
