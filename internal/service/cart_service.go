package service

import (
	"context"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/redis_repo"
	"github.com/shopspring/decimal"
)

type ICartService interface {
	GetCart(ctx context.Context, userID string) (*model.CartDetail, error)
	AddLine(ctx context.Context, userID, bookID string, quantity int) (*model.CartDetail, error)
	UpdateLine(ctx context.Context, userID, bookID string, quantity int) (*model.CartDetail, error)
	RemoveLine(ctx context.Context, userID, bookID string) (*model.CartDetail, error)
	Clear(ctx context.Context, userID string) error
}

// 購物車只存 Redis，金額一律用當下書價重算
type CartService struct {
	cartRepo redis_repo.ICartRepository
	bookRepo db.IBookRepository
}

func NewCartService(cartRepo redis_repo.ICartRepository, bookRepo db.IBookRepository) *CartService {
	return &CartService{cartRepo: cartRepo, bookRepo: bookRepo}
}

// GetCart 不會失敗在「沒有購物車」這件事上，回空購物車
func (s *CartService) GetCart(ctx context.Context, userID string) (*model.CartDetail, error) {
	lines, err := s.cartRepo.GetLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, userID, lines)
}

// AddLine 同一本書已在購物車時數量累加
// 庫存檢查只看這一次請求的數量
func (s *CartService) AddLine(ctx context.Context, userID, bookID string, quantity int) (*model.CartDetail, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	book, err := s.bookRepo.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if uint(quantity) > book.Stock {
		return nil, &InsufficientStockError{
			Title:     book.Title,
			Available: book.Stock,
			Requested: quantity,
		}
	}

	if err := s.cartRepo.AddQuantity(ctx, userID, bookID, quantity); err != nil {
		return nil, err
	}
	return s.refresh(ctx, userID)
}

// UpdateLine 設成固定數量，0 以下直接移除明細
func (s *CartService) UpdateLine(ctx context.Context, userID, bookID string, quantity int) (*model.CartDetail, error) {
	exists, err := s.cartRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCartNotFound
	}

	hasLine, err := s.cartRepo.HasLine(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if !hasLine {
		return nil, ErrCartLineNotFound
	}

	if err := s.cartRepo.SetQuantity(ctx, userID, bookID, quantity); err != nil {
		return nil, err
	}
	return s.refresh(ctx, userID)
}

// RemoveLine 明細不存在時是 no-op
func (s *CartService) RemoveLine(ctx context.Context, userID, bookID string) (*model.CartDetail, error) {
	exists, err := s.cartRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCartNotFound
	}

	if err := s.cartRepo.RemoveLine(ctx, userID, bookID); err != nil {
		return nil, err
	}
	return s.refresh(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	exists, err := s.cartRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCartNotFound
	}
	return s.cartRepo.Clear(ctx, userID)
}

// refresh 重讀明細、重算總額並回寫快取
func (s *CartService) refresh(ctx context.Context, userID string) (*model.CartDetail, error) {
	lines, err := s.cartRepo.GetLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail, err := s.buildDetail(ctx, userID, lines)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.SetTotalAmount(ctx, userID, detail.TotalAmount); err != nil {
		return nil, err
	}
	return detail, nil
}

// buildDetail 以當下書價補齊明細
// 書已被下架的明細不計入總額
func (s *CartService) buildDetail(ctx context.Context, userID string, lines []model.CartLine) (*model.CartDetail, error) {
	detail := &model.CartDetail{
		UserID:      userID,
		Lines:       make([]model.CartLineData, 0, len(lines)),
		TotalAmount: decimal.Zero,
	}

	for _, line := range lines {
		book, err := s.bookRepo.GetBookByID(ctx, line.BookID)
		if err != nil {
			return nil, err
		}
		if book == nil {
			continue
		}

		subtotal := book.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		detail.Lines = append(detail.Lines, model.CartLineData{
			BookID:   book.BookID,
			Title:    book.Title,
			Price:    book.Price,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		detail.TotalAmount = detail.TotalAmount.Add(subtotal)
	}

	detail.TotalAmount = detail.TotalAmount.Round(2)
	return detail, nil
}

var _ ICartService = (*CartService)(nil)
