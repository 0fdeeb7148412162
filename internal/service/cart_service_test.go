package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testBook(id, title string, price string, stock uint) *model.Book {
	p, _ := decimal.NewFromString(price)
	return &model.Book{
		BookID: id,
		Title:  title,
		Author: "author",
		Price:  p,
		Stock:  stock,
	}
}

func TestGetCartEmpty(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeBookRepo())

	cart, err := cartService.GetCart(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", cart.UserID)
	require.Empty(t, cart.Lines)
	require.True(t, cart.TotalAmount.IsZero())
}

func TestAddLine(t *testing.T) {
	cartRepo := newFakeCartRepo()
	bookRepo := newFakeBookRepo(testBook("b1", "Go in Action", "20.00", 5))
	cartService := NewCartService(cartRepo, bookRepo)

	cart, err := cartService.AddLine(context.Background(), "user-1", "b1", 2)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, 2, cart.Lines[0].Quantity)
	require.True(t, cart.TotalAmount.Equal(decimal.RequireFromString("40")))

	// 同一本書再加會累加
	cart, err = cartService.AddLine(context.Background(), "user-1", "b1", 1)
	require.NoError(t, err)
	require.Equal(t, 3, cart.Lines[0].Quantity)
	require.True(t, cart.TotalAmount.Equal(decimal.RequireFromString("60")))
}

func TestAddLineInvalidQuantity(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeBookRepo(testBook("b1", "Go in Action", "20.00", 5)))

	_, err := cartService.AddLine(context.Background(), "user-1", "b1", 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = cartService.AddLine(context.Background(), "user-1", "b1", -1)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddLineBookNotFound(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeBookRepo())

	_, err := cartService.AddLine(context.Background(), "user-1", "missing", 1)
	require.ErrorIs(t, err, ErrBookNotFound)
}

func TestAddLineInsufficientStock(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeBookRepo(testBook("b1", "Go in Action", "20.00", 3)))

	_, err := cartService.AddLine(context.Background(), "user-1", "b1", 5)

	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	require.Equal(t, "Go in Action", stockErr.Title)
	require.Equal(t, uint(3), stockErr.Available)
	require.Equal(t, 5, stockErr.Requested)
	require.Equal(t, "insufficient stock for Go in Action. available: 3, requested: 5", stockErr.Error())
}

func TestUpdateLine(t *testing.T) {
	cartRepo := newFakeCartRepo()
	bookRepo := newFakeBookRepo(testBook("b1", "Go in Action", "20.00", 5))
	cartService := NewCartService(cartRepo, bookRepo)

	_, err := cartService.AddLine(context.Background(), "user-1", "b1", 1)
	require.NoError(t, err)

	cart, err := cartService.UpdateLine(context.Background(), "user-1", "b1", 4)
	require.NoError(t, err)
	require.Equal(t, 4, cart.Lines[0].Quantity)

	// 數量設成 0 等於移除
	cart, err = cartService.UpdateLine(context.Background(), "user-1", "b1", 0)
	require.NoError(t, err)
	require.Empty(t, cart.Lines)
	require.True(t, cart.TotalAmount.IsZero())
}

func TestUpdateLineCartNotFound(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeBookRepo())

	_, err := cartService.UpdateLine(context.Background(), "user-1", "b1", 1)
	require.ErrorIs(t, err, ErrCartNotFound)
}

func TestUpdateLineLineNotFound(t *testing.T) {
	cartRepo := newFakeCartRepo()
	bookRepo := newFakeBookRepo(testBook("b1", "Go in Action", "20.00", 5))
	cartService := NewCartService(cartRepo, bookRepo)

	_, err := cartService.AddLine(context.Background(), "user-1", "b1", 1)
	require.NoError(t, err)

	_, err = cartService.UpdateLine(context.Background(), "user-1", "other", 2)
	require.ErrorIs(t, err, ErrCartLineNotFound)
}

func TestRemoveLine(t *testing.T) {
	cartRepo := newFakeCartRepo()
	bookRepo := newFakeBookRepo(
		testBook("b1", "Go in Action", "20.00", 5),
		testBook("b2", "The Go Programming Language", "15.00", 5),
	)
	cartService := NewCartService(cartRepo, bookRepo)

	_, err := cartService.AddLine(context.Background(), "user-1", "b1", 1)
	require.NoError(t, err)
	_, err = cartService.AddLine(context.Background(), "user-1", "b2", 1)
	require.NoError(t, err)

	cart, err := cartService.RemoveLine(context.Background(), "user-1", "b1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, "b2", cart.Lines[0].BookID)

	// 移除不存在的明細是 no-op
	cart, err = cartService.RemoveLine(context.Background(), "user-1", "missing")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
}

func TestRemoveLineCartNotFound(t *testing.T) {
	cartService := NewCartService(newFakeCartRepo(), newFakeBookRepo())

	_, err := cartService.RemoveLine(context.Background(), "user-1", "b1")
	require.ErrorIs(t, err, ErrCartNotFound)
}

func TestClearCart(t *testing.T) {
	cartRepo := newFakeCartRepo()
	bookRepo := newFakeBookRepo(testBook("b1", "Go in Action", "20.00", 5))
	cartService := NewCartService(cartRepo, bookRepo)

	_, err := cartService.AddLine(context.Background(), "user-1", "b1", 1)
	require.NoError(t, err)

	err = cartService.Clear(context.Background(), "user-1")
	require.NoError(t, err)

	cart, err := cartService.GetCart(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, cart.Lines)

	// 再清一次，購物車已經不存在
	err = cartService.Clear(context.Background(), "user-1")
	require.ErrorIs(t, err, ErrCartNotFound)
}

func TestGetCartSkipsDeletedBook(t *testing.T) {
	cartRepo := newFakeCartRepo()
	bookRepo := newFakeBookRepo(
		testBook("b1", "Go in Action", "20.00", 5),
		testBook("b2", "The Go Programming Language", "15.00", 5),
	)
	cartService := NewCartService(cartRepo, bookRepo)

	_, err := cartService.AddLine(context.Background(), "user-1", "b1", 1)
	require.NoError(t, err)
	_, err = cartService.AddLine(context.Background(), "user-1", "b2", 1)
	require.NoError(t, err)

	// 書被下架後明細不計入總額
	require.NoError(t, bookRepo.HardDeleteBook(context.Background(), "b1"))

	cart, err := cartService.GetCart(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, "b2", cart.Lines[0].BookID)
	require.True(t, cart.TotalAmount.Equal(decimal.RequireFromString("15")))
}
