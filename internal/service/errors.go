package service

import (
	"errors"
	"fmt"
)

// 錯誤分類集中在這裡，handler 依此對應 HTTP 狀態碼
var (
	ErrBookNotFound     = errors.New("book not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartLineNotFound = errors.New("item not found in cart")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrInvalidBookData  = errors.New("invalid book data")
	ErrISBNAlreadyExist = errors.New("isbn already exists")

	ErrEmptyCart              = errors.New("cart is empty")
	ErrCheckoutFieldsRequired = errors.New("shipping address and payment method are required")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")

	ErrNotOrderOwner         = errors.New("not authorized to access this order")
	ErrOrderAlreadyPaid      = errors.New("order is already paid")
	ErrOrderNotPaid          = errors.New("order is not paid yet")
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
)

// InsufficientStockError 帶上書名與可用庫存，照原樣回給呼叫端
type InsufficientStockError struct {
	Title     string
	Available uint
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. available: %d, requested: %d", e.Title, e.Available, e.Requested)
}
