package redis_repo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type ICartRepository interface {
	GetLines(ctx context.Context, userID string) ([]model.CartLine, error)
	HasLine(ctx context.Context, userID, bookID string) (bool, error)
	AddQuantity(ctx context.Context, userID, bookID string, delta int) error
	SetQuantity(ctx context.Context, userID, bookID string, quantity int) error
	RemoveLine(ctx context.Context, userID, bookID string) error
	Clear(ctx context.Context, userID string) error
	Exists(ctx context.Context, userID string) (bool, error)
	SetTotalAmount(ctx context.Context, userID string, amount decimal.Decimal) error
	GetTotalAmount(ctx context.Context, userID string) (decimal.Decimal, error)
}

type CartRepo struct {
	CartCache *redis.Client
}

func NewCartRepo(cartCache *redis.Client) *CartRepo {
	return &CartRepo{CartCache: cartCache}
}

func generateCartItemKey(userID string) string {
	return fmt.Sprintf("cart:%s:items", userID)
}

func generateCartMetaKey(userID string) string {
	return fmt.Sprintf("cart:%s:meta", userID)
}

// GetLines 取購物車明細，沒有購物車回傳空slice
func (r *CartRepo) GetLines(ctx context.Context, userID string) ([]model.CartLine, error) {
	itemsKey := generateCartItemKey(userID)

	items, err := r.CartCache.HGetAll(ctx, itemsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	lines := make([]model.CartLine, 0, len(items))
	for bookID, quantityStr := range items {
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity for book %s: %w", bookID, err)
		}
		if quantity > 0 {
			lines = append(lines, model.CartLine{
				BookID:   bookID,
				Quantity: quantity,
			})
		}
	}

	return lines, nil
}

func (r *CartRepo) HasLine(ctx context.Context, userID, bookID string) (bool, error) {
	exists, err := r.CartCache.HExists(ctx, generateCartItemKey(userID), bookID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cart item: %w", err)
	}
	return exists, nil
}

// Exists 購物車是否存在（有任何一條明細就算存在）
func (r *CartRepo) Exists(ctx context.Context, userID string) (bool, error) {
	n, err := r.CartCache.Exists(ctx, generateCartItemKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cart: %w", err)
	}
	return n > 0, nil
}

// AddQuantity 原子增減明細數量，減到 0 以下直接刪掉該明細
func (r *CartRepo) AddQuantity(ctx context.Context, userID, bookID string, delta int) error {
	itemsKey := generateCartItemKey(userID)

	// 使用 Lua 腳本執行原子增減
	luaScript := `
		local key = KEYS[1]
		local book_id = ARGV[1]
		local delta = tonumber(ARGV[2])

		local current = tonumber(redis.call('HGET', key, book_id) or "0")
		if current + delta <= 0 then
			redis.call('HDEL', key, book_id)
			return 0
		end

		return redis.call('HINCRBY', key, book_id, delta)
	`

	err := r.CartCache.Eval(ctx, luaScript, []string{itemsKey}, bookID, delta).Err()
	if err != nil {
		return fmt.Errorf("failed to add item to cart: %w", err)
	}
	return nil
}

// SetQuantity 設定明細為固定數量，0 以下等同刪除
func (r *CartRepo) SetQuantity(ctx context.Context, userID, bookID string, quantity int) error {
	itemsKey := generateCartItemKey(userID)

	if quantity <= 0 {
		err := r.CartCache.HDel(ctx, itemsKey, bookID).Err()
		if err != nil {
			return fmt.Errorf("failed to remove item from cart: %w", err)
		}
		return nil
	}

	err := r.CartCache.HSet(ctx, itemsKey, bookID, quantity).Err()
	if err != nil {
		return fmt.Errorf("failed to set cart item: %w", err)
	}
	return nil
}

// RemoveLine 從購物車刪除指定書籍，書籍不在購物車內時是 no-op
func (r *CartRepo) RemoveLine(ctx context.Context, userID, bookID string) error {
	err := r.CartCache.HDel(ctx, generateCartItemKey(userID), bookID).Err()
	if err != nil {
		return fmt.Errorf("failed to delete item from cart: %w", err)
	}
	return nil
}

// Clear 清空購物車
func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	err := r.CartCache.Del(ctx, generateCartItemKey(userID), generateCartMetaKey(userID)).Err()
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// SetTotalAmount 快取重算後的總金額，只是衍生值不是真相來源
func (r *CartRepo) SetTotalAmount(ctx context.Context, userID string, amount decimal.Decimal) error {
	err := r.CartCache.HSet(ctx, generateCartMetaKey(userID), "total_amount", amount.String()).Err()
	if err != nil {
		return fmt.Errorf("failed to set cart total: %w", err)
	}
	return nil
}

func (r *CartRepo) GetTotalAmount(ctx context.Context, userID string) (decimal.Decimal, error) {
	val, err := r.CartCache.HGet(ctx, generateCartMetaKey(userID), "total_amount").Result()
	if err == redis.Nil {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get cart total: %w", err)
	}

	amount, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid cart total %s: %w", val, err)
	}
	return amount, nil
}

var _ ICartRepository = (*CartRepo)(nil)
