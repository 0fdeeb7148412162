package model

import (
	"github.com/shopspring/decimal"
)

// Cart 只存在 Redis，不落 DB
type Cart struct {
	UserID string     `json:"user_id"`
	Lines  []CartLine `json:"lines"`
}

type CartLine struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

// CartLineData 補上書籍資訊後的購物車明細
type CartLineData struct {
	BookID   string          `json:"book_id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartDetail 回給呼叫端的完整購物車，TotalAmount 一律以當下書價重算
type CartDetail struct {
	UserID      string          `json:"user_id"`
	Lines       []CartLineData  `json:"lines"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
