package dto

import (
	"github.com/shopspring/decimal"
)

type CreateBookDTO struct {
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Stock       uint            `json:"stock"`
	Image       string          `json:"image"`
	ISBN        string          `json:"isbn"`
}

// 部分更新，沒帶的欄位保留原值
type UpdateBookDTO struct {
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Stock       uint            `json:"stock"`
	Image       string          `json:"image"`
	ISBN        string          `json:"isbn"`
}
