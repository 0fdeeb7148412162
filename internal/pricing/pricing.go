package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice    = errors.New("unit price cannot be negative")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

var (
	taxRate               = decimal.NewFromFloat(0.15)
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingFee       = decimal.NewFromInt(10)
)

type Item struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Breakdown struct {
	ItemsPrice    decimal.Decimal `json:"items_price"`
	TaxPrice      decimal.Decimal `json:"tax_price"`
	ShippingPrice decimal.Decimal `json:"shipping_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// Calculate 計算訂單金額明細
// summary 預覽跟結帳共用同一份計算，兩邊才不會對不上
// 運費規則：itemsPrice 超過 100 免運，等於 100 仍收 10
func Calculate(items []Item) (Breakdown, error) {
	itemsPrice := decimal.Zero
	for _, item := range items {
		if item.UnitPrice.IsNegative() {
			return Breakdown{}, ErrNegativePrice
		}
		if item.Quantity < 0 {
			return Breakdown{}, ErrNegativeQuantity
		}
		itemsPrice = itemsPrice.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	itemsPrice = itemsPrice.Round(2)
	taxPrice := itemsPrice.Mul(taxRate).Round(2)

	shippingPrice := flatShippingFee
	if itemsPrice.GreaterThan(freeShippingThreshold) {
		shippingPrice = decimal.Zero
	}

	return Breakdown{
		ItemsPrice:    itemsPrice,
		TaxPrice:      taxPrice,
		ShippingPrice: shippingPrice,
		TotalPrice:    itemsPrice.Add(taxPrice).Add(shippingPrice).Round(2),
	}, nil
}
