package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   uint = 0 // 待付款
	OrderStatusPaid      uint = 1 // 已付款
	OrderStatusDelivered uint = 2 // 已出貨
)

// Order 是結帳當下的快照，建立後只會變更狀態欄位
type Order struct {
	OrderID         string          `gorm:"primaryKey;type:varchar(255)" json:"order_id"`
	UserID          string          `gorm:"not null;index;type:varchar(255)" json:"user_id"` // 外鍵，關聯到 User
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod   string          `gorm:"not null;type:varchar(20)" json:"payment_method"`
	ItemsPrice      decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"items_price"`
	TaxPrice        decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"tax_price"`
	ShippingPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"shipping_price"`
	TotalPrice      decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_price"`
	State           uint            `gorm:"not null;default:0" json:"state"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	PaymentResult   PaymentResult   `gorm:"embedded;embeddedPrefix:payment_" json:"payment_result"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	BaseModel
}

// OrderItem 凍結下單當下的書籍資訊，之後目錄異動不影響歷史訂單
type OrderItem struct {
	OrderID  string          `gorm:"primaryKey;type:varchar(255)" json:"order_id"` // 外鍵，關聯到 Order
	BookID   string          `gorm:"primaryKey;type:varchar(255)" json:"book_id"`
	Title    string          `gorm:"not null;type:varchar(255)" json:"title"`
	Price    decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Quantity int             `gorm:"not null" json:"quantity"`
	BaseModel
}

type ShippingAddress struct {
	Address    string `gorm:"type:varchar(255)" json:"address"`
	City       string `gorm:"type:varchar(100)" json:"city"`
	PostalCode string `gorm:"type:varchar(20)" json:"postal_code"`
}

type PaymentResult struct {
	PaymentID    string `gorm:"type:varchar(255)" json:"payment_id"`
	Status       string `gorm:"type:varchar(50)" json:"status"`
	UpdateTime   string `gorm:"type:varchar(50)" json:"update_time"`
	EmailAddress string `gorm:"type:varchar(100)" json:"email_address"`
}

func (o *Order) IsPaid() bool {
	return o.State >= OrderStatusPaid
}

func (o *Order) IsDelivered() bool {
	return o.State >= OrderStatusDelivered
}
