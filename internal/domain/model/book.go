package model

import (
	"github.com/shopspring/decimal"
)

type Book struct {
	BookID      string          `gorm:"primaryKey;type:varchar(255)" json:"book_id"`
	Title       string          `gorm:"not null;type:varchar(255)" json:"title"`
	Author      string          `gorm:"not null;type:varchar(100)" json:"author"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Description string          `gorm:"not null;type:text" json:"description"`
	Category    string          `gorm:"not null;type:varchar(50)" json:"category"`
	Stock       uint            `gorm:"not null;type:int;default:0" json:"stock"`
	Image       string          `gorm:"type:varchar(255)" json:"image"`
	ISBN        string          `gorm:"column:isbn;type:varchar(20)" json:"isbn"` // 可為空，非空時由 service 保證唯一
	BaseModel
}
