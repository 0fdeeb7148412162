package dto

import (
	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
)

// OrderResponseDTO 訂單輸出多帶兩個派生布林，呼叫端不用解讀 state 數值
type OrderResponseDTO struct {
	model.Order
	IsPaid      bool `json:"is_paid"`
	IsDelivered bool `json:"is_delivered"`
}

func NewOrderResponse(order *model.Order) *OrderResponseDTO {
	return &OrderResponseDTO{
		Order:       *order,
		IsPaid:      order.IsPaid(),
		IsDelivered: order.IsDelivered(),
	}
}

func NewOrderResponses(orders []model.Order) []OrderResponseDTO {
	responses := make([]OrderResponseDTO, 0, len(orders))
	for i := range orders {
		responses = append(responses, *NewOrderResponse(&orders[i]))
	}
	return responses
}
