package dto

type ShippingAddressDTO struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type ProcessCheckoutDTO struct {
	ShippingAddress ShippingAddressDTO `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
}

// 模擬的金流回執，欄位缺省由後端補值
type PaymentResultDTO struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

type ProcessPaymentDTO struct {
	PaymentResult PaymentResultDTO `json:"payment_result"`
}
