package dto

type AddCartLineDTO struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"` // 沒帶預設 1
}

type UpdateCartLineDTO struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}
