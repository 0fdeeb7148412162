package dto

// 部分更新，沒帶的欄位保留原值
type UpdateUserDTO struct {
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email"`
	UserPhone   string `json:"user_phone"`
	UserAddress string `json:"user_address"`
}
