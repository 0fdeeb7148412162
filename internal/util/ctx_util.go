package util

import (
	"context"

	"github.com/RoyceAzure/lab/bookstore/internal/constants"
	"github.com/google/uuid"
)

// UserPayload 上游身分中心給的使用者資訊，這裡無條件信任
type UserPayload struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (p *UserPayload) IsAdmin() bool {
	return p != nil && p.Role == constants.RoleAdmin
}

// GetUserPayloadFromContext 從請求上下文取使用者資訊
// 不存在時回傳 nil，由呼叫端決定是否視為未登入
func GetUserPayloadFromContext(ctx context.Context) *UserPayload {
	var payload *UserPayload

	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		payload = v.(*UserPayload)
	}

	return payload
}
