package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/bookstore/internal/constants"
	"github.com/RoyceAzure/lab/bookstore/internal/util"
	"github.com/google/uuid"
)

// AuthPayloadMiddleware 解析上游身分中心塞進來的使用者 header
// 解析不到不擋請求，交給 AuthMiddleware 決定
func AuthPayloadMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(constants.UserIDHeaderKey)
		if rawID == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := uuid.Parse(rawID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		payload := &util.UserPayload{
			UserID: userID,
			Email:  r.Header.Get(constants.UserEmailHeaderKey),
			Role:   r.Header.Get(constants.UserRoleHeaderKey),
		}

		ctx := context.WithValue(r.Context(), constants.AuthorizationPayloadKey, payload)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
