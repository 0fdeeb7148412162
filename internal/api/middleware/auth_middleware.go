package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/bookstore/internal/util"
	"github.com/RoyceAzure/lab/bookstore/pkg/api"
)

// AuthMiddleware 需要登入的路由掛這個
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := util.GetUserPayloadFromContext(r.Context())
		if payload == nil {
			api.ErrorJSON(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminMiddleware 管理端路由掛這個，必須先過 AuthMiddleware
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := util.GetUserPayloadFromContext(r.Context())
		if payload == nil {
			api.ErrorJSON(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if !payload.IsAdmin() {
			api.ErrorJSON(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}
