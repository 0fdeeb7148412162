package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/RoyceAzure/lab/bookstore/pkg/api"
)

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				log.Printf("Panic: %v\n%s", err, stack)

				api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
