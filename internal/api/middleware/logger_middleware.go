package middleware

import (
	"net/http"
	"os"

	"github.com/RoyceAzure/lab/bookstore/internal/constants"
	"github.com/RoyceAzure/lab/bookstore/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecoder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func getRequestID(r *http.Request) string {
	requestId := "unknown"
	if v := r.Context().Value(constants.RequestIDKey); v != nil {
		requestId = v.(string)
	}
	return requestId
}

func getPayload(r *http.Request) *util.UserPayload {
	payload := util.GetUserPayloadFromContext(r.Context())
	if payload == nil {
		return &util.UserPayload{
			UserID: uuid.Nil,
		}
	}
	return payload
}

// 記錄request 請求
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recoder := &StatusRecoder{
				ResponseWriter: w,
			}
			next.ServeHTTP(recoder, r)

			requestId := getRequestID(r)
			payload := getPayload(r)

			if logger == nil {
				temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
				logger = &temp
			}

			logger.Info().
				Str("request_id", requestId).
				Str("user_id", payload.UserID.String()).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recoder.Status()).
				Msg("request completed")
		})
	}
}
