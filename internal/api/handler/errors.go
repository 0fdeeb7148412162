package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/bookstore/internal/service"
	"github.com/RoyceAzure/lab/bookstore/pkg/api"
)

// writeServiceError 把 service 層的錯誤分類對應到 HTTP 狀態碼
// 不認得的錯誤一律當 500，訊息原樣帶出
func writeServiceError(w http.ResponseWriter, err error) {
	var stockErr *service.InsufficientStockError
	if errors.As(err, &stockErr) {
		api.ErrorJSON(w, http.StatusBadRequest, stockErr.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrCartLineNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrUserNotFound):
		api.ErrorJSON(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidBookData),
		errors.Is(err, service.ErrISBNAlreadyExist),
		errors.Is(err, service.ErrCheckoutFieldsRequired),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrOrderAlreadyPaid),
		errors.Is(err, service.ErrOrderNotPaid),
		errors.Is(err, service.ErrOrderAlreadyDelivered):
		api.ErrorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotOrderOwner):
		api.ErrorJSON(w, http.StatusForbidden, err.Error())
	default:
		api.ErrorJSON(w, http.StatusInternalServerError, err.Error())
	}
}
