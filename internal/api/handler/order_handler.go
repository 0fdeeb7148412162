package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/bookstore/internal/api/dto"
	"github.com/RoyceAzure/lab/bookstore/internal/service"
	"github.com/RoyceAzure/lab/bookstore/internal/util"
	"github.com/RoyceAzure/lab/bookstore/pkg/api"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// GET /orders (admin)
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, dto.NewOrderResponses(orders))
}

// GET /orders/myorders
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	orders, err := h.orderService.GetOrdersByUserID(r.Context(), payload.UserID.String())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, dto.NewOrderResponses(orders))
}

// GET /orders/{id}
// 只有訂單主人或管理員看得到
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	order, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if order.UserID != payload.UserID.String() && !payload.IsAdmin() {
		writeServiceError(w, service.ErrNotOrderOwner)
		return
	}
	api.SuccessJSON(w, dto.NewOrderResponse(order))
}

// PUT /orders/{id}/deliver (admin)
func (h *OrderHandler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.MarkOrderDelivered(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]any{
		"message": "order delivered",
		"order":   dto.NewOrderResponse(order),
	})
}
