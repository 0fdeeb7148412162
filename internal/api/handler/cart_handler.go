package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/bookstore/internal/api/dto"
	"github.com/RoyceAzure/lab/bookstore/internal/service"
	"github.com/RoyceAzure/lab/bookstore/internal/util"
	"github.com/RoyceAzure/lab/bookstore/pkg/api"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /cart
// 沒有購物車也回 200，給空購物車
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	cart, err := h.cartService.GetCart(r.Context(), payload.UserID.String())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, cart)
}

// POST /cart/add
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	var addDTO dto.AddCartLineDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if addDTO.Quantity == 0 {
		addDTO.Quantity = 1
	}

	cart, err := h.cartService.AddLine(r.Context(), payload.UserID.String(), addDTO.BookID, addDTO.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, cart)
}

// PUT /cart/update
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	var updateDTO dto.UpdateCartLineDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.cartService.UpdateLine(r.Context(), payload.UserID.String(), updateDTO.BookID, updateDTO.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, cart)
}

// DELETE /cart/remove/{bookId}
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	cart, err := h.cartService.RemoveLine(r.Context(), payload.UserID.String(), chi.URLParam(r, "bookId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, cart)
}

// DELETE /cart/clear
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	if err := h.cartService.Clear(r.Context(), payload.UserID.String()); err != nil {
		writeServiceError(w, err)
		return
	}
	api.MessageJSON(w, "cart cleared successfully")
}
