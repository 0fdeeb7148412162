package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/bookstore/internal/api/dto"
	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/RoyceAzure/lab/bookstore/internal/service"
	"github.com/RoyceAzure/lab/bookstore/internal/util"
	"github.com/RoyceAzure/lab/bookstore/pkg/api"
	"github.com/go-chi/chi/v5"
)

type CheckoutHandler struct {
	checkoutService service.ICheckoutService
}

func NewCheckoutHandler(checkoutService service.ICheckoutService) *CheckoutHandler {
	if checkoutService == nil {
		panic("checkoutService cannot be nil")
	}
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// GET /checkout
// 結帳預覽，跟 process 用同一份計價
func (h *CheckoutHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	summary, err := h.checkoutService.GetSummary(r.Context(), payload.UserID.String())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, summary)
}

// POST /checkout/validate
func (h *CheckoutHandler) ValidateCheckout(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	problems, err := h.checkoutService.Validate(r.Context(), payload.UserID.String())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(problems) > 0 {
		api.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"message": "checkout validation failed",
			"errors":  problems,
		})
		return
	}
	api.MessageJSON(w, "checkout validation successful")
}

// POST /checkout/process
func (h *CheckoutHandler) ProcessCheckout(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	var checkoutDTO dto.ProcessCheckoutDTO
	if err := json.NewDecoder(r.Body).Decode(&checkoutDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.checkoutService.ProcessCheckout(r.Context(), payload.UserID.String(),
		model.ShippingAddress{
			Address:    checkoutDTO.ShippingAddress.Address,
			City:       checkoutDTO.ShippingAddress.City,
			PostalCode: checkoutDTO.ShippingAddress.PostalCode,
		},
		checkoutDTO.PaymentMethod,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.CreatedJSON(w, map[string]any{
		"message": "order created successfully",
		"order":   dto.NewOrderResponse(order),
	})
}

// POST /checkout/payment/{orderId}
func (h *CheckoutHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())

	var paymentDTO dto.ProcessPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&paymentDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.checkoutService.ProcessPayment(r.Context(),
		payload.UserID.String(), payload.Email, chi.URLParam(r, "orderId"),
		model.PaymentResult{
			PaymentID:    paymentDTO.PaymentResult.ID,
			Status:       paymentDTO.PaymentResult.Status,
			UpdateTime:   paymentDTO.PaymentResult.UpdateTime,
			EmailAddress: paymentDTO.PaymentResult.EmailAddress,
		},
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, map[string]any{
		"message": "payment processed successfully",
		"order":   dto.NewOrderResponse(order),
	})
}
