package handlers

import (
	"net/http"

	service "github.com/foooood/storefront/internal/services"
	"github.com/foooood/storefront/internal/utils/response"
)

type OrderHandler struct {
	checkoutService *service.CheckoutService
}

func NewOrderHandler(service *service.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: service}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.checkoutService.ListOrders())
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		order, err := h.checkoutService.GetOrder(r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}
