package handlers

import (
	"log/slog"
	"net/http"

	"github.com/foooood/storefront/internal/errors"
	"github.com/foooood/storefront/internal/models"
	service "github.com/foooood/storefront/internal/services"
	"github.com/foooood/storefront/internal/utils"
	"github.com/foooood/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(service *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: service,
		validator:       validator.New(),
	}
}

func cartKind(r *http.Request) models.CartKind {
	return models.CartKind(r.PathValue("kind"))
}

// writeError attaches the navigation sink's signal when the flow pushed the
// caller back to the cart view.
func (h *CheckoutHandler) writeError(w http.ResponseWriter, err error) {
	if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeEmptyCart {
		response.ErrorWithRedirect(w, err, h.checkoutService.LastRoute())
		return
	}

	response.Error(w, err)
}

func (h *CheckoutHandler) Enter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		view, err := h.checkoutService.Enter(r.Context(), cartKind(r))
		if err != nil {
			h.writeError(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CheckoutHandler) GetOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		options, err := h.checkoutService.Options(cartKind(r))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, options)
	}
}

func (h *CheckoutHandler) SelectAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.SelectAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.checkoutService.SelectAddress(r.Context(), cartKind(r), req.AddressID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CheckoutHandler) SelectPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.SelectPaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.checkoutService.SelectPayment(r.Context(), cartKind(r), req.PaymentMethodID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CheckoutHandler) ApplyCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.ApplyCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.checkoutService.ApplyCoupon(r.Context(), cartKind(r), req.Code)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CheckoutHandler) RemoveCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		view, err := h.checkoutService.RemoveCoupon(r.Context(), cartKind(r))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		view, err := h.checkoutService.Submit(r.Context(), cartKind(r))
		if err != nil {
			h.writeError(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CheckoutHandler) Confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.ConfirmRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.checkoutService.Confirm(r.Context(), cartKind(r), req.Code)
		if err != nil {
			response.Error(w, err)
			return
		}

		slog.InfoContext(r.Context(), "Order placed",
			slog.String("orderId", order.ID.String()),
			slog.String("kind", string(order.Kind)))
		response.SuccessWithRedirect(w, http.StatusCreated, order, h.checkoutService.LastRoute())
	}
}

func (h *CheckoutHandler) Cancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		view, err := h.checkoutService.Cancel(r.Context(), cartKind(r))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}
