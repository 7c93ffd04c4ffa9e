package handlers

import (
	"net/http"

	"github.com/foooood/storefront/internal/errors"
	"github.com/foooood/storefront/internal/models"
	service "github.com/foooood/storefront/internal/services"
	"github.com/foooood/storefront/internal/utils"
	"github.com/foooood/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(service *service.CartService) *CartHandler {
	return &CartHandler{
		cartService: service,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCarts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.cartService.Carts())
	}
}

func (h *CartHandler) AddFoodItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddFoodItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddFoodItem(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) UpdateFoodQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.UpdateFoodQuantity(r.Context(), &req))
	}
}

func (h *CartHandler) RemoveFoodItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		itemID := r.PathValue("id")
		if itemID == "" {
			response.Error(w, errors.BadRequestError("Item ID is required"))
			return
		}

		response.Success(w, http.StatusOK, h.cartService.RemoveFoodItem(r.Context(), itemID))
	}
}

func (h *CartHandler) ClearFoodCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.cartService.ClearFoodCart(r.Context())
		response.Success(w, http.StatusOK, h.cartService.Carts().Food)
	}
}

func (h *CartHandler) SetInstructions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.InstructionsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.SetInstructions(r.Context(), &req))
	}
}

func (h *CartHandler) AddGroceryItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddGroceryItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddGroceryItem(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) UpdateGroceryQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.UpdateGroceryQuantity(r.Context(), &req))
	}
}

func (h *CartHandler) RemoveGroceryItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")
		if productID == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		response.Success(w, http.StatusOK, h.cartService.RemoveGroceryItem(r.Context(), productID))
	}
}

func (h *CartHandler) ClearGroceryCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.cartService.ClearGroceryCart(r.Context())
		response.Success(w, http.StatusOK, h.cartService.Carts().Grocery)
	}
}
