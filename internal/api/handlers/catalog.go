package handlers

import (
	"net/http"

	"github.com/foooood/storefront/internal/catalog"
	service "github.com/foooood/storefront/internal/services"
	"github.com/foooood/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: service}
}

func (h *CatalogHandler) ListAreas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.catalogService.Areas())
	}
}

func (h *CatalogHandler) ListRestaurants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := catalog.RestaurantQuery{
			Area:   r.URL.Query().Get("area"),
			Veg:    catalog.VegFilter(r.URL.Query().Get("veg")),
			Search: r.URL.Query().Get("search"),
			Sort:   catalog.SortBy(r.URL.Query().Get("sort")),
		}

		response.Success(w, http.StatusOK, h.catalogService.Restaurants(query, true))
	}
}

func (h *CatalogHandler) GetRestaurant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		restaurant, err := h.catalogService.Restaurant(r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, restaurant)
	}
}

func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := catalog.ProductQuery{
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
		}

		response.Success(w, http.StatusOK, h.catalogService.Products(query))
	}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.catalogService.Categories())
	}
}

func (h *CatalogHandler) ListDineout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := catalog.DineoutQuery{
			Area:   r.URL.Query().Get("area"),
			Veg:    catalog.VegFilter(r.URL.Query().Get("veg")),
			Search: r.URL.Query().Get("search"),
		}

		response.Success(w, http.StatusOK, h.catalogService.Dineout(query, true))
	}
}
