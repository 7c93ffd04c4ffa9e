package handlers

import (
	"log/slog"
	"net/http"

	"github.com/foooood/storefront/internal/models"
	service "github.com/foooood/storefront/internal/services"
	"github.com/foooood/storefront/internal/utils"
	"github.com/foooood/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type LocationHandler struct {
	catalogService *service.CatalogService
	validator      *validator.Validate
}

func NewLocationHandler(service *service.CatalogService) *LocationHandler {
	return &LocationHandler{
		catalogService: service,
		validator:      validator.New(),
	}
}

func (h *LocationHandler) GetLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.catalogService.Location())
	}
}

func (h *LocationHandler) SetLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.SetLocationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		location, err := h.catalogService.SetLocation(req.AreaID)
		if err != nil {
			response.Error(w, err)
			return
		}

		slog.InfoContext(r.Context(), "Location updated", slog.String("areaId", req.AreaID))
		response.Success(w, http.StatusOK, location)
	}
}
