package service

import (
	"github.com/foooood/storefront/internal/catalog"
	"github.com/foooood/storefront/internal/errors"
	"github.com/foooood/storefront/internal/models"
	"github.com/foooood/storefront/internal/stores"
)

// CatalogService answers the read-only storefront views. When a query does
// not name an area, the location selector's choice scopes the results.
type CatalogService struct {
	catalog  *catalog.Catalog
	location *stores.LocationStore
}

func NewCatalogService(cat *catalog.Catalog, location *stores.LocationStore) *CatalogService {
	return &CatalogService{catalog: cat, location: location}
}

type LocationView struct {
	AreaID   *string `json:"area_id"`
	AreaName *string `json:"area_name"`
}

func (s *CatalogService) Restaurants(q catalog.RestaurantQuery, useSelectedArea bool) []models.Restaurant {
	if q.Area == "" && useSelectedArea {
		if areaID, _, ok := s.location.Selected(); ok {
			q.Area = areaID
		}
	}

	return s.catalog.Restaurants(q)
}

func (s *CatalogService) Restaurant(id string) (*models.Restaurant, error) {
	restaurant, ok := s.catalog.Restaurant(id)
	if !ok {
		return nil, errors.NotFoundError("Restaurant not found")
	}

	return restaurant, nil
}

func (s *CatalogService) Products(q catalog.ProductQuery) []models.Product {
	return s.catalog.Products(q)
}

func (s *CatalogService) Categories() []models.Category {
	return s.catalog.Categories()
}

func (s *CatalogService) Areas() []models.Area {
	return s.catalog.Areas()
}

func (s *CatalogService) Dineout(q catalog.DineoutQuery, useSelectedArea bool) []models.DineoutRestaurant {
	if q.Area == "" && useSelectedArea {
		if areaID, _, ok := s.location.Selected(); ok {
			q.Area = areaID
		}
	}

	return s.catalog.Dineout(q)
}

// SetLocation selects the area scoping catalog views. An empty id clears
// the selection; id and name always change together.
func (s *CatalogService) SetLocation(areaID string) (LocationView, error) {
	if areaID == "" {
		s.location.SetSelectedArea("", "")

		return s.Location(), nil
	}

	area, ok := s.catalog.Area(areaID)
	if !ok {
		return LocationView{}, errors.NotFoundError("Unknown area")
	}

	s.location.SetSelectedArea(area.ID, area.Name)

	return s.Location(), nil
}

func (s *CatalogService) Location() LocationView {
	areaID, areaName, ok := s.location.Selected()
	if !ok {
		return LocationView{}
	}

	return LocationView{AreaID: &areaID, AreaName: &areaName}
}
