package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/foooood/storefront/internal/models"
)

// Catalog is the read-only data source for every storefront view. It is
// built once at process start and never mutated afterwards, so concurrent
// reads need no locking.
type Catalog struct {
	areas       []models.Area
	restaurants []models.Restaurant
	products    []models.Product
	categories  []models.Category
	dineout     []models.DineoutRestaurant

	restaurantByID map[string]*models.Restaurant
	productByID    map[string]*models.Product
	areaByID       map[string]*models.Area
}

type VegFilter string

const (
	VegFilterAll    VegFilter = "all"
	VegFilterVeg    VegFilter = "veg"
	VegFilterNonVeg VegFilter = "nonveg"
)

type SortBy string

const (
	SortByRating       SortBy = "rating"
	SortByDeliveryTime SortBy = "deliveryTime"
	SortByDistance     SortBy = "distance"
)

type RestaurantQuery struct {
	Area   string
	Veg    VegFilter
	Search string
	Sort   SortBy
}

type ProductQuery struct {
	Category string
	Search   string
}

type DineoutQuery struct {
	Area   string
	Veg    VegFilter
	Search string
}

func New() *Catalog {
	c := &Catalog{
		areas:       areas,
		restaurants: generateRestaurants(),
		products:    groceryProducts,
		categories:  groceryCategories,
		dineout:     generateDineout(),

		restaurantByID: make(map[string]*models.Restaurant),
		productByID:    make(map[string]*models.Product),
		areaByID:       make(map[string]*models.Area),
	}

	for i := range c.restaurants {
		c.restaurantByID[c.restaurants[i].ID] = &c.restaurants[i]
	}

	for i := range c.products {
		c.productByID[c.products[i].ID] = &c.products[i]
	}

	for i := range c.areas {
		c.areaByID[c.areas[i].ID] = &c.areas[i]
	}

	return c
}

func (c *Catalog) Areas() []models.Area {
	return c.areas
}

func (c *Catalog) Area(id string) (*models.Area, bool) {
	area, ok := c.areaByID[id]

	return area, ok
}

func (c *Catalog) Restaurant(id string) (*models.Restaurant, bool) {
	r, ok := c.restaurantByID[id]

	return r, ok
}

// MenuItem resolves an item on a specific restaurant's menu.
func (c *Catalog) MenuItem(restaurantID, itemID string) (*models.Restaurant, *models.MenuItem, bool) {
	r, ok := c.restaurantByID[restaurantID]
	if !ok {
		return nil, nil, false
	}

	for i := range r.Menu {
		if r.Menu[i].ID == itemID {
			return r, &r.Menu[i], true
		}
	}

	return nil, nil, false
}

func (c *Catalog) Product(id string) (*models.Product, bool) {
	p, ok := c.productByID[id]

	return p, ok
}

func (c *Catalog) Categories() []models.Category {
	return c.categories
}

func (c *Catalog) Restaurants(q RestaurantQuery) []models.Restaurant {
	filtered := make([]models.Restaurant, 0, len(c.restaurants))

	search := strings.ToLower(q.Search)

	for _, r := range c.restaurants {
		if q.Area != "" && r.Area != q.Area {
			continue
		}

		switch q.Veg {
		case VegFilterVeg:
			if !r.IsVeg && !r.IsPureVeg {
				continue
			}
		case VegFilterNonVeg:
			if r.IsVeg || r.IsPureVeg {
				continue
			}
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Cuisine), search) {
			continue
		}

		filtered = append(filtered, r)
	}

	switch q.Sort {
	case SortByDeliveryTime:
		sort.SliceStable(filtered, func(i, j int) bool {
			return leadingMinutes(filtered[i].DeliveryTime) < leadingMinutes(filtered[j].DeliveryTime)
		})
	case SortByDistance:
		sort.SliceStable(filtered, func(i, j int) bool {
			return distanceKm(filtered[i].Distance) < distanceKm(filtered[j].Distance)
		})
	default: // rating, highest first
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered
}

func (c *Catalog) Products(q ProductQuery) []models.Product {
	filtered := make([]models.Product, 0, len(c.products))

	search := strings.ToLower(q.Search)

	for _, p := range c.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}

func (c *Catalog) Dineout(q DineoutQuery) []models.DineoutRestaurant {
	filtered := make([]models.DineoutRestaurant, 0, len(c.dineout))

	search := strings.ToLower(q.Search)

	for _, r := range c.dineout {
		if q.Area != "" && r.Area != q.Area {
			continue
		}

		switch q.Veg {
		case VegFilterVeg:
			if !r.IsVeg && !r.IsPureVeg {
				continue
			}
		case VegFilterNonVeg:
			if r.IsVeg || r.IsPureVeg {
				continue
			}
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Cuisine), search) {
			continue
		}

		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DiningRating > filtered[j].DiningRating
	})

	return filtered
}

// leadingMinutes parses the lower bound of a "25-40 mins" range.
func leadingMinutes(deliveryTime string) int {
	lower, _, _ := strings.Cut(deliveryTime, "-")

	n, err := strconv.Atoi(strings.TrimSpace(lower))
	if err != nil {
		return 0
	}

	return n
}

func distanceKm(distance string) float64 {
	value, _, _ := strings.Cut(distance, " ")

	km, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return km
}
