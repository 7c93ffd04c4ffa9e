package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/foooood/storefront/internal/cache"
	"github.com/foooood/storefront/internal/catalog"
	"github.com/foooood/storefront/internal/errors"
	"github.com/foooood/storefront/internal/metrics"
	"github.com/foooood/storefront/internal/models"
	"github.com/foooood/storefront/internal/stores"
	"github.com/microcosm-cc/bluemonday"
)

// CartService mutates the two carts on behalf of the catalog views. Items
// are resolved against the catalog so a cart line always carries the
// catalog's own record of the item.
type CartService struct {
	catalog *catalog.Catalog
	food    *stores.FoodCart
	grocery *stores.GroceryCart

	// sessions is nil unless snapshot persistence is enabled.
	sessions   cache.Cache
	sessionTTL time.Duration

	sanitizer *bluemonday.Policy
}

func NewCartService(cat *catalog.Catalog, food *stores.FoodCart, grocery *stores.GroceryCart) *CartService {
	return &CartService{
		catalog:   cat,
		food:      food,
		grocery:   grocery,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// WithSessionStore turns on best-effort cart snapshots. Snapshot failures
// are logged, never surfaced.
func (s *CartService) WithSessionStore(sessions cache.Cache, ttl time.Duration) *CartService {
	s.sessions = sessions
	s.sessionTTL = ttl

	return s
}

func (s *CartService) Carts() models.CartsView {
	return models.CartsView{
		Food:    s.food.View(),
		Grocery: s.grocery.View(),
	}
}

func (s *CartService) AddFoodItem(ctx context.Context, req *models.AddFoodItemRequest) (models.FoodCartView, error) {

	restaurant, item, ok := s.catalog.MenuItem(req.RestaurantID, req.ItemID)
	if !ok {
		return models.FoodCartView{}, errors.NotFoundError("Item not found on the restaurant's menu")
	}

	// Adding from a different restaurant silently discards the current
	// cart; no confirmation is asked.
	if switched := s.food.AddItem(*item, restaurant.ID, restaurant.Name); switched {
		metrics.ObserveRestaurantSwitch()
		slog.InfoContext(ctx, "Cart cleared on restaurant switch", slog.String("restaurantId", restaurant.ID))
	}

	s.persistSnapshot(ctx)

	return s.food.View(), nil
}

func (s *CartService) UpdateFoodQuantity(ctx context.Context, req *models.UpdateQuantityRequest) models.FoodCartView {
	s.food.UpdateQuantity(req.ItemID, req.Quantity)
	s.persistSnapshot(ctx)

	return s.food.View()
}

func (s *CartService) RemoveFoodItem(ctx context.Context, itemID string) models.FoodCartView {
	s.food.RemoveItem(itemID)
	s.persistSnapshot(ctx)

	return s.food.View()
}

func (s *CartService) ClearFoodCart(ctx context.Context) {
	s.food.Clear()
	s.persistSnapshot(ctx)
}

// SetInstructions stores the cooking note, stripped of any markup.
func (s *CartService) SetInstructions(ctx context.Context, req *models.InstructionsRequest) models.FoodCartView {
	note := strings.TrimSpace(s.sanitizer.Sanitize(req.Note))
	s.food.SetInstructions(note)
	s.persistSnapshot(ctx)

	return s.food.View()
}

func (s *CartService) AddGroceryItem(ctx context.Context, req *models.AddGroceryItemRequest) (models.GroceryCartView, error) {

	product, ok := s.catalog.Product(req.ProductID)
	if !ok {
		return models.GroceryCartView{}, errors.NotFoundError("Product not found")
	}

	if !product.InStock {
		return models.GroceryCartView{}, errors.BadRequestError("Product is out of stock")
	}

	s.grocery.AddItem(*product)
	s.persistSnapshot(ctx)

	return s.grocery.View(), nil
}

func (s *CartService) UpdateGroceryQuantity(ctx context.Context, req *models.UpdateQuantityRequest) models.GroceryCartView {
	s.grocery.UpdateQuantity(req.ItemID, req.Quantity)
	s.persistSnapshot(ctx)

	return s.grocery.View()
}

func (s *CartService) RemoveGroceryItem(ctx context.Context, productID string) models.GroceryCartView {
	s.grocery.RemoveItem(productID)
	s.persistSnapshot(ctx)

	return s.grocery.View()
}

func (s *CartService) ClearGroceryCart(ctx context.Context) {
	s.grocery.Clear()
	s.persistSnapshot(ctx)
}

func (s *CartService) persistSnapshot(ctx context.Context) {
	if s.sessions == nil {
		return
	}

	snapshot := models.CartSnapshot{
		Food:    s.food.View(),
		Grocery: s.grocery.View(),
		SavedAt: time.Now(),
	}

	if err := s.sessions.Set(ctx, cache.CartSnapshotKey, snapshot, s.sessionTTL); err != nil {
		slog.WarnContext(ctx, "Failed to persist cart snapshot", slog.String("error", err.Error()))
	}
}

// RestoreSnapshot replays a previously saved snapshot through the public
// cart operations. Called once at startup when sessions are enabled.
func (s *CartService) RestoreSnapshot(ctx context.Context) error {
	if s.sessions == nil {
		return nil
	}

	var snapshot models.CartSnapshot

	found, err := s.sessions.Get(ctx, cache.CartSnapshotKey, &snapshot)
	if err != nil {
		return err
	}

	if !found {
		return nil
	}

	for _, line := range snapshot.Food.Lines {
		s.food.AddItem(line.MenuItem, line.RestaurantID, line.RestaurantName)
		s.food.UpdateQuantity(line.ID, line.Quantity)
	}

	if snapshot.Food.Instructions != "" {
		s.food.SetInstructions(snapshot.Food.Instructions)
	}

	for _, line := range snapshot.Grocery.Lines {
		s.grocery.AddItem(line.Product)
		s.grocery.UpdateQuantity(line.ID, line.Quantity)
	}

	slog.InfoContext(ctx, "Cart snapshot restored",
		slog.Int("foodLines", len(snapshot.Food.Lines)),
		slog.Int("groceryLines", len(snapshot.Grocery.Lines)))

	return nil
}
