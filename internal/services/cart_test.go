package service_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/foooood/storefront/internal/catalog"
	apperrors "github.com/foooood/storefront/internal/errors"
	"github.com/foooood/storefront/internal/models"
	service "github.com/foooood/storefront/internal/services"
	"github.com/foooood/storefront/internal/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is an in-process Cache used to exercise snapshot persistence
// without a Redis instance.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, value any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(data, value)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = data

	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)

	return nil
}

func (c *memoryCache) Close() error { return nil }

func setupCartService(t *testing.T) (*service.CartService, *stores.FoodCart, *stores.GroceryCart) {
	t.Helper()

	cat := catalog.New()
	food := stores.NewFoodCart()
	grocery := stores.NewGroceryCart()

	return service.NewCartService(cat, food, grocery), food, grocery
}

func TestAddFoodItem(t *testing.T) {
	t.Run("Success - Item Resolved From The Catalog", func(t *testing.T) {
		// Arrange
		svc, _, _ := setupCartService(t)

		// Act
		view, err := svc.AddFoodItem(t.Context(), &models.AddFoodItemRequest{RestaurantID: "rest-1", ItemID: "v7"})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, view.RestaurantID)
		assert.Equal(t, "rest-1", *view.RestaurantID)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "Margherita Pizza", view.Lines[0].Name)
		assert.Equal(t, 250, view.Bill.ItemTotal)
	})

	t.Run("Failure - Item Not On The Restaurant Menu", func(t *testing.T) {
		// Arrange
		svc, _, _ := setupCartService(t)

		// Act - rest-1 is pure veg, n1 is a non-veg item
		_, err := svc.AddFoodItem(t.Context(), &models.AddFoodItemRequest{RestaurantID: "rest-1", ItemID: "n1"})

		// Assert
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Success - Switching Restaurants Discards The Cart", func(t *testing.T) {
		// Arrange
		svc, food, _ := setupCartService(t)

		_, err := svc.AddFoodItem(t.Context(), &models.AddFoodItemRequest{RestaurantID: "rest-1", ItemID: "v7"})
		require.NoError(t, err)

		// Act - rest-5 is a different restaurant
		view, err := svc.AddFoodItem(t.Context(), &models.AddFoodItemRequest{RestaurantID: "rest-5", ItemID: "n1"})

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "n1", view.Lines[0].ID)

		id, _, ok := food.Source()
		require.True(t, ok)
		assert.Equal(t, "rest-5", id)
	})
}

func TestSetInstructions(t *testing.T) {
	t.Run("Success - Markup Is Stripped", func(t *testing.T) {
		// Arrange
		svc, _, _ := setupCartService(t)

		_, err := svc.AddFoodItem(t.Context(), &models.AddFoodItemRequest{RestaurantID: "rest-1", ItemID: "v7"})
		require.NoError(t, err)

		// Act
		view := svc.SetInstructions(t.Context(), &models.InstructionsRequest{Note: "<script>alert(1)</script> Less spicy "})

		// Assert
		assert.Equal(t, "Less spicy", view.Instructions)
	})
}

func TestAddGroceryItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc, _, _ := setupCartService(t)

		// Act
		view, err := svc.AddGroceryItem(t.Context(), &models.AddGroceryItemRequest{ProductID: "p1"})

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "Fresh Bananas", view.Lines[0].Name)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		svc, _, _ := setupCartService(t)

		_, err := svc.AddGroceryItem(t.Context(), &models.AddGroceryItemRequest{ProductID: "p999"})

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - Out Of Stock Product", func(t *testing.T) {
		svc, _, _ := setupCartService(t)

		// p22 is the out-of-stock fixture
		_, err := svc.AddGroceryItem(t.Context(), &models.AddGroceryItemRequest{ProductID: "p22"})

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
	})
}

func TestCartsView(t *testing.T) {
	// Arrange
	svc, _, _ := setupCartService(t)

	_, err := svc.AddFoodItem(t.Context(), &models.AddFoodItemRequest{RestaurantID: "rest-1", ItemID: "v7"})
	require.NoError(t, err)

	_, err = svc.AddGroceryItem(t.Context(), &models.AddGroceryItemRequest{ProductID: "p17"})
	require.NoError(t, err)

	// Act
	carts := svc.Carts()

	// Assert
	assert.Equal(t, 1, carts.Food.TotalItems)
	assert.Equal(t, 1, carts.Grocery.TotalItems)
	assert.Equal(t, 250, carts.Food.Bill.ItemTotal)
	assert.Equal(t, 320, carts.Grocery.Bill.ItemTotal)
}

func TestSnapshotRoundTrip(t *testing.T) {
	// Arrange - a service with a session store, carts filled and persisted
	cat := catalog.New()
	sessions := newMemoryCache()

	svc := service.NewCartService(cat, stores.NewFoodCart(), stores.NewGroceryCart()).
		WithSessionStore(sessions, 30*time.Minute)

	_, err := svc.AddFoodItem(t.Context(), &models.AddFoodItemRequest{RestaurantID: "rest-1", ItemID: "v7"})
	require.NoError(t, err)

	_ = svc.UpdateFoodQuantity(t.Context(), &models.UpdateQuantityRequest{ItemID: "v7", Quantity: 3})
	_ = svc.SetInstructions(t.Context(), &models.InstructionsRequest{Note: "Ring the bell"})

	_, err = svc.AddGroceryItem(t.Context(), &models.AddGroceryItemRequest{ProductID: "p1"})
	require.NoError(t, err)

	// Act - a fresh service over empty carts restores from the same store
	restored := service.NewCartService(cat, stores.NewFoodCart(), stores.NewGroceryCart()).
		WithSessionStore(sessions, 30*time.Minute)

	require.NoError(t, restored.RestoreSnapshot(t.Context()))

	// Assert
	carts := restored.Carts()
	assert.Equal(t, 3, carts.Food.TotalItems)
	assert.Equal(t, "Ring the bell", carts.Food.Instructions)
	assert.Equal(t, 1, carts.Grocery.TotalItems)
	require.NotNil(t, carts.Food.RestaurantID)
	assert.Equal(t, "rest-1", *carts.Food.RestaurantID)
}

func TestRestoreSnapshotWithoutStore(t *testing.T) {
	svc, _, _ := setupCartService(t)

	assert.NoError(t, svc.RestoreSnapshot(t.Context()), "restore is a no-op when sessions are disabled")
}
