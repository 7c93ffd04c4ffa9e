package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foooood/storefront/internal/api/handlers"
	"github.com/foooood/storefront/internal/catalog"
	"github.com/foooood/storefront/internal/models"
	service "github.com/foooood/storefront/internal/services"
	"github.com/foooood/storefront/internal/stores"
	"github.com/foooood/storefront/internal/testutils"
	"github.com/foooood/storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartHandler(t *testing.T) *handlers.CartHandler {
	t.Helper()

	cartService := service.NewCartService(catalog.New(), stores.NewFoodCart(), stores.NewGroceryCart())

	return handlers.NewCartHandler(cartService)
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) *response.APIResponse {
	t.Helper()

	var resp *response.APIResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp
}

func TestAddFoodItemHandler(t *testing.T) {
	t.Run("Success - Add Item", func(t *testing.T) {
		// Arrange
		cartHandler := setupCartHandler(t)

		body, _ := json.Marshal(models.AddFoodItemRequest{RestaurantID: "rest-1", ItemID: "v7"})
		req := testutils.CreateTestRequest("POST", "/api/v1/carts/food/items", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddFoodItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
	})

	t.Run("Failure - Missing Required Fields", func(t *testing.T) {
		// Arrange
		cartHandler := setupCartHandler(t)

		req := testutils.CreateTestRequest("POST", "/api/v1/carts/food/items", bytes.NewBufferString(`{}`), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddFoodItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})

	t.Run("Failure - Unknown Item", func(t *testing.T) {
		// Arrange
		cartHandler := setupCartHandler(t)

		body, _ := json.Marshal(models.AddFoodItemRequest{RestaurantID: "rest-1", ItemID: "nope"})
		req := testutils.CreateTestRequest("POST", "/api/v1/carts/food/items", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddFoodItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})
}

func TestRemoveFoodItemHandler(t *testing.T) {
	t.Run("Success - Remove By Path Param", func(t *testing.T) {
		// Arrange
		cartHandler := setupCartHandler(t)

		body, _ := json.Marshal(models.AddFoodItemRequest{RestaurantID: "rest-1", ItemID: "v7"})
		addReq := testutils.CreateTestRequest("POST", "/api/v1/carts/food/items", bytes.NewBuffer(body), nil)
		cartHandler.AddFoodItem()(httptest.NewRecorder(), addReq)

		req := testutils.CreateTestRequest("DELETE", "/api/v1/carts/food/items/v7", nil, map[string]string{"id": "v7"})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.RemoveFoodItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
	})

	t.Run("Failure - Missing Path Param", func(t *testing.T) {
		cartHandler := setupCartHandler(t)

		req := testutils.CreateTestRequest("DELETE", "/api/v1/carts/food/items/", nil, nil)
		recorder := httptest.NewRecorder()

		cartHandler.RemoveFoodItem()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetCartsHandler(t *testing.T) {
	// Arrange
	cartHandler := setupCartHandler(t)

	req := testutils.CreateTestRequest("GET", "/api/v1/carts", nil, nil)
	recorder := httptest.NewRecorder()

	// Act
	cartHandler.GetCarts()(recorder, req)

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)

	resp := decodeResponse(t, recorder)
	assert.True(t, resp.Success)
}

func TestAddGroceryItemHandler(t *testing.T) {
	t.Run("Failure - Out Of Stock", func(t *testing.T) {
		// Arrange
		cartHandler := setupCartHandler(t)

		body, _ := json.Marshal(models.AddGroceryItemRequest{ProductID: "p22"})
		req := testutils.CreateTestRequest("POST", "/api/v1/carts/grocery/items", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddGroceryItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
	})

	t.Run("Success - Add Product", func(t *testing.T) {
		// Arrange
		cartHandler := setupCartHandler(t)

		body, _ := json.Marshal(models.AddGroceryItemRequest{ProductID: "p1"})
		req := testutils.CreateTestRequest("POST", "/api/v1/carts/grocery/items", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddGroceryItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestSetInstructionsHandler(t *testing.T) {
	t.Run("Failure - Note Too Long", func(t *testing.T) {
		// Arrange
		cartHandler := setupCartHandler(t)

		long := make([]byte, 501)
		for i := range long {
			long[i] = 'a'
		}

		body, _ := json.Marshal(models.InstructionsRequest{Note: string(long)})
		req := testutils.CreateTestRequest("POST", "/api/v1/carts/food/instructions", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.SetInstructions()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
