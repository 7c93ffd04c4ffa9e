package stores_test

import (
	"testing"

	"github.com/foooood/storefront/internal/models"
	"github.com/foooood/storefront/internal/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: price, IsVeg: true, Category: "snacks", InStock: true}
}

func TestGroceryCartAddItem(t *testing.T) {
	t.Run("Success - Mixed Products Coexist", func(t *testing.T) {
		// Arrange
		cart := stores.NewGroceryCart()

		// Act
		cart.AddItem(product("p1", 45))
		cart.AddItem(product("p2", 180))
		cart.AddItem(product("p1", 45))

		// Assert
		lines := cart.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 3, cart.TotalItems())
		assert.Equal(t, 270, cart.TotalPrice())
	})
}

func TestGroceryCartUpdateQuantity(t *testing.T) {
	t.Run("Success - Zero Removes The Line", func(t *testing.T) {
		// Arrange
		cart := stores.NewGroceryCart()
		cart.AddItem(product("p1", 45))

		// Act
		cart.UpdateQuantity("p1", 0)

		// Assert
		assert.True(t, cart.Empty())
	})

	t.Run("Success - Absolute Set", func(t *testing.T) {
		// Arrange
		cart := stores.NewGroceryCart()
		cart.AddItem(product("p1", 45))

		// Act
		cart.UpdateQuantity("p1", 4)

		// Assert
		assert.Equal(t, 4, cart.TotalItems())
		assert.Equal(t, 180, cart.TotalPrice())
	})
}

func TestGroceryCartDeliveryFee(t *testing.T) {
	tests := []struct {
		name      string
		itemTotal int
		wantFee   int
	}{
		{"Just Below Free Threshold", 298, 25},
		{"At Free Threshold", 299, 0},
		{"Above Free Threshold", 500, 0},
		{"Small Basket", 45, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			cart := stores.NewGroceryCart()
			cart.AddItem(product("p1", tc.itemTotal))

			// Assert
			assert.Equal(t, tc.wantFee, cart.DeliveryFee())
		})
	}
}

func TestGroceryCartBill(t *testing.T) {
	// Arrange
	cart := stores.NewGroceryCart()
	cart.AddItem(product("p17", 320))

	// Act
	bill := cart.Bill()

	// Assert
	assert.Equal(t, 320, bill.ItemTotal)
	assert.Equal(t, 0, bill.DeliveryFee)
	assert.Equal(t, 16, bill.Taxes)
	assert.Equal(t, 336, bill.GrandTotal)
	assert.Equal(t, bill.ItemTotal+bill.DeliveryFee+bill.Taxes, bill.GrandTotal)
}

func TestLocationStore(t *testing.T) {
	t.Run("Success - Set And Clear As A Pair", func(t *testing.T) {
		// Arrange
		store := stores.NewLocationStore()

		_, _, ok := store.Selected()
		require.False(t, ok)

		// Act
		store.SetSelectedArea("peelamedu", "Peelamedu")

		// Assert
		id, name, ok := store.Selected()
		require.True(t, ok)
		assert.Equal(t, "peelamedu", id)
		assert.Equal(t, "Peelamedu", name)

		// Act - clear
		store.SetSelectedArea("", "")

		_, _, ok = store.Selected()
		assert.False(t, ok)
	})
}
