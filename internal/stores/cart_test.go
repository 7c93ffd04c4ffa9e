package stores_test

import (
	"testing"

	"github.com/foooood/storefront/internal/models"
	"github.com/foooood/storefront/internal/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id string, price int) models.MenuItem {
	return models.MenuItem{ID: id, Name: "Item " + id, Price: price, IsVeg: true, Category: "Main Course"}
}

func TestFoodCartAddItem(t *testing.T) {
	t.Run("Success - First Item Binds The Restaurant", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()

		// Act
		switched := cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")

		// Assert
		assert.False(t, switched)

		id, name, ok := cart.Source()
		require.True(t, ok)
		assert.Equal(t, "rest-1", id)
		assert.Equal(t, "Green Leaf Kitchen", name)
		assert.Equal(t, 1, cart.TotalItems())
	})

	t.Run("Success - Same Item Increments Quantity", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")

		// Act
		cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")

		// Assert
		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 2, cart.TotalItems())
		assert.Equal(t, 200, cart.TotalPrice())
	})

	t.Run("Success - Different Restaurant Discards The Cart", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")
		cart.AddItem(menuItem("i2", 150), "rest-1", "Green Leaf Kitchen")

		// Act
		switched := cart.AddItem(menuItem("i9", 250), "rest-2", "Spice Junction")

		// Assert
		assert.True(t, switched)

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "i9", lines[0].ID)

		id, _, ok := cart.Source()
		require.True(t, ok)
		assert.Equal(t, "rest-2", id)
	})
}

func TestFoodCartRemoveItem(t *testing.T) {
	t.Run("Success - Remove One Line", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")
		cart.AddItem(menuItem("i2", 150), "rest-1", "Green Leaf Kitchen")

		// Act
		cart.RemoveItem("i1")

		// Assert
		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "i2", lines[0].ID)

		_, _, ok := cart.Source()
		assert.True(t, ok, "source must survive while lines remain")
	})

	t.Run("Success - Removing The Last Line Resets The Source", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")

		// Act
		cart.RemoveItem("i1")

		// Assert
		assert.True(t, cart.Empty())

		_, _, ok := cart.Source()
		assert.False(t, ok)
	})
}

func TestFoodCartUpdateQuantity(t *testing.T) {
	t.Run("Success - Absolute Set", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")

		// Act
		cart.UpdateQuantity("i1", 5)

		// Assert
		assert.Equal(t, 5, cart.TotalItems())
		assert.Equal(t, 500, cart.TotalPrice())
	})

	t.Run("Success - Zero Quantity Removes The Line", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")

		// Act
		cart.UpdateQuantity("i1", 0)

		// Assert
		assert.True(t, cart.Empty())

		_, _, ok := cart.Source()
		assert.False(t, ok)
	})

	t.Run("Success - Unknown Item Is A No-Op", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")

		// Act
		cart.UpdateQuantity("missing", 3)

		// Assert
		assert.Equal(t, 1, cart.TotalItems())
	})
}

func TestFoodCartDeliveryFee(t *testing.T) {
	tests := []struct {
		name      string
		itemTotal int
		wantFee   int
	}{
		{"Below Reduced Threshold", 199, 40},
		{"At Reduced Threshold", 200, 25},
		{"Just Below Free Threshold", 499, 25},
		{"At Free Threshold", 500, 0},
		{"Above Free Threshold", 750, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			cart := stores.NewFoodCart()
			cart.AddItem(menuItem("i1", tc.itemTotal), "rest-1", "Green Leaf Kitchen")

			// Assert
			assert.Equal(t, tc.wantFee, cart.DeliveryFee())
		})
	}
}

func TestFoodCartTaxes(t *testing.T) {
	t.Run("Success - Five Percent Rounded Half Up", func(t *testing.T) {
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 90), "rest-1", "Green Leaf Kitchen")

		// 90 * 5% = 4.5, rounds up
		assert.Equal(t, 5, cart.Taxes())
	})

	t.Run("Success - Rounds Down Below Half", func(t *testing.T) {
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 88), "rest-1", "Green Leaf Kitchen")

		// 88 * 5% = 4.4
		assert.Equal(t, 4, cart.Taxes())
	})
}

func TestFoodCartBill(t *testing.T) {
	t.Run("Success - Two Biryanis", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("n1", 250), "rest-5", "Biryani House")
		cart.AddItem(menuItem("n1", 250), "rest-5", "Biryani House")

		// Act
		bill := cart.Bill()

		// Assert
		assert.Equal(t, 500, bill.ItemTotal)
		assert.Equal(t, 0, bill.DeliveryFee)
		assert.Equal(t, 25, bill.Taxes)
		assert.Equal(t, 525, bill.GrandTotal)
	})

	t.Run("Success - Grand Total Identity", func(t *testing.T) {
		// Arrange
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 130), "rest-1", "Green Leaf Kitchen")
		cart.AddItem(menuItem("i2", 60), "rest-1", "Green Leaf Kitchen")

		// Act
		bill := cart.Bill()

		// Assert
		assert.Equal(t, bill.ItemTotal+bill.DeliveryFee+bill.Taxes, bill.GrandTotal)
		assert.Equal(t, cart.GrandTotal(), bill.GrandTotal)
	})
}

func TestFoodCartClear(t *testing.T) {
	// Arrange
	cart := stores.NewFoodCart()
	cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")
	cart.SetInstructions("Less spicy please")

	// Act
	cart.Clear()

	// Assert
	assert.True(t, cart.Empty())
	assert.Empty(t, cart.View().Instructions)

	_, _, ok := cart.Source()
	assert.False(t, ok)
}

func TestFoodCartView(t *testing.T) {
	t.Run("Success - Empty Cart Has Nil Restaurant", func(t *testing.T) {
		cart := stores.NewFoodCart()

		view := cart.View()

		assert.Nil(t, view.RestaurantID)
		assert.Nil(t, view.RestaurantName)
		assert.Zero(t, view.TotalItems)
		assert.Zero(t, view.Bill.ItemTotal)
	})

	t.Run("Success - Populated View", func(t *testing.T) {
		cart := stores.NewFoodCart()
		cart.AddItem(menuItem("i1", 100), "rest-1", "Green Leaf Kitchen")
		cart.SetInstructions("Ring the bell")

		view := cart.View()

		require.NotNil(t, view.RestaurantID)
		assert.Equal(t, "rest-1", *view.RestaurantID)
		assert.Equal(t, "Ring the bell", view.Instructions)
		assert.Equal(t, 1, view.TotalItems)
		require.Len(t, view.Lines, 1)
	})
}
