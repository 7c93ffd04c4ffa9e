package checkout

import (
	"github.com/foooood/storefront/internal/models"
	"github.com/foooood/storefront/internal/stores"
)

// Cart is the slice of a cart store the flow needs: emptiness, the bill,
// the order lines and the post-checkout clear.
type Cart interface {
	Empty() bool
	Bill() models.Bill
	OrderLines() []models.OrderLine
	SourceName() string
	Clear()
}

type foodCartBackend struct {
	cart *stores.FoodCart
}

func NewFoodCartBackend(cart *stores.FoodCart) Cart {
	return &foodCartBackend{cart: cart}
}

func (b *foodCartBackend) Empty() bool {
	return b.cart.Empty()
}

func (b *foodCartBackend) Bill() models.Bill {
	return b.cart.Bill()
}

func (b *foodCartBackend) OrderLines() []models.OrderLine {
	lines := b.cart.Lines()

	orderLines := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, models.OrderLine{
			ItemID:    line.ID,
			Name:      line.Name,
			UnitPrice: line.Price,
			Quantity:  line.Quantity,
			LineTotal: line.Price * line.Quantity,
			IsVeg:     line.IsVeg,
		})
	}

	return orderLines
}

func (b *foodCartBackend) SourceName() string {
	_, name, _ := b.cart.Source()

	return name
}

func (b *foodCartBackend) Clear() {
	b.cart.Clear()
}

type groceryCartBackend struct {
	cart *stores.GroceryCart
}

func NewGroceryCartBackend(cart *stores.GroceryCart) Cart {
	return &groceryCartBackend{cart: cart}
}

func (b *groceryCartBackend) Empty() bool {
	return b.cart.Empty()
}

func (b *groceryCartBackend) Bill() models.Bill {
	return b.cart.Bill()
}

func (b *groceryCartBackend) OrderLines() []models.OrderLine {
	lines := b.cart.Lines()

	orderLines := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, models.OrderLine{
			ItemID:    line.ID,
			Name:      line.Name,
			UnitPrice: line.Price,
			Quantity:  line.Quantity,
			LineTotal: line.Price * line.Quantity,
			IsVeg:     line.IsVeg,
		})
	}

	return orderLines
}

func (b *groceryCartBackend) SourceName() string {
	return ""
}

func (b *groceryCartBackend) Clear() {
	b.cart.Clear()
}
