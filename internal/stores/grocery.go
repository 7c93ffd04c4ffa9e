package stores

import (
	"sync"

	"github.com/foooood/storefront/internal/models"
)

// GroceryCart mirrors FoodCart without the single-restaurant constraint:
// grocery lines may mix products from any category.
type GroceryCart struct {
	mu    sync.Mutex
	lines []models.GroceryCartLine
}

func NewGroceryCart() *GroceryCart {
	return &GroceryCart{}
}

func (c *GroceryCart) AddItem(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == product.ID {
			c.lines[i].Quantity++

			return
		}
	}

	c.lines = append(c.lines, models.GroceryCartLine{Product: product, Quantity: 1})
}

func (c *GroceryCart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(productID)
}

func (c *GroceryCart) removeLocked(productID string) {
	kept := c.lines[:0]

	for _, line := range c.lines {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}

	c.lines = kept
}

func (c *GroceryCart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)

		return
	}

	for i := range c.lines {
		if c.lines[i].ID == productID {
			c.lines[i].Quantity = quantity

			return
		}
	}
}

func (c *GroceryCart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

func (c *GroceryCart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lines) == 0
}

func (c *GroceryCart) Lines() []models.GroceryCartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]models.GroceryCartLine, len(c.lines))
	copy(lines, c.lines)

	return lines
}

func (c *GroceryCart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}

	return total
}

func (c *GroceryCart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Price * line.Quantity
	}

	return total
}

func (c *GroceryCart) DeliveryFee() int {
	return groceryDeliveryFee(c.TotalPrice())
}

func (c *GroceryCart) Taxes() int {
	return taxes(c.TotalPrice())
}

func (c *GroceryCart) GrandTotal() int {
	total := c.TotalPrice()

	return total + groceryDeliveryFee(total) + taxes(total)
}

func (c *GroceryCart) Bill() models.Bill {
	total := c.TotalPrice()

	return models.Bill{
		ItemTotal:   total,
		DeliveryFee: groceryDeliveryFee(total),
		Taxes:       taxes(total),
		GrandTotal:  total + groceryDeliveryFee(total) + taxes(total),
	}
}

func (c *GroceryCart) View() models.GroceryCartView {
	lines := c.Lines()

	totalItems := 0

	total := 0
	for _, line := range lines {
		totalItems += line.Quantity
		total += line.Price * line.Quantity
	}

	return models.GroceryCartView{
		Lines:      lines,
		TotalItems: totalItems,
		Bill: models.Bill{
			ItemTotal:   total,
			DeliveryFee: groceryDeliveryFee(total),
			Taxes:       taxes(total),
			GrandTotal:  total + groceryDeliveryFee(total) + taxes(total),
		},
	}
}
