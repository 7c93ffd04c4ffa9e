package stores

import (
	"sync"

	"github.com/foooood/storefront/internal/models"
)

// FoodCart is the single source of truth for the food order. Lines keep
// insertion order and always belong to one restaurant: adding an item from a
// different restaurant silently discards the current cart.
//
// All derived totals are recomputed on every call; carts hold tens of lines
// at most.
type FoodCart struct {
	mu             sync.Mutex
	lines          []models.CartLine
	restaurantID   string
	restaurantName string
	instructions   string
}

func NewFoodCart() *FoodCart {
	return &FoodCart{}
}

// AddItem puts one unit of item into the cart, incrementing the quantity if
// a line for it already exists. Returns true when the cart was cleared
// because the item came from a different restaurant.
func (c *FoodCart) AddItem(item models.MenuItem, restaurantID, restaurantName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switched := false

	if c.restaurantID != "" && c.restaurantID != restaurantID {
		c.lines = nil
		switched = true
	}

	c.restaurantID = restaurantID
	c.restaurantName = restaurantName

	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Quantity++

			return switched
		}
	}

	c.lines = append(c.lines, models.CartLine{
		MenuItem:       item,
		Quantity:       1,
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
	})

	return switched
}

func (c *FoodCart) RemoveItem(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(itemID)
}

func (c *FoodCart) removeLocked(itemID string) {
	kept := c.lines[:0]

	for _, line := range c.lines {
		if line.ID != itemID {
			kept = append(kept, line)
		}
	}

	c.lines = kept

	if len(c.lines) == 0 {
		c.restaurantID = ""
		c.restaurantName = ""
	}
}

// UpdateQuantity sets the line's quantity to the given absolute value. A
// quantity of zero or less removes the line.
func (c *FoodCart) UpdateQuantity(itemID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(itemID)

		return
	}

	for i := range c.lines {
		if c.lines[i].ID == itemID {
			c.lines[i].Quantity = quantity

			return
		}
	}
}

func (c *FoodCart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.restaurantID = ""
	c.restaurantName = ""
	c.instructions = ""
}

func (c *FoodCart) SetInstructions(note string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.instructions = note
}

func (c *FoodCart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lines) == 0
}

// Source returns the restaurant the cart is bound to; ok is false for an
// empty cart.
func (c *FoodCart) Source() (id, name string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.restaurantID, c.restaurantName, c.restaurantID != ""
}

func (c *FoodCart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)

	return lines
}

func (c *FoodCart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}

	return total
}

func (c *FoodCart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.totalPriceLocked()
}

func (c *FoodCart) totalPriceLocked() int {
	total := 0
	for _, line := range c.lines {
		total += line.Price * line.Quantity
	}

	return total
}

func (c *FoodCart) DeliveryFee() int {
	return foodDeliveryFee(c.TotalPrice())
}

func (c *FoodCart) Taxes() int {
	return taxes(c.TotalPrice())
}

func (c *FoodCart) GrandTotal() int {
	total := c.TotalPrice()

	return total + foodDeliveryFee(total) + taxes(total)
}

func (c *FoodCart) Bill() models.Bill {
	total := c.TotalPrice()

	return models.Bill{
		ItemTotal:   total,
		DeliveryFee: foodDeliveryFee(total),
		Taxes:       taxes(total),
		GrandTotal:  total + foodDeliveryFee(total) + taxes(total),
	}
}

func (c *FoodCart) View() models.FoodCartView {
	c.mu.Lock()

	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)

	var restaurantID, restaurantName *string
	if c.restaurantID != "" {
		id, name := c.restaurantID, c.restaurantName
		restaurantID, restaurantName = &id, &name
	}

	instructions := c.instructions

	totalItems := 0

	total := 0
	for _, line := range lines {
		totalItems += line.Quantity
		total += line.Price * line.Quantity
	}

	c.mu.Unlock()

	return models.FoodCartView{
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
		Lines:          lines,
		Instructions:   instructions,
		TotalItems:     totalItems,
		Bill: models.Bill{
			ItemTotal:   total,
			DeliveryFee: foodDeliveryFee(total),
			Taxes:       taxes(total),
			GrandTotal:  total + foodDeliveryFee(total) + taxes(total),
		},
	}
}
