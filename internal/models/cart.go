package models

import "time"

type CartKind string

const (
	CartKindFood    CartKind = "food"
	CartKindGrocery CartKind = "grocery"
)

// CartLine is a menu item held in the food cart. Every line in the cart
// belongs to the same restaurant.
type CartLine struct {
	MenuItem

	Quantity       int    `json:"quantity"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

type GroceryCartLine struct {
	Product

	Quantity int `json:"quantity"`
}

// Bill is the derived money view of a cart, in whole rupees.
type Bill struct {
	ItemTotal   int `json:"item_total"`
	DeliveryFee int `json:"delivery_fee"`
	Taxes       int `json:"taxes"`
	GrandTotal  int `json:"grand_total"`
}

type FoodCartView struct {
	RestaurantID   *string    `json:"restaurant_id"`
	RestaurantName *string    `json:"restaurant_name"`
	Lines          []CartLine `json:"lines"`
	Instructions   string     `json:"instructions,omitempty"`
	TotalItems     int        `json:"total_items"`
	Bill           Bill       `json:"bill"`
}

type GroceryCartView struct {
	Lines      []GroceryCartLine `json:"lines"`
	TotalItems int               `json:"total_items"`
	Bill       Bill              `json:"bill"`
}

type CartsView struct {
	Food    FoodCartView    `json:"food"`
	Grocery GroceryCartView `json:"grocery"`
}

// CartSnapshot is the optional session-persistence payload written to Redis
// after every mutation. Correctness never depends on it.
type CartSnapshot struct {
	Food    FoodCartView    `json:"food"`
	Grocery GroceryCartView `json:"grocery"`
	SavedAt time.Time       `json:"saved_at"`
}

type AddFoodItemRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	ItemID       string `json:"item_id"       validate:"required"`
}

type AddGroceryItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type UpdateQuantityRequest struct {
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type InstructionsRequest struct {
	Note string `json:"note" validate:"max=500"`
}
