package models

// Area is a deliverable locality. Catalog records are loaded once at start
// and never mutated.
type Area struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type MenuItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int    `json:"price"`
	Image        string `json:"image"`
	IsVeg        bool   `json:"is_veg"`
	Category     string `json:"category"`
	IsPopular    bool   `json:"is_popular,omitempty"`
	Customizable bool   `json:"customizable,omitempty"`
}

type Restaurant struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Image        string     `json:"image"`
	Cuisine      string     `json:"cuisine"`
	Rating       float64    `json:"rating"`
	DeliveryTime string     `json:"delivery_time"`
	PriceRange   string     `json:"price_range"`
	IsVeg        bool       `json:"is_veg"`
	IsPureVeg    bool       `json:"is_pure_veg,omitempty"`
	Offer        string     `json:"offer,omitempty"`
	Distance     string     `json:"distance"`
	Area         string     `json:"area"`
	Menu         []MenuItem `json:"menu"`
}

type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int    `json:"price"`
	OriginalPrice int    `json:"original_price,omitempty"`
	Image         string `json:"image"`
	IsVeg         bool   `json:"is_veg"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory"`
	Weight        string `json:"weight"`
	InStock       bool   `json:"in_stock"`
}

type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Subcategories []string `json:"subcategories"`
}

type DineoutRestaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Cuisine      string   `json:"cuisine"`
	DiningRating float64  `json:"dining_rating"`
	PriceRange   string   `json:"price_range"`
	IsVeg        bool     `json:"is_veg"`
	IsPureVeg    bool     `json:"is_pure_veg,omitempty"`
	Offer        string   `json:"offer,omitempty"`
	Area         string   `json:"area"`
	Address      string   `json:"address"`
	Timing       string   `json:"timing"`
	Features     []string `json:"features"`
}
