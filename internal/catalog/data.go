package catalog

import (
	"fmt"
	"math/rand"

	"github.com/foooood/storefront/internal/models"
)

// Mock data generation. The catalog is deterministic: a fixed seed keeps
// ids, ratings and distances stable across restarts.

const dataSeed = 20240817

var areas = []models.Area{
	{ID: "peelamedu", Name: "Peelamedu", Image: "https://images.unsplash.com/photo-1567157577867-05ccb1388e66?w=400"},
	{ID: "ramanathapuram", Name: "Ramanathapuram", Image: "https://images.unsplash.com/photo-1559329007-40df8a9345d8?w=400"},
	{ID: "saravanampatti", Name: "Saravanampatti", Image: "https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=400"},
	{ID: "rs-puram", Name: "RS Puram", Image: "https://images.unsplash.com/photo-1552566626-52f8b828add9?w=400"},
	{ID: "gandhipuram", Name: "Gandhipuram", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400"},
	{ID: "singanallur", Name: "Singanallur", Image: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=400"},
	{ID: "vadavalli", Name: "Vadavalli", Image: "https://images.unsplash.com/photo-1537047902294-62a40c20a6ae?w=400"},
	{ID: "saibaba-colony", Name: "Saibaba Colony", Image: "https://images.unsplash.com/photo-1466978913421-dad2ebd01d17?w=400"},
	{ID: "kovaipudur", Name: "Kovaipudur", Image: "https://images.unsplash.com/photo-1590846406792-0adc7f938f1d?w=400"},
	{ID: "thudiyalur", Name: "Thudiyalur", Image: "https://images.unsplash.com/photo-1559339352-11d035aa65de?w=400"},
}

var foodImages = map[string]string{
	"biryani":  "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400",
	"dosa":     "https://images.unsplash.com/photo-1668236543090-82eb5eaf701b?w=400",
	"pizza":    "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400",
	"burger":   "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
	"paneer":   "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400",
	"chicken":  "https://images.unsplash.com/photo-1603360946369-dc9bb6258143?w=400",
	"idli":     "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?w=400",
	"thali":    "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400",
	"noodles":  "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400",
	"icecream": "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400",
	"lassi":    "https://images.unsplash.com/photo-1626200925580-b8dbf6b02ff4?w=400",
}

var restaurantImages = []string{
	"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=600",
	"https://images.unsplash.com/photo-1552566626-52f8b828add9?w=600",
	"https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=600",
	"https://images.unsplash.com/photo-1537047902294-62a40c20a6ae?w=600",
	"https://images.unsplash.com/photo-1466978913421-dad2ebd01d17?w=600",
	"https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=600",
	"https://images.unsplash.com/photo-1559329007-40df8a9345d8?w=600",
	"https://images.unsplash.com/photo-1567157577867-05ccb1388e66?w=600",
	"https://images.unsplash.com/photo-1590846406792-0adc7f938f1d?w=600",
	"https://images.unsplash.com/photo-1559339352-11d035aa65de?w=600",
}

func vegMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: "v1", Name: "Paneer Butter Masala", Description: "Creamy cottage cheese curry with rich tomato gravy", Price: 220, Image: foodImages["paneer"], IsVeg: true, Category: "Main Course", IsPopular: true},
		{ID: "v2", Name: "Veg Biryani", Description: "Fragrant basmati rice with mixed vegetables and spices", Price: 180, Image: foodImages["biryani"], IsVeg: true, Category: "Biryani", IsPopular: true},
		{ID: "v3", Name: "Masala Dosa", Description: "Crispy crepe with spiced potato filling", Price: 90, Image: foodImages["dosa"], IsVeg: true, Category: "South Indian"},
		{ID: "v4", Name: "Idli Sambar", Description: "Steamed rice cakes with lentil soup", Price: 60, Image: foodImages["idli"], IsVeg: true, Category: "South Indian"},
		{ID: "v5", Name: "Veg Thali", Description: "Complete meal with roti, rice, dal, and vegetables", Price: 150, Image: foodImages["thali"], IsVeg: true, Category: "Thali", IsPopular: true},
		{ID: "v6", Name: "Veg Noodles", Description: "Stir-fried noodles with vegetables", Price: 120, Image: foodImages["noodles"], IsVeg: true, Category: "Chinese"},
		{ID: "v7", Name: "Margherita Pizza", Description: "Classic pizza with tomato sauce and mozzarella", Price: 250, Image: foodImages["pizza"], IsVeg: true, Category: "Pizza"},
		{ID: "v8", Name: "Veg Burger", Description: "Crispy patty with fresh vegetables", Price: 130, Image: foodImages["burger"], IsVeg: true, Category: "Burgers"},
		{ID: "v9", Name: "Mango Lassi", Description: "Sweet mango yogurt drink", Price: 80, Image: foodImages["lassi"], IsVeg: true, Category: "Beverages"},
		{ID: "v10", Name: "Ice Cream Sundae", Description: "Vanilla ice cream with chocolate sauce", Price: 120, Image: foodImages["icecream"], IsVeg: true, Category: "Desserts"},
	}
}

func nonVegMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: "n1", Name: "Chicken Biryani", Description: "Aromatic rice layered with tender chicken", Price: 250, Image: foodImages["biryani"], IsVeg: false, Category: "Biryani", IsPopular: true},
		{ID: "n2", Name: "Butter Chicken", Description: "Creamy tomato curry with tender chicken", Price: 280, Image: foodImages["chicken"], IsVeg: false, Category: "Main Course", IsPopular: true},
		{ID: "n3", Name: "Chicken 65", Description: "Spicy deep-fried chicken appetizer", Price: 200, Image: foodImages["chicken"], IsVeg: false, Category: "Starters", IsPopular: true},
		{ID: "n4", Name: "Mutton Rogan Josh", Description: "Kashmiri style lamb curry", Price: 350, Image: foodImages["chicken"], IsVeg: false, Category: "Main Course"},
		{ID: "n5", Name: "Fish Fry", Description: "Crispy fried fish with spices", Price: 220, Image: foodImages["chicken"], IsVeg: false, Category: "Starters"},
		{ID: "n6", Name: "Chicken Noodles", Description: "Stir-fried noodles with chicken", Price: 150, Image: foodImages["noodles"], IsVeg: false, Category: "Chinese"},
		{ID: "n7", Name: "Chicken Pizza", Description: "Pizza topped with grilled chicken", Price: 320, Image: foodImages["pizza"], IsVeg: false, Category: "Pizza"},
		{ID: "n8", Name: "Chicken Burger", Description: "Juicy chicken patty with fresh veggies", Price: 160, Image: foodImages["burger"], IsVeg: false, Category: "Burgers"},
		{ID: "n9", Name: "Egg Biryani", Description: "Fragrant rice with boiled eggs", Price: 160, Image: foodImages["biryani"], IsVeg: false, Category: "Biryani"},
		{ID: "n10", Name: "Prawn Masala", Description: "Prawns in spicy coconut curry", Price: 380, Image: foodImages["chicken"], IsVeg: false, Category: "Seafood"},
	}
}

// generateMenu returns a fresh slice so callers can never alias the shared
// item definitions. Pure-veg restaurants only carry the veg half.
func generateMenu(isVeg bool) []models.MenuItem {
	menu := vegMenuItems()
	if isVeg {
		return menu
	}

	return append(menu, nonVegMenuItems()...)
}

var restaurantNames = struct {
	veg, nonVeg, mixed []string
}{
	veg: []string{
		"Green Leaf Kitchen", "Sattvik Pure Veg", "Annapurna Bhavan", "Fresh Garden Cafe",
		"Pure Veggie Delight", "Shudh Vegetarian", "Govinda's Kitchen", "Nature's Plate",
	},
	nonVeg: []string{
		"Spice Junction", "Royal Tandoor", "Biryani House", "Meat & Eat",
		"Grill Masters", "Sizzling Wok", "The Great Indian Kitchen", "Pepper House",
	},
	mixed: []string{
		"Food Court Express", "Taste of India", "Urban Bites", "Cafe Delight",
		"The Hungry Soul", "Masala Magic", "Street Food Hub", "Quick Bites",
	},
}

var cuisines = []string{
	"North Indian", "South Indian", "Chinese", "Multi-Cuisine", "Biryani",
	"Fast Food", "Street Food", "Beverages", "Desserts", "Continental",
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func generateRestaurants() []models.Restaurant {
	rng := rand.New(rand.NewSource(dataSeed))

	var restaurants []models.Restaurant

	id := 1

	for areaIndex, area := range areas {
		// 4 pure veg restaurants per area
		for i := range 4 {
			restaurants = append(restaurants, models.Restaurant{
				ID:           fmt.Sprintf("rest-%d", id),
				Name:         fmt.Sprintf("%s - %s", restaurantNames.veg[i], area.Name),
				Image:        restaurantImages[(areaIndex+i)%len(restaurantImages)],
				Cuisine:      cuisines[i%len(cuisines)],
				Rating:       4.0 + rng.Float64()*0.9,
				DeliveryTime: fmt.Sprintf("%d-%d mins", 20+rng.Intn(20), 35+rng.Intn(15)),
				PriceRange:   pick(rng, []string{"₹150", "₹200", "₹250", "₹300"}) + " for two",
				IsVeg:        true,
				IsPureVeg:    true,
				Offer:        pick(rng, []string{"50% OFF up to ₹100", "FREE Delivery", "20% OFF", "Buy 1 Get 1"}),
				Distance:     fmt.Sprintf("%.1f km", 1+rng.Float64()*3),
				Area:         area.ID,
				Menu:         generateMenu(true),
			})
			id++
		}

		// 3 non-veg restaurants
		for i := range 3 {
			restaurants = append(restaurants, models.Restaurant{
				ID:           fmt.Sprintf("rest-%d", id),
				Name:         fmt.Sprintf("%s - %s", restaurantNames.nonVeg[i], area.Name),
				Image:        restaurantImages[(areaIndex+i+4)%len(restaurantImages)],
				Cuisine:      cuisines[(i+4)%len(cuisines)],
				Rating:       4.0 + rng.Float64()*0.9,
				DeliveryTime: fmt.Sprintf("%d-%d mins", 25+rng.Intn(15), 40+rng.Intn(10)),
				PriceRange:   pick(rng, []string{"₹250", "₹350", "₹400", "₹500"}) + " for two",
				IsVeg:        false,
				Offer:        pick(rng, []string{"40% OFF up to ₹80", "FREE Delivery", "15% OFF", "₹75 OFF"}),
				Distance:     fmt.Sprintf("%.1f km", 1+rng.Float64()*4),
				Area:         area.ID,
				Menu:         generateMenu(false),
			})
			id++
		}

		// 3 mixed restaurants
		for i := range 3 {
			restaurants = append(restaurants, models.Restaurant{
				ID:           fmt.Sprintf("rest-%d", id),
				Name:         fmt.Sprintf("%s - %s", restaurantNames.mixed[i], area.Name),
				Image:        restaurantImages[(areaIndex+i+7)%len(restaurantImages)],
				Cuisine:      cuisines[(i+7)%len(cuisines)],
				Rating:       4.0 + rng.Float64()*0.9,
				DeliveryTime: fmt.Sprintf("%d-%d mins", 20+rng.Intn(15), 35+rng.Intn(15)),
				PriceRange:   pick(rng, []string{"₹200", "₹300", "₹350"}) + " for two",
				IsVeg:        false,
				Offer:        pick(rng, []string{"30% OFF", "FREE Delivery on ₹199+", "Extra 10% OFF"}),
				Distance:     fmt.Sprintf("%.1f km", 0.5+rng.Float64()*3),
				Area:         area.ID,
				Menu:         generateMenu(false),
			})
			id++
		}
	}

	return restaurants
}

var groceryCategories = []models.Category{
	{ID: "fruits-vegetables", Name: "Fruits & Vegetables", Image: "🥬", Subcategories: []string{"Fresh Fruits", "Fresh Vegetables", "Exotic Fruits", "Herbs & Seasonings"}},
	{ID: "dairy-bread", Name: "Dairy & Bread", Image: "🥛", Subcategories: []string{"Milk", "Curd & Yogurt", "Paneer & Cheese", "Bread & Bakery", "Butter & Cream"}},
	{ID: "meat-fish", Name: "Meat & Fish", Image: "🍖", Subcategories: []string{"Chicken", "Mutton", "Fish & Seafood", "Eggs", "Ready to Cook"}},
	{ID: "snacks", Name: "Snacks & Munchies", Image: "🍿", Subcategories: []string{"Chips & Crisps", "Namkeen", "Biscuits", "Chocolates", "Sweets"}},
	{ID: "beverages", Name: "Beverages", Image: "🥤", Subcategories: []string{"Soft Drinks", "Juices", "Tea & Coffee", "Energy Drinks", "Water"}},
	{ID: "instant-food", Name: "Instant Food", Image: "🍜", Subcategories: []string{"Noodles", "Pasta", "Soup", "Ready to Eat", "Frozen Food"}},
	{ID: "rice-dal", Name: "Rice & Dal", Image: "🍚", Subcategories: []string{"Rice", "Dal & Pulses", "Flour & Atta", "Organic Grains"}},
	{ID: "masala-oil", Name: "Masala & Oil", Image: "🫒", Subcategories: []string{"Cooking Oil", "Spices", "Salt & Sugar", "Pickles & Chutneys"}},
	{ID: "breakfast", Name: "Breakfast", Image: "🥣", Subcategories: []string{"Cereals", "Oats", "Spreads", "Honey & Syrups"}},
	{ID: "ice-cream", Name: "Ice Cream & Frozen", Image: "🍦", Subcategories: []string{"Ice Cream", "Frozen Desserts", "Frozen Snacks", "Frozen Vegetables"}},
	{ID: "personal-care", Name: "Personal Care", Image: "🧴", Subcategories: []string{"Skin Care", "Hair Care", "Oral Care", "Body Care"}},
	{ID: "home-care", Name: "Home Care", Image: "🧹", Subcategories: []string{"Cleaning Supplies", "Detergents", "Air Fresheners", "Kitchen Supplies"}},
}

var groceryProducts = []models.Product{
	{ID: "p1", Name: "Fresh Bananas", Description: "Ripe yellow bananas, rich in potassium", Price: 45, Image: "🍌", IsVeg: true, Category: "fruits-vegetables", Subcategory: "Fresh Fruits", Weight: "1 dozen", InStock: true},
	{ID: "p2", Name: "Red Apples", Description: "Crisp and sweet red apples", Price: 180, OriginalPrice: 220, Image: "🍎", IsVeg: true, Category: "fruits-vegetables", Subcategory: "Fresh Fruits", Weight: "1 kg", InStock: true},
	{ID: "p3", Name: "Fresh Tomatoes", Description: "Farm fresh red tomatoes", Price: 40, Image: "🍅", IsVeg: true, Category: "fruits-vegetables", Subcategory: "Fresh Vegetables", Weight: "500 g", InStock: true},
	{ID: "p4", Name: "Onions", Description: "Fresh red onions", Price: 35, Image: "🧅", IsVeg: true, Category: "fruits-vegetables", Subcategory: "Fresh Vegetables", Weight: "1 kg", InStock: true},
	{ID: "p5", Name: "Aavin Full Cream Milk", Description: "Fresh full cream milk", Price: 28, Image: "🥛", IsVeg: true, Category: "dairy-bread", Subcategory: "Milk", Weight: "500 ml", InStock: true},
	{ID: "p6", Name: "Fresh Paneer", Description: "Soft cottage cheese", Price: 95, Image: "🧀", IsVeg: true, Category: "dairy-bread", Subcategory: "Paneer & Cheese", Weight: "200 g", InStock: true},
	{ID: "p7", Name: "Curd", Description: "Fresh set curd", Price: 45, Image: "🥛", IsVeg: true, Category: "dairy-bread", Subcategory: "Curd & Yogurt", Weight: "400 g", InStock: true},
	{ID: "p8", Name: "Fresh Chicken", Description: "Farm fresh chicken, cleaned", Price: 220, Image: "🍗", IsVeg: false, Category: "meat-fish", Subcategory: "Chicken", Weight: "500 g", InStock: true},
	{ID: "p9", Name: "Mutton", Description: "Fresh goat meat", Price: 650, Image: "🥩", IsVeg: false, Category: "meat-fish", Subcategory: "Mutton", Weight: "500 g", InStock: true},
	{ID: "p10", Name: "Eggs", Description: "Farm fresh eggs", Price: 75, Image: "🥚", IsVeg: false, Category: "meat-fish", Subcategory: "Eggs", Weight: "12 pcs", InStock: true},
	{ID: "p11", Name: "Fish Fillet", Description: "Boneless fish fillet", Price: 350, Image: "🐟", IsVeg: false, Category: "meat-fish", Subcategory: "Fish & Seafood", Weight: "500 g", InStock: true},
	{ID: "p12", Name: "Lays Classic", Description: "Classic salted chips", Price: 20, Image: "🥔", IsVeg: true, Category: "snacks", Subcategory: "Chips & Crisps", Weight: "52 g", InStock: true},
	{ID: "p13", Name: "Dark Chocolate", Description: "Rich dark chocolate bar", Price: 110, Image: "🍫", IsVeg: true, Category: "snacks", Subcategory: "Chocolates", Weight: "100 g", InStock: true},
	{ID: "p14", Name: "Orange Juice", Description: "No added sugar orange juice", Price: 120, Image: "🍊", IsVeg: true, Category: "beverages", Subcategory: "Juices", Weight: "1 L", InStock: true},
	{ID: "p15", Name: "Filter Coffee Powder", Description: "South Indian filter coffee blend", Price: 160, Image: "☕", IsVeg: true, Category: "beverages", Subcategory: "Tea & Coffee", Weight: "250 g", InStock: true},
	{ID: "p16", Name: "Instant Noodles", Description: "Masala instant noodles", Price: 15, Image: "🍜", IsVeg: true, Category: "instant-food", Subcategory: "Noodles", Weight: "70 g", InStock: true},
	{ID: "p17", Name: "Basmati Rice", Description: "Premium long grain basmati", Price: 320, OriginalPrice: 380, Image: "🍚", IsVeg: true, Category: "rice-dal", Subcategory: "Rice", Weight: "5 kg", InStock: true},
	{ID: "p18", Name: "Toor Dal", Description: "Unpolished toor dal", Price: 140, Image: "🫘", IsVeg: true, Category: "rice-dal", Subcategory: "Dal & Pulses", Weight: "1 kg", InStock: true},
	{ID: "p19", Name: "Sunflower Oil", Description: "Refined sunflower oil", Price: 145, Image: "🫒", IsVeg: true, Category: "masala-oil", Subcategory: "Cooking Oil", Weight: "1 L", InStock: true},
	{ID: "p20", Name: "Vanilla Ice Cream", Description: "Classic vanilla tub", Price: 250, Image: "🍦", IsVeg: true, Category: "ice-cream", Subcategory: "Ice Cream", Weight: "700 ml", InStock: true},
	{ID: "p21", Name: "Oats", Description: "Rolled oats, no added sugar", Price: 185, Image: "🥣", IsVeg: true, Category: "breakfast", Subcategory: "Oats", Weight: "1 kg", InStock: true},
	{ID: "p22", Name: "Dish Wash Liquid", Description: "Lemon dish wash gel", Price: 99, Image: "🧽", IsVeg: true, Category: "home-care", Subcategory: "Cleaning Supplies", Weight: "500 ml", InStock: false},
}

var dineoutNames = struct {
	veg, nonVeg []string
}{
	veg: []string{
		"The Green Table", "Sattvik Dining", "Pure Bliss Restaurant", "Garden Cafe",
	},
	nonVeg: []string{
		"The Grand Kitchen", "Spice Route", "Kebab Corner", "Grilled & Thrilled",
	},
}

var dineoutCuisines = []string{
	"North Indian", "South Indian", "Chinese", "Continental", "Multi-Cuisine",
	"Mughlai", "Coastal", "Pan-Asian", "Italian", "BBQ & Grills",
}

var dineoutFeatures = []string{
	"Rooftop Seating", "Live Music", "Private Dining", "Family Friendly",
	"Romantic Ambience", "Outdoor Seating", "Bar Available", "Valet Parking",
	"Air Conditioned", "WiFi Available",
}

func generateDineout() []models.DineoutRestaurant {
	rng := rand.New(rand.NewSource(dataSeed + 1))

	var restaurants []models.DineoutRestaurant

	id := 1

	for areaIndex, area := range areas {
		for i := range 2 {
			veg := (areaIndex+i)%2 == 0

			name := dineoutNames.nonVeg[(areaIndex+i)%len(dineoutNames.nonVeg)]
			if veg {
				name = dineoutNames.veg[(areaIndex+i)%len(dineoutNames.veg)]
			}

			feats := make([]string, 0, 3)
			for f := 0; f < 3; f++ {
				feats = append(feats, dineoutFeatures[(areaIndex+i+f*3)%len(dineoutFeatures)])
			}

			restaurants = append(restaurants, models.DineoutRestaurant{
				ID:           fmt.Sprintf("dine-%d", id),
				Name:         fmt.Sprintf("%s - %s", name, area.Name),
				Image:        restaurantImages[(areaIndex+i)%len(restaurantImages)],
				Cuisine:      dineoutCuisines[(areaIndex+i)%len(dineoutCuisines)],
				DiningRating: 4.0 + rng.Float64()*0.9,
				PriceRange:   pick(rng, []string{"₹800", "₹1200", "₹1500"}) + " for two",
				IsVeg:        veg,
				IsPureVeg:    veg,
				Offer:        pick(rng, []string{"Flat 25% off on total bill", "Complimentary dessert", "15% off on walk-in"}),
				Area:         area.ID,
				Address:      fmt.Sprintf("%d, Main Road, %s", 10+rng.Intn(90), area.Name),
				Timing:       "12:00 PM - 11:00 PM",
				Features:     feats,
			})
			id++
		}
	}

	return restaurants
}
