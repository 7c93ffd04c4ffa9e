package stores

// Delivery fee tiers and tax rate, in whole rupees / percent points.
const (
	foodFreeDeliveryAt = 500
	foodReducedFeeAt   = 200
	foodReducedFee     = 25
	foodBaseFee        = 40

	groceryFreeDeliveryAt = 299
	groceryFlatFee        = 25

	taxRatePct = 5
)

// taxes is 5% of the item total, rounded half up. Integer arithmetic keeps
// the result deterministic.
func taxes(itemTotal int) int {
	return (itemTotal*taxRatePct + 50) / 100
}

func foodDeliveryFee(itemTotal int) int {
	if itemTotal >= foodFreeDeliveryAt {
		return 0
	}

	if itemTotal >= foodReducedFeeAt {
		return foodReducedFee
	}

	return foodBaseFee
}

func groceryDeliveryFee(itemTotal int) int {
	if itemTotal >= groceryFreeDeliveryAt {
		return 0
	}

	return groceryFlatFee
}
