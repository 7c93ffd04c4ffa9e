package checkout

import (
	"strings"

	"github.com/foooood/storefront/internal/models"
)

// The known coupon set is fixed for the session. MinOrder is carried for
// display but not enforced on apply.
var knownCoupons = []models.Coupon{
	{Code: "NEW50", Type: models.CouponTypePercentage, Discount: 50, MinOrder: 0, Description: "50% off on your order"},
	{Code: "FLAT75", Type: models.CouponTypeFlat, Discount: 75, MinOrder: 0, Description: "Flat ₹75 off on your order"},
}

func Coupons() []models.Coupon {
	coupons := make([]models.Coupon, len(knownCoupons))
	copy(coupons, knownCoupons)

	return coupons
}

// FindCoupon matches the code case-insensitively against the known set.
func FindCoupon(code string) (*models.Coupon, bool) {
	for i := range knownCoupons {
		if strings.EqualFold(knownCoupons[i].Code, code) {
			coupon := knownCoupons[i]

			return &coupon, true
		}
	}

	return nil, false
}

// CouponDiscount computes the discount against the item total (not the
// grand total). Percentage discounts round half up; flat discounts are not
// clamped here.
func CouponDiscount(coupon *models.Coupon, itemTotal int) int {
	if coupon == nil {
		return 0
	}

	if coupon.Type == models.CouponTypePercentage {
		return (itemTotal*coupon.Discount + 50) / 100
	}

	return coupon.Discount
}
