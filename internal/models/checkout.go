package models

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Address   string `json:"address"`
	IsDefault bool   `json:"is_default"`
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFlat       CouponType = "flat"
)

// Coupon discounts are whole rupees for flat coupons and percent points for
// percentage coupons. MinOrder is informational; it is not enforced.
type Coupon struct {
	Code        string     `json:"code"`
	Type        CouponType `json:"type"`
	Discount    int        `json:"discount"`
	MinOrder    int        `json:"min_order"`
	Description string     `json:"description"`
}

type CheckoutState string

const (
	CheckoutStateIdle       CheckoutState = "idle"
	CheckoutStateConfirming CheckoutState = "confirming"
	CheckoutStateVerifying  CheckoutState = "verifying"
	CheckoutStateProcessing CheckoutState = "processing"
	CheckoutStateCompleted  CheckoutState = "completed"
)

type NotificationSeverity string

const (
	SeverityInfo  NotificationSeverity = "info"
	SeverityError NotificationSeverity = "error"
)

// Notification is a human-readable status event for the toast sink.
type Notification struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Severity    NotificationSeverity `json:"severity"`
}

type OrderLine struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"line_total"`
	IsVeg     bool   `json:"is_veg"`
}

// Order is the session-lifetime record of a completed checkout. Held in
// memory only.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	Kind            CartKind    `json:"kind"`
	SourceName      string      `json:"source_name,omitempty"`
	Lines           []OrderLine `json:"lines"`
	Bill            Bill        `json:"bill"`
	Coupon          *Coupon     `json:"coupon,omitempty"`
	Discount        int         `json:"discount"`
	Payable         int         `json:"payable"`
	AddressID       string      `json:"address_id"`
	PaymentMethodID string      `json:"payment_method_id"`
	PlacedAt        time.Time   `json:"placed_at"`
}

// CheckoutView is what the checkout page renders: machine state plus the
// bill with any coupon applied.
type CheckoutView struct {
	Kind            CartKind      `json:"kind"`
	State           CheckoutState `json:"state"`
	Bill            Bill          `json:"bill"`
	Coupon          *Coupon       `json:"coupon,omitempty"`
	Discount        int           `json:"discount"`
	FinalTotal      int           `json:"final_total"`
	AddressID       string        `json:"address_id,omitempty"`
	PaymentMethodID string        `json:"payment_method_id,omitempty"`
}

type CheckoutOptions struct {
	Addresses      []Address       `json:"addresses"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	Coupons        []Coupon        `json:"coupons"`
}

type SelectAddressRequest struct {
	AddressID string `json:"address_id" validate:"required"`
}

type SelectPaymentRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type ConfirmRequest struct {
	Code string `json:"code" validate:"required"`
}

type SetLocationRequest struct {
	AreaID string `json:"area_id"`
}
