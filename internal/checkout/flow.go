package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/foooood/storefront/internal/errors"
	"github.com/foooood/storefront/internal/models"
	"github.com/foooood/storefront/internal/stores"
	"github.com/google/uuid"
)

const verificationCodeLength = 6

// Flow drives one checkout session for a cart:
//
//	Idle -> Confirming -> Verifying -> Processing -> Completed
//
// with Confirming -> Idle on cancel. Verifying and Processing are timed
// stages that simulate the payment backend and always succeed. While either
// is in flight a second confirmation is rejected, so two settlements can
// never race.
type Flow struct {
	mu    sync.Mutex
	state models.CheckoutState

	kind   models.CartKind
	cart   Cart
	orders *stores.OrderStore

	coupon    *models.Coupon
	addressID string
	paymentID string

	clock     Clock
	notifier  Notifier
	navigator Navigator

	verifyDelay  time.Duration
	processDelay time.Duration
}

type FlowOptions struct {
	Clock        Clock
	Notifier     Notifier
	Navigator    Navigator
	VerifyDelay  time.Duration
	ProcessDelay time.Duration
}

func NewFlow(kind models.CartKind, cart Cart, orders *stores.OrderStore, opts FlowOptions) *Flow {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}

	if opts.Notifier == nil {
		opts.Notifier = NewLogNotifier()
	}

	if opts.Navigator == nil {
		opts.Navigator = NewRouteRecorder()
	}

	return &Flow{
		state:        models.CheckoutStateIdle,
		kind:         kind,
		cart:         cart,
		orders:       orders,
		clock:        opts.Clock,
		notifier:     opts.Notifier,
		navigator:    opts.Navigator,
		verifyDelay:  opts.VerifyDelay,
		processDelay: opts.ProcessDelay,
	}
}

func (f *Flow) State() models.CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Enter is the checkout page entry guard. An empty cart redirects back to
// the cart view; a finished session starts fresh.
func (f *Flow) Enter(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cart.Empty() {
		f.navigator.NavigateTo(ctx, RouteCart)

		return errors.EmptyCartError("Cart is empty")
	}

	if f.state == models.CheckoutStateCompleted {
		f.resetLocked()
	}

	return nil
}

func (f *Flow) resetLocked() {
	f.state = models.CheckoutStateIdle
	f.coupon = nil
	f.addressID = ""
	f.paymentID = ""
}

func (f *Flow) SelectAddress(addressID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.addressID = addressID
}

func (f *Flow) SelectPayment(paymentMethodID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.paymentID = paymentMethodID
}

// ApplyCoupon matches the code against the known set. A miss reports
// InvalidCoupon and leaves any previously applied coupon untouched.
func (f *Flow) ApplyCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	coupon, ok := FindCoupon(code)
	if !ok {
		f.notifier.Notify(ctx, models.Notification{
			Title:       "Invalid Coupon",
			Description: "This coupon code is not valid",
			Severity:    models.SeverityError,
		})

		return nil, errors.InvalidCouponError("This coupon code is not valid")
	}

	f.mu.Lock()
	f.coupon = coupon
	f.mu.Unlock()

	f.notifier.Notify(ctx, models.Notification{
		Title:       "Coupon Applied!",
		Description: fmt.Sprintf("%s - %s", coupon.Code, coupon.Description),
		Severity:    models.SeverityInfo,
	})

	return coupon, nil
}

func (f *Flow) RemoveCoupon(ctx context.Context) {
	f.mu.Lock()
	f.coupon = nil
	f.mu.Unlock()

	f.notifier.Notify(ctx, models.Notification{
		Title:       "Coupon Removed",
		Description: "Coupon has been removed from your order",
		Severity:    models.SeverityInfo,
	})
}

func (f *Flow) Coupon() *models.Coupon {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.coupon
}

func (f *Flow) Discount() int {
	f.mu.Lock()
	coupon := f.coupon
	f.mu.Unlock()

	return CouponDiscount(coupon, f.cart.Bill().ItemTotal)
}

// FinalTotal is the payable amount: grand total minus discount, clamped at
// zero so an oversized flat coupon can never surface a negative bill.
func (f *Flow) FinalTotal() int {
	payable := f.rawPayable()
	if payable < 0 {
		return 0
	}

	return payable
}

func (f *Flow) rawPayable() int {
	f.mu.Lock()
	coupon := f.coupon
	f.mu.Unlock()

	bill := f.cart.Bill()

	return bill.GrandTotal - CouponDiscount(coupon, bill.ItemTotal)
}

func (f *Flow) View() models.CheckoutView {
	f.mu.Lock()
	state := f.state
	coupon := f.coupon
	addressID := f.addressID
	paymentID := f.paymentID
	f.mu.Unlock()

	bill := f.cart.Bill()
	discount := CouponDiscount(coupon, bill.ItemTotal)

	finalTotal := bill.GrandTotal - discount
	if finalTotal < 0 {
		finalTotal = 0
	}

	return models.CheckoutView{
		Kind:            f.kind,
		State:           state,
		Bill:            bill,
		Coupon:          coupon,
		Discount:        discount,
		FinalTotal:      finalTotal,
		AddressID:       addressID,
		PaymentMethodID: paymentID,
	}
}

// Submit moves Idle -> Confirming (opening the verification dialog) once
// the preconditions hold. Each missing precondition is reported as its own
// error and leaves the state untouched.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cart.Empty() {
		f.navigator.NavigateTo(ctx, RouteCart)

		return errors.EmptyCartError("Cart is empty")
	}

	switch f.state {
	case models.CheckoutStateVerifying, models.CheckoutStateProcessing:
		return errors.CheckoutInProgressError("Payment is already in progress")
	case models.CheckoutStateConfirming:
		return errors.CheckoutStateError("Checkout is already awaiting verification")
	case models.CheckoutStateCompleted:
		return errors.CheckoutStateError("Checkout already completed")
	}

	if f.addressID == "" {
		f.notifier.Notify(ctx, models.Notification{
			Title:       "Select Address",
			Description: "Please select a delivery address",
			Severity:    models.SeverityError,
		})

		return errors.MissingAddressError("Please select a delivery address")
	}

	if f.paymentID == "" {
		f.notifier.Notify(ctx, models.Notification{
			Title:       "Select Payment",
			Description: "Please select a payment method",
			Severity:    models.SeverityError,
		})

		return errors.MissingPaymentError("Please select a payment method")
	}

	bill := f.cart.Bill()
	if bill.GrandTotal-CouponDiscount(f.coupon, bill.ItemTotal) < 0 {
		return errors.NegativePayableError("Coupon discount exceeds the order total, remove the coupon to continue")
	}

	f.state = models.CheckoutStateConfirming

	return nil
}

// Cancel closes the verification dialog: Confirming -> Idle with no side
// effects. Any other state is left alone.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == models.CheckoutStateConfirming {
		f.state = models.CheckoutStateIdle
	}
}

// Confirm runs the verification code through the two timed stages and, on
// completion, clears the cart, records the order and signals the
// order-confirmation view.
func (f *Flow) Confirm(ctx context.Context, code string) (*models.Order, error) {
	f.mu.Lock()

	switch f.state {
	case models.CheckoutStateVerifying, models.CheckoutStateProcessing:
		f.mu.Unlock()

		return nil, errors.CheckoutInProgressError("Payment is already in progress")
	case models.CheckoutStateConfirming:
		// expected
	default:
		f.mu.Unlock()

		return nil, errors.CheckoutStateError("No confirmation is pending")
	}

	if len(code) != verificationCodeLength {
		f.mu.Unlock()
		f.notifier.Notify(ctx, models.Notification{
			Title:       "Invalid OTP",
			Description: "Please enter a 6-digit OTP",
			Severity:    models.SeverityError,
		})

		return nil, errors.InvalidCodeError("Please enter a 6-digit OTP")
	}

	f.state = models.CheckoutStateVerifying
	f.mu.Unlock()

	// Simulated verification latency; there is no real backend, so the
	// stage always succeeds.
	if err := f.clock.Sleep(ctx, f.verifyDelay); err != nil {
		f.revertToConfirming()

		return nil, errors.InternalError("Verification interrupted").WithError(err)
	}

	f.mu.Lock()
	f.state = models.CheckoutStateProcessing
	f.mu.Unlock()

	// Simulated payment settlement.
	if err := f.clock.Sleep(ctx, f.processDelay); err != nil {
		f.revertToConfirming()

		return nil, errors.InternalError("Payment processing interrupted").WithError(err)
	}

	f.mu.Lock()

	bill := f.cart.Bill()
	discount := CouponDiscount(f.coupon, bill.ItemTotal)

	payable := bill.GrandTotal - discount
	if payable < 0 {
		payable = 0
	}

	order := models.Order{
		ID:              uuid.New(),
		Kind:            f.kind,
		SourceName:      f.cart.SourceName(),
		Lines:           f.cart.OrderLines(),
		Bill:            bill,
		Coupon:          f.coupon,
		Discount:        discount,
		Payable:         payable,
		AddressID:       f.addressID,
		PaymentMethodID: f.paymentID,
		PlacedAt:        time.Now(),
	}

	f.cart.Clear()
	f.orders.Add(order)
	f.state = models.CheckoutStateCompleted
	f.mu.Unlock()

	description := "Your order has been confirmed"
	if f.kind == models.CartKindGrocery {
		description = "Your grocery order has been confirmed"
	}

	f.notifier.Notify(ctx, models.Notification{
		Title:       "Order Placed!",
		Description: description,
		Severity:    models.SeverityInfo,
	})
	f.navigator.NavigateTo(ctx, RouteOrderSuccess)

	return &order, nil
}

func (f *Flow) revertToConfirming() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == models.CheckoutStateVerifying || f.state == models.CheckoutStateProcessing {
		f.state = models.CheckoutStateConfirming
	}
}
