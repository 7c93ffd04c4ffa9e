package service

import (
	"context"

	"github.com/foooood/storefront/internal/checkout"
	"github.com/foooood/storefront/internal/errors"
	"github.com/foooood/storefront/internal/metrics"
	"github.com/foooood/storefront/internal/models"
	"github.com/foooood/storefront/internal/stores"
	"github.com/google/uuid"
)

// The demo address book and payment method list are fixed, like the rest of
// the mock data.
var addresses = []models.Address{
	{ID: "1", Label: "Home", Address: "123, Cheran Maanagar, Coimbatore - 641035", IsDefault: true},
	{ID: "2", Label: "Office", Address: "456, IT Park, Peelamedu, Coimbatore - 641004", IsDefault: false},
}

var paymentMethods = []models.PaymentMethod{
	{ID: "upi", Name: "UPI", Description: "GPay, PhonePe, Paytm"},
	{ID: "card", Name: "Credit/Debit Card", Description: "Visa, Mastercard, Rupay"},
	{ID: "wallet", Name: "Foooood Money", Description: "Balance: ₹250"},
	{ID: "netbanking", Name: "Netbanking", Description: "All major banks"},
}

// CheckoutService owns one checkout flow per cart kind plus the session's
// order history.
type CheckoutService struct {
	flows     map[models.CartKind]*checkout.Flow
	orders    *stores.OrderStore
	navigator *checkout.RouteRecorder
}

func NewCheckoutService(food *stores.FoodCart, grocery *stores.GroceryCart, orders *stores.OrderStore, opts checkout.FlowOptions) *CheckoutService {

	navigator := checkout.NewRouteRecorder()
	if opts.Navigator == nil {
		opts.Navigator = navigator
	}

	return &CheckoutService{
		flows: map[models.CartKind]*checkout.Flow{
			models.CartKindFood:    checkout.NewFlow(models.CartKindFood, checkout.NewFoodCartBackend(food), orders, opts),
			models.CartKindGrocery: checkout.NewFlow(models.CartKindGrocery, checkout.NewGroceryCartBackend(grocery), orders, opts),
		},
		orders:    orders,
		navigator: navigator,
	}
}

func (s *CheckoutService) flow(kind models.CartKind) (*checkout.Flow, error) {
	flow, ok := s.flows[kind]
	if !ok {
		return nil, errors.BadRequestError("Unknown cart kind")
	}

	return flow, nil
}

func (s *CheckoutService) Enter(ctx context.Context, kind models.CartKind) (models.CheckoutView, error) {
	flow, err := s.flow(kind)
	if err != nil {
		return models.CheckoutView{}, err
	}

	if err := flow.Enter(ctx); err != nil {
		return models.CheckoutView{}, err
	}

	return flow.View(), nil
}

func (s *CheckoutService) View(kind models.CartKind) (models.CheckoutView, error) {
	flow, err := s.flow(kind)
	if err != nil {
		return models.CheckoutView{}, err
	}

	return flow.View(), nil
}

func (s *CheckoutService) Options(kind models.CartKind) (models.CheckoutOptions, error) {
	if _, err := s.flow(kind); err != nil {
		return models.CheckoutOptions{}, err
	}

	return models.CheckoutOptions{
		Addresses:      addresses,
		PaymentMethods: paymentMethods,
		Coupons:        checkout.Coupons(),
	}, nil
}

func (s *CheckoutService) SelectAddress(ctx context.Context, kind models.CartKind, addressID string) (models.CheckoutView, error) {
	flow, err := s.flow(kind)
	if err != nil {
		return models.CheckoutView{}, err
	}

	if !addressExists(addressID) {
		return models.CheckoutView{}, errors.NotFoundError("Unknown delivery address")
	}

	flow.SelectAddress(addressID)

	return flow.View(), nil
}

func (s *CheckoutService) SelectPayment(ctx context.Context, kind models.CartKind, paymentMethodID string) (models.CheckoutView, error) {
	flow, err := s.flow(kind)
	if err != nil {
		return models.CheckoutView{}, err
	}

	if !paymentMethodExists(paymentMethodID) {
		return models.CheckoutView{}, errors.NotFoundError("Unknown payment method")
	}

	flow.SelectPayment(paymentMethodID)

	return flow.View(), nil
}

func (s *CheckoutService) ApplyCoupon(ctx context.Context, kind models.CartKind, code string) (models.CheckoutView, error) {
	flow, err := s.flow(kind)
	if err != nil {
		return models.CheckoutView{}, err
	}

	_, err = flow.ApplyCoupon(ctx, code)
	metrics.ObserveCouponApplication(err == nil)

	if err != nil {
		return models.CheckoutView{}, err
	}

	return flow.View(), nil
}

func (s *CheckoutService) RemoveCoupon(ctx context.Context, kind models.CartKind) (models.CheckoutView, error) {
	flow, err := s.flow(kind)
	if err != nil {
		return models.CheckoutView{}, err
	}

	flow.RemoveCoupon(ctx)

	return flow.View(), nil
}

func (s *CheckoutService) Submit(ctx context.Context, kind models.CartKind) (models.CheckoutView, error) {
	flow, err := s.flow(kind)
	if err != nil {
		return models.CheckoutView{}, err
	}

	if err := flow.Submit(ctx); err != nil {
		return models.CheckoutView{}, err
	}

	return flow.View(), nil
}

func (s *CheckoutService) Confirm(ctx context.Context, kind models.CartKind, code string) (*models.Order, error) {
	flow, err := s.flow(kind)
	if err != nil {
		return nil, err
	}

	order, err := flow.Confirm(ctx, code)
	if err != nil {
		return nil, err
	}

	metrics.ObserveOrderPlaced(string(kind))

	return order, nil
}

func (s *CheckoutService) Cancel(ctx context.Context, kind models.CartKind) (models.CheckoutView, error) {
	flow, err := s.flow(kind)
	if err != nil {
		return models.CheckoutView{}, err
	}

	flow.Cancel()

	return flow.View(), nil
}

// LastRoute exposes the navigation sink's latest signal to the API layer.
func (s *CheckoutService) LastRoute() string {
	return s.navigator.LastRoute()
}

func (s *CheckoutService) ListOrders() []models.Order {
	return s.orders.List()
}

func (s *CheckoutService) GetOrder(id string) (*models.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.BadRequestError("Invalid order id")
	}

	order, ok := s.orders.Get(orderID)
	if !ok {
		return nil, errors.NotFoundError("Order not found")
	}

	return order, nil
}

func addressExists(id string) bool {
	for _, addr := range addresses {
		if addr.ID == id {
			return true
		}
	}

	return false
}

func paymentMethodExists(id string) bool {
	for _, method := range paymentMethods {
		if method.ID == id {
			return true
		}
	}

	return false
}
