package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/payment"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/store"
)

var minorUnits = decimal.NewFromInt(100)

// CheckoutService turns carts into orders. Two flows exist: direct placement
// (PLACED) and the two-step payment-intent flow (CONFIRMED). Either way the
// cart is removed the instant the order exists; a cart id is single-use for
// checkout.
type CheckoutService struct {
	carts              store.CartStore
	orders             store.OrderStore
	provider           payment.Provider
	settlementCurrency string
	log                zerolog.Logger
}

func NewCheckoutService(carts store.CartStore, orders store.OrderStore, provider payment.Provider, settlementCurrency string, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{
		carts:              carts,
		orders:             orders,
		provider:           provider,
		settlementCurrency: settlementCurrency,
		log:                log,
	}
}

// PlaceOrder finalizes the cart without payment capture.
func (s *CheckoutService) PlaceOrder(_ context.Context, cartID string) (*domain.Order, error) {
	cart, err := s.carts.TakeForOrder(cartID)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Create(orderFromCart(cart, domain.OrderStatusPlaced, ""))
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("cart_id", cartID).Str("order_id", order.ID).Msg("order placed")
	return order, nil
}

// CreatePaymentIntent asks the provider for an intent covering the cart total
// in minor units of the settlement currency. The cart itself is untouched.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, cartID string) (*payment.Intent, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, store.ErrEmptyCart
	}

	amount := cart.Total.Mul(minorUnits).IntPart()
	intent, err := s.provider.CreateIntent(ctx, amount, s.settlementCurrency)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("cart_id", cartID).Str("payment_intent_id", intent.ID).Int64("amount", amount).Msg("payment intent created")
	return intent, nil
}

// ConfirmOrder finalizes the cart once its payment intent has succeeded.
func (s *CheckoutService) ConfirmOrder(ctx context.Context, cartID, intentID string) (*domain.Order, error) {
	if _, err := s.carts.Get(cartID); err != nil {
		return nil, err
	}

	intent, err := s.provider.GetIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if !intent.Succeeded() {
		return nil, ErrPaymentNotSucceeded
	}

	cart, err := s.carts.TakeForOrder(cartID)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Create(orderFromCart(cart, domain.OrderStatusConfirmed, intent.ID))
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("cart_id", cartID).Str("order_id", order.ID).Str("payment_intent_id", intent.ID).Msg("order confirmed")
	return order, nil
}

// GetOrder returns a finalized order snapshot.
func (s *CheckoutService) GetOrder(_ context.Context, orderID string) (*domain.Order, error) {
	return s.orders.Get(orderID)
}

func orderFromCart(cart *domain.Cart, status domain.OrderStatus, intentID string) domain.Order {
	return domain.Order{
		Status:          status,
		Items:           cart.Items,
		Total:           cart.Total,
		Currency:        cart.Currency,
		PaymentIntentID: intentID,
	}
}
