package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/payment"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/store"
)

// fakeProvider returns a configurable intent status, mirroring how the tests
// would drive a real provider into each branch.
type fakeProvider struct {
	status     string
	err        error
	lastAmount int64
	lastCurr   string
}

func (f *fakeProvider) CreateIntent(_ context.Context, amountMinor int64, currency string) (*payment.Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastAmount = amountMinor
	f.lastCurr = currency
	return &payment.Intent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		Status:       "requires_payment_method",
		AmountMinor:  amountMinor,
		Currency:     currency,
	}, nil
}

func (f *fakeProvider) GetIntent(_ context.Context, id string) (*payment.Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Intent{
		ID:          id,
		Status:      f.status,
		AmountMinor: f.lastAmount,
		Currency:    f.lastCurr,
	}, nil
}

type checkoutFixture struct {
	carts    *store.MemoryCartStore
	orders   *store.MemoryOrderStore
	provider *fakeProvider
	svc      *CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		carts:    store.NewMemoryCartStore(),
		orders:   store.NewMemoryOrderStore(),
		provider: &fakeProvider{status: payment.StatusSucceeded},
	}
	f.svc = NewCheckoutService(f.carts, f.orders, f.provider, "aed", zerolog.Nop())
	return f
}

func (f *checkoutFixture) cartWithMilk(t *testing.T, qty int) *domain.Cart {
	t.Helper()
	cart, err := f.carts.Create("AED")
	require.NoError(t, err)
	cart, err = f.carts.AddItem(cart.ID, domain.Product{
		SKU:      "1001",
		Name:     "Fresh Milk 1L",
		Brand:    "DairyCo",
		Price:    decimal.RequireFromString("6.50"),
		Currency: "AED",
	}, qty)
	require.NoError(t, err)
	return cart
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	f := newCheckoutFixture()
	cart := f.cartWithMilk(t, 2)

	order, err := f.svc.PlaceOrder(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	assert.Empty(t, order.PaymentIntentID)
	assert.True(t, order.Total.Equal(cart.Total))
	assert.Equal(t, cart.Items, order.Items)

	// Cart is gone, order is retrievable with identical contents.
	_, err = f.carts.Get(cart.ID)
	assert.ErrorIs(t, err, store.ErrCartNotFound)

	got, err := f.svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Items, got.Items)
	assert.True(t, got.Total.Equal(order.Total))
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	cart, err := f.carts.Create("AED")
	require.NoError(t, err)

	_, err = f.svc.PlaceOrder(context.Background(), cart.ID)
	assert.ErrorIs(t, err, store.ErrEmptyCart)
}

func TestCheckoutService_PlaceOrder_UnknownCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.PlaceOrder(context.Background(), "c_missing")
	assert.ErrorIs(t, err, store.ErrCartNotFound)
}

func TestCheckoutService_CreatePaymentIntent(t *testing.T) {
	f := newCheckoutFixture()
	cart := f.cartWithMilk(t, 2) // total 13.00

	intent, err := f.svc.CreatePaymentIntent(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Equal(t, "pi_test_1", intent.ID)
	assert.NotEmpty(t, intent.ClientSecret)
	assert.Equal(t, int64(1300), f.provider.lastAmount)
	assert.Equal(t, "aed", f.provider.lastCurr)

	// Creating an intent does not mutate the cart.
	got, err := f.carts.Get(cart.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestCheckoutService_CreatePaymentIntent_EmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	cart, err := f.carts.Create("AED")
	require.NoError(t, err)

	_, err = f.svc.CreatePaymentIntent(context.Background(), cart.ID)
	assert.ErrorIs(t, err, store.ErrEmptyCart)
}

func TestCheckoutService_CreatePaymentIntent_ProviderDown(t *testing.T) {
	f := newCheckoutFixture()
	f.provider.err = payment.ErrProviderUnavailable
	cart := f.cartWithMilk(t, 1)

	_, err := f.svc.CreatePaymentIntent(context.Background(), cart.ID)
	assert.ErrorIs(t, err, payment.ErrProviderUnavailable)

	// Transient failure: the cart is untouched.
	_, err = f.carts.Get(cart.ID)
	require.NoError(t, err)
}

func TestCheckoutService_ConfirmOrder(t *testing.T) {
	f := newCheckoutFixture()
	cart := f.cartWithMilk(t, 3)

	order, err := f.svc.ConfirmOrder(context.Background(), cart.ID, "pi_test_1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "pi_test_1", order.PaymentIntentID)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("19.50")))

	_, err = f.carts.Get(cart.ID)
	assert.ErrorIs(t, err, store.ErrCartNotFound)
}

func TestCheckoutService_ConfirmOrder_NotSucceeded(t *testing.T) {
	f := newCheckoutFixture()
	f.provider.status = "requires_payment_method"
	cart := f.cartWithMilk(t, 1)

	_, err := f.svc.ConfirmOrder(context.Background(), cart.ID, "pi_test_1")
	assert.ErrorIs(t, err, ErrPaymentNotSucceeded)

	// No state transition on a refused confirmation.
	_, err = f.carts.Get(cart.ID)
	require.NoError(t, err)
}

func TestCheckoutService_ConfirmOrder_UnknownCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.ConfirmOrder(context.Background(), "c_missing", "pi_test_1")
	assert.ErrorIs(t, err, store.ErrCartNotFound)
}

func TestCheckoutService_GetOrder_NotFound(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.GetOrder(context.Background(), "o_missing")
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}
