package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// StripeProvider implements Provider against the Stripe payment-intent API.
// Calls run behind a circuit breaker with a bounded per-call timeout.
type StripeProvider struct {
	api     *client.API
	breaker *gobreaker.CircuitBreaker[*stripe.PaymentIntent]
	timeout time.Duration
}

func NewStripeProvider(secretKey string, timeout time.Duration) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)

	breaker := gobreaker.NewCircuitBreaker[*stripe.PaymentIntent](gobreaker.Settings{
		Name:    "stripe",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &StripeProvider{
		api:     api,
		breaker: breaker,
		timeout: timeout,
	}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	pi, err := p.breaker.Execute(func() (*stripe.PaymentIntent, error) {
		params := &stripe.PaymentIntentParams{
			Params:   stripe.Params{Context: ctx},
			Amount:   stripe.Int64(amountMinor),
			Currency: stripe.String(currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		return p.api.PaymentIntents.New(params)
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w: %s", ErrProviderUnavailable, err)
	}

	return fromStripeIntent(pi), nil
}

func (p *StripeProvider) GetIntent(ctx context.Context, id string) (*Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	pi, err := p.breaker.Execute(func() (*stripe.PaymentIntent, error) {
		params := &stripe.PaymentIntentParams{
			Params: stripe.Params{Context: ctx},
		}
		return p.api.PaymentIntents.Get(id, params)
	})
	if err != nil {
		return nil, fmt.Errorf("get payment intent %s: %w: %s", id, ErrProviderUnavailable, err)
	}

	return fromStripeIntent(pi), nil
}

func fromStripeIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
	}
}
