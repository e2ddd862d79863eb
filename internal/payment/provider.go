package payment

import (
	"context"
	"errors"
)

// StatusSucceeded is the provider status required before an order may be
// confirmed.
const StatusSucceeded = "succeeded"

// ErrProviderUnavailable wraps any failed or timed-out provider call. The
// failure is transient as far as cart/order state is concerned: nothing
// transitions.
var ErrProviderUnavailable = errors.New("payment provider unavailable")

// Intent is the provider-side representation of an in-progress payment
// capture attempt.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountMinor  int64
	Currency     string
}

// Succeeded reports whether the capture went through.
func (i *Intent) Succeeded() bool {
	return i.Status == StatusSucceeded
}

// Provider creates and inspects payment intents. Calls may be slow and may
// fail; they are never retried automatically.
type Provider interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}
