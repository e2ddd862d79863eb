package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/store"
)

// ProductCatalog is what the cart service needs from the catalog.
type ProductCatalog interface {
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
}

// CartService resolves skus against the catalog and applies cart mutations
// through the store.
type CartService struct {
	catalog         ProductCatalog
	carts           store.CartStore
	defaultCurrency string
	log             zerolog.Logger
}

func NewCartService(catalog ProductCatalog, carts store.CartStore, defaultCurrency string, log zerolog.Logger) *CartService {
	return &CartService{
		catalog:         catalog,
		carts:           carts,
		defaultCurrency: defaultCurrency,
		log:             log,
	}
}

func (s *CartService) CreateCart(_ context.Context) (*domain.Cart, error) {
	cart, err := s.carts.Create(s.defaultCurrency)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("cart_id", cart.ID).Msg("cart created")
	return cart, nil
}

func (s *CartService) GetCart(_ context.Context, cartID string) (*domain.Cart, error) {
	return s.carts.Get(cartID)
}

// AddItem merges qty of the sku into the cart, capturing the product's
// current catalog price on first add.
func (s *CartService) AddItem(ctx context.Context, cartID, sku string, qty int) (*domain.Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.catalog.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.AddItem(cartID, *p, qty)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("cart_id", cartID).Str("sku", sku).Int("qty", qty).Msg("item added")
	return cart, nil
}

// UpdateQuantity overwrites the line quantity; zero removes the line.
func (s *CartService) UpdateQuantity(_ context.Context, cartID, sku string, qty int) (*domain.Cart, error) {
	if qty < 0 {
		return nil, ErrInvalidQuantity
	}
	return s.carts.UpdateQuantity(cartID, sku, qty)
}

func (s *CartService) RemoveItem(_ context.Context, cartID, sku string) (*domain.Cart, error) {
	return s.carts.RemoveItem(cartID, sku)
}

func (s *CartService) ClearCart(_ context.Context, cartID string) (*domain.Cart, error) {
	return s.carts.Clear(cartID)
}
