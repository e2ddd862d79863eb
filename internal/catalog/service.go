package catalog

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
)

const searchCacheSize = 128

// ProductSource is what the service needs from the repository.
type ProductSource interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	Search(ctx context.Context, q string) ([]domain.Product, error)
}

// Service fronts the read-only catalog. Because products never change after
// seeding, search results are cached per normalized query.
type Service struct {
	repo  ProductSource
	cache *lru.Cache[string, []domain.Product]
}

func NewService(repo ProductSource) (*Service, error) {
	cache, err := lru.New[string, []domain.Product](searchCacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{repo: repo, cache: cache}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return s.repo.GetBySKU(ctx, sku)
}

func (s *Service) Search(ctx context.Context, q string) ([]domain.Product, error) {
	key := strings.ToLower(strings.TrimSpace(q))

	if hit, ok := s.cache.Get(key); ok {
		return hit, nil
	}

	results, err := s.repo.Search(ctx, key)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, results)
	return results, nil
}
