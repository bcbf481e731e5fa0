package service

import (
	"context"

	"eastern-store/internal/domain"
)

const (
	featuredCount    = 4
	bestSellerCount  = 3
	bestSellerRating = 4.7
)

type CatalogService struct {
	repo domain.CatalogRepository
}

func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Categories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogService) Products(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *CatalogService) Product(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// Featured returns the storefront's showcase picks: the first items of the
// catalog, capped at four.
func (s *CatalogService) Featured(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > featuredCount {
		products = products[:featuredCount]
	}
	return products, nil
}

// BestSellers returns up to three products rated 4.7 or higher, in catalog
// order.
func (s *CatalogService) BestSellers(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	best := make([]*domain.Product, 0, bestSellerCount)
	for _, p := range products {
		if p.Rating >= bestSellerRating {
			best = append(best, p)
			if len(best) == bestSellerCount {
				break
			}
		}
	}
	return best, nil
}
