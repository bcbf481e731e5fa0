package domain

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Category is a top-level product grouping (incense, perfume).
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Product represents a catalog item. OriginalPrice is non-nil only when the
// product is discounted; Rating is the average customer rating out of 5.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Rating        float64  `json:"rating"`
	InStock       bool     `json:"inStock"`
}

// CatalogRepository defines the interface for catalog data access
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
}
