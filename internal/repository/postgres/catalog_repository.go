package postgres

import (
	"context"
	"database/sql"

	"eastern-store/internal/domain"
)

// CatalogRepository implements domain.CatalogRepository for PostgreSQL
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new PostgreSQL catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListCategories retrieves all product categories
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, name, description
		FROM categories
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// GetCategory retrieves a category by ID
func (r *CatalogRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT id, name, description
		FROM categories
		WHERE id = $1
	`
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrCategoryNotFound
	}
	return category, err
}

// ListProducts retrieves the full catalog
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, name, description, category_id, price, original_price, rating, in_stock
		FROM products
		ORDER BY id
	`
	return r.queryProducts(ctx, query)
}

// ListByCategory retrieves products belonging to a category
func (r *CatalogRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	if _, err := r.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, description, category_id, price, original_price, rating, in_stock
		FROM products
		WHERE category_id = $1
		ORDER BY id
	`
	return r.queryProducts(ctx, query, categoryID)
}

// GetProduct retrieves a product by ID
func (r *CatalogRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, description, category_id, price, original_price, rating, in_stock
		FROM products
		WHERE id = $1
	`
	product := &domain.Product{}
	var originalPrice sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.Price,
		&originalPrice,
		&product.Rating,
		&product.InStock,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if originalPrice.Valid {
		product.OriginalPrice = &originalPrice.Float64
	}
	return product, nil
}

func (r *CatalogRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		var originalPrice sql.NullFloat64
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Category,
			&product.Price,
			&originalPrice,
			&product.Rating,
			&product.InStock,
		)
		if err != nil {
			return nil, err
		}
		if originalPrice.Valid {
			product.OriginalPrice = &originalPrice.Float64
		}
		products = append(products, product)
	}

	return products, rows.Err()
}
