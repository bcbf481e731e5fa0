package memory

import (
	"context"

	"eastern-store/internal/domain"
)

// CatalogRepository serves the built-in demo catalog. The data set mirrors
// the storefront's launch assortment; demo mode runs entirely from it.
type CatalogRepository struct {
	categories []*domain.Category
	products   []*domain.Product
}

func price(v float64) *float64 { return &v }

// NewCatalogRepository creates a catalog repository seeded with the demo
// assortment.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		categories: []*domain.Category{
			{ID: "incense", Name: "البخور", Description: "بخور فاخر من أجود أنواع العود والعنبر والصندل"},
			{ID: "perfume", Name: "العطور", Description: "عطور شرقية أصلية من أفضل العلامات التجارية"},
		},
		products: []*domain.Product{
			{ID: "p-001", Name: "بخور العود الأصلي", Description: "عود طبيعي معتق من أجود المزارع", Category: "incense", Price: 300, OriginalPrice: price(350), Rating: 4.8, InStock: true},
			{ID: "p-002", Name: "عطر الياسمين الأبيض", Description: "عطر زهري ناعم يدوم طويلاً", Category: "perfume", Price: 150, Rating: 4.5, InStock: true},
			{ID: "p-003", Name: "بخور العنبر الملكي", Description: "مزيج العنبر الفاخر بلمسة شرقية", Category: "incense", Price: 100, Rating: 4.7, InStock: true},
			{ID: "p-004", Name: "عطر العود الملكي", Description: "خلاصة العود الكمبودي الفاخر", Category: "perfume", Price: 350, OriginalPrice: price(400), Rating: 4.9, InStock: true},
			{ID: "p-005", Name: "بخور الورد الجوري", Description: "ورد طائفي مجفف بعناية", Category: "incense", Price: 60, Rating: 4.3, InStock: true},
			{ID: "p-006", Name: "عطر المسك الأسود", Description: "مسك دافئ بقاعدة خشبية", Category: "perfume", Price: 220, Rating: 4.6, InStock: true},
			{ID: "p-007", Name: "بخور الصندل الهندي", Description: "صندل هندي نقي بطيء الاحتراق", Category: "incense", Price: 180, Rating: 4.4, InStock: false},
			{ID: "p-008", Name: "عطر الزعفران الذهبي", Description: "زعفران وهيل بلمسة جلدية", Category: "perfume", Price: 270, Rating: 4.2, InStock: true},
		},
	}
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, len(r.categories))
	for i, c := range r.categories {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

func (r *CatalogRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(r.products))
	for i, p := range r.products {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *CatalogRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	if _, err := r.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	out := make([]*domain.Product, 0)
	for _, p := range r.products {
		if p.Category == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *CatalogRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrProductNotFound
}
