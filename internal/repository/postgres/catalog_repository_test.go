package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"eastern-store/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectProductColumns = `SELECT id, name, description, category_id, price, original_price, rating, in_stock`

func TestCatalogRepository_ListCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).
			AddRow("incense", "البخور", "بخور فاخر").
			AddRow("perfume", "العطور", "عطور شرقية"))

	repo := NewCatalogRepository(db)
	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "incense", categories[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetCategory_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description`)).
		WithArgs("soap").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}))

	repo := NewCatalogRepository(db)
	_, err = repo.GetCategory(context.Background(), "soap")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetProduct(t *testing.T) {
	t.Run("with_discount", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(selectProductColumns)).
			WithArgs("p-001").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "category_id", "price", "original_price", "rating", "in_stock"}).
				AddRow("p-001", "بخور العود الأصلي", "عود طبيعي", "incense", 300.0, 350.0, 4.8, true))

		repo := NewCatalogRepository(db)
		product, err := repo.GetProduct(context.Background(), "p-001")
		require.NoError(t, err)
		assert.Equal(t, 300.0, product.Price)
		require.NotNil(t, product.OriginalPrice)
		assert.Equal(t, 350.0, *product.OriginalPrice)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without_discount", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(selectProductColumns)).
			WithArgs("p-002").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "category_id", "price", "original_price", "rating", "in_stock"}).
				AddRow("p-002", "عطر الياسمين الأبيض", "عطر زهري", "perfume", 150.0, nil, 4.5, true))

		repo := NewCatalogRepository(db)
		product, err := repo.GetProduct(context.Background(), "p-002")
		require.NoError(t, err)
		assert.Nil(t, product.OriginalPrice)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(selectProductColumns)).
			WithArgs("p-999").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "category_id", "price", "original_price", "rating", "in_stock"}))

		repo := NewCatalogRepository(db)
		_, err = repo.GetProduct(context.Background(), "p-999")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_ListByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description`)).
		WithArgs("incense").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).
			AddRow("incense", "البخور", "بخور فاخر"))

	mock.ExpectQuery(regexp.QuoteMeta(selectProductColumns)).
		WithArgs("incense").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "category_id", "price", "original_price", "rating", "in_stock"}).
			AddRow("p-001", "بخور العود الأصلي", "عود طبيعي", "incense", 300.0, 350.0, 4.8, true).
			AddRow("p-003", "بخور العنبر الملكي", "مزيج العنبر", "incense", 100.0, nil, 4.7, true))

	repo := NewCatalogRepository(db)
	products, err := repo.ListByCategory(context.Background(), "incense")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p-001", products[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_ListProducts_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectProductColumns)).
		WillReturnError(errors.New("database error"))

	repo := NewCatalogRepository(db)
	_, err = repo.ListProducts(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
