package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

func newProductRepo(t *testing.T) (*productRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &productRepository{db: db}, mock
}

func productRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "sku", "category", "stock_type", "price",
		"rental_rate_per_day", "rental_rate_per_week", "rental_rate_per_month",
		"created_by", "created_on", "updated_on", "deleted_on",
	}).AddRow(1, "Canon EOS R5", "CAM-001", "cameras", "rental", 120000.0, 500.0, 3000.0, 10000.0, 1, now, now, nil)
}

func TestProductRepositoryCreate(t *testing.T) {
	repo, mock := newProductRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO products`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on", "updated_on"}).AddRow(1, now, now))

		p := &domain.Product{Name: "Canon EOS R5", SKU: "CAM-001", StockType: domain.StockTypeRental}
		require.NoError(t, repo.Create(ctx, p))
		assert.Equal(t, int32(1), p.ID)
	})

	t.Run("DuplicateSKU", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO products`).
			WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "products_sku_unique"})

		err := repo.Create(ctx, &domain.Product{Name: "Canon EOS R5", SKU: "CAM-001"})
		require.Error(t, err)
		var de *apperr.DuplicateKeyError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "product", de.Entity)
		assert.Equal(t, "sku", de.Field)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryGetByID(t *testing.T) {
	repo, mock := newProductRepo(t)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`FROM products WHERE id = \$1 AND deleted_on IS NULL`).
			WithArgs(int32(1)).
			WillReturnRows(productRows(time.Now()))

		p, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "CAM-001", p.SKU)
		assert.Nil(t, p.DeletedOn)
	})

	// a soft-deleted row never comes back from the filtered query
	t.Run("SoftDeletedIsNotFound", func(t *testing.T) {
		mock.ExpectQuery(`FROM products WHERE id = \$1 AND deleted_on IS NULL`).
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 3)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositorySoftDelete(t *testing.T) {
	repo, mock := newProductRepo(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products SET deleted_on=now\(\)`).
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDelete(ctx, 1))
	})

	t.Run("AlreadyDeleted", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products SET deleted_on=now\(\)`).
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SoftDelete(ctx, 1), apperr.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryList(t *testing.T) {
	repo, mock := newProductRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WithArgs("cameras").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM products`).
		WithArgs("cameras", int32(20), int32(0)).
		WillReturnRows(productRows(time.Now()))

	products, total, err := repo.List(ctx, "cameras", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "CAM-001", products[0].SKU)
	assert.NoError(t, mock.ExpectationsWereMet())
}
