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

func newAssetRepo(t *testing.T) (*rentalAssetRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &rentalAssetRepository{db: db}, mock
}

func TestRentalAssetRepositoryCreate(t *testing.T) {
	repo, mock := newAssetRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO rentalassets`).
			WithArgs(int32(1), "A01", domain.AssetStatusAvailable, nil, "").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on", "updated_on"}).AddRow(7, now, now))

		a := &domain.RentalAsset{ProductID: 1, AssetCode: "A01", Status: domain.AssetStatusAvailable}
		require.NoError(t, repo.Create(ctx, a))
		assert.Equal(t, int32(7), a.ID)
	})

	// The same asset code under the same product violates the compound
	// index; the conflict is reported on asset_code.
	t.Run("DuplicateCodeSameProduct", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO rentalassets`).
			WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "rentalassets_code_product_unique"})

		err := repo.Create(ctx, &domain.RentalAsset{ProductID: 1, AssetCode: "A01", Status: domain.AssetStatusAvailable})
		require.Error(t, err)
		var de *apperr.DuplicateKeyError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "rentalAsset", de.Entity)
		assert.Equal(t, "asset_code", de.Field)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalAssetRepositoryUpdateStatus(t *testing.T) {
	repo, mock := newAssetRepo(t)
	ctx := context.Background()

	t.Run("WithRental", func(t *testing.T) {
		rentalID := int32(12)
		mock.ExpectExec(`UPDATE rentalassets SET status`).
			WithArgs(domain.AssetStatusRented, &rentalID, int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, 7, domain.AssetStatusRented, &rentalID))
	})

	t.Run("ClearRental", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rentalassets SET status`).
			WithArgs(domain.AssetStatusAvailable, nil, int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, 7, domain.AssetStatusAvailable, nil))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rentalassets SET status`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStatus(ctx, 99, domain.AssetStatusAvailable, nil), apperr.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalAssetRepositoryGetByID(t *testing.T) {
	repo, mock := newAssetRepo(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM rentalassets WHERE id`).
		WithArgs(int32(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "asset_code", "status", "current_rental_id", "notes", "created_on", "updated_on"}).
			AddRow(7, 1, "A01", "rented", 12, "", now, now))

	a, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, a.CurrentRentalID)
	assert.Equal(t, int32(12), *a.CurrentRentalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
