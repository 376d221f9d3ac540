package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

func TestRentalAssetService_Create(t *testing.T) {
	assetRepo := new(MockRentalAssetRepo)
	productRepo := new(MockProductRepo)
	logRepo := new(MockActivityLogRepo)
	svc := NewRentalAssetService(assetRepo, productRepo, logRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		productRepo.On("GetByID", ctx, int32(1)).
			Return(&domain.Product{ID: 1, SKU: "CAM-001", StockType: domain.StockTypeRental}, nil).Once()
		assetRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.RentalAsset) bool {
			return a.AssetCode == "A01" && a.ProductID == 1
		})).Return(nil).Once()
		logRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		asset, err := svc.Create(ctx, 9, validation.RentalAssetInput{ProductID: 1, AssetCode: "a01"})
		require.NoError(t, err)
		assert.Equal(t, "A01", asset.AssetCode)
	})

	t.Run("BuyProductRejected", func(t *testing.T) {
		productRepo.On("GetByID", ctx, int32(2)).
			Return(&domain.Product{ID: 2, SKU: "DRILL-01", StockType: domain.StockTypeBuy}, nil).Once()

		// The mock's call history spans subtests, so compare counts instead
		// of AssertNotCalled, which would see the earlier success call.
		assetCallsBefore := len(assetRepo.Calls)
		_, err := svc.Create(ctx, 9, validation.RentalAssetInput{ProductID: 2, AssetCode: "A01"})
		assert.ErrorIs(t, err, ErrNotRentalProduct)
		assert.Len(t, assetRepo.Calls, assetCallsBefore)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		productRepo.On("GetByID", ctx, int32(99)).Return(nil, apperr.ErrNotFound).Once()

		_, err := svc.Create(ctx, 9, validation.RentalAssetInput{ProductID: 99, AssetCode: "A01"})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("DuplicateCodeUnderProduct", func(t *testing.T) {
		productRepo.On("GetByID", ctx, int32(1)).
			Return(&domain.Product{ID: 1, StockType: domain.StockTypeRental}, nil).Once()
		assetRepo.On("Create", ctx, mock.Anything).
			Return(&apperr.DuplicateKeyError{Entity: "rentalAsset", Field: "asset_code"}).Once()

		_, err := svc.Create(ctx, 9, validation.RentalAssetInput{ProductID: 1, AssetCode: "A01"})
		assert.True(t, apperr.IsDuplicateKey(err))
	})

	assetRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestRentalAssetService_UpdateStatus(t *testing.T) {
	assetRepo := new(MockRentalAssetRepo)
	svc := NewRentalAssetService(assetRepo, new(MockProductRepo), new(MockActivityLogRepo))
	ctx := context.Background()

	t.Run("AnyLegalValueAccepted", func(t *testing.T) {
		logRepo := new(MockActivityLogRepo)
		svc := NewRentalAssetService(assetRepo, new(MockProductRepo), logRepo)
		rentalID := int32(12)

		assetRepo.On("UpdateStatus", ctx, int32(7), domain.AssetStatusRented, &rentalID).Return(nil).Once()
		assetRepo.On("GetByID", ctx, int32(7)).
			Return(&domain.RentalAsset{ID: 7, Status: domain.AssetStatusRented, CurrentRentalID: &rentalID}, nil).Once()
		logRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		asset, err := svc.UpdateStatus(ctx, 9, 7, "rented", &rentalID)
		require.NoError(t, err)
		assert.Equal(t, domain.AssetStatusRented, asset.Status)
	})

	t.Run("ValueOutsideEnumRejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, 9, 7, "lost", nil)
		assert.True(t, apperr.IsValidation(err))
		assetRepo.AssertNotCalled(t, "UpdateStatus", ctx, int32(7), domain.AssetStatus("lost"), (*int32)(nil))
	})

	assetRepo.AssertExpectations(t)
}
