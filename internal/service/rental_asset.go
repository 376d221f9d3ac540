package service

import (
	"context"
	"errors"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

// ErrNotRentalProduct is returned when an asset is created under a buy-type
// product.
var ErrNotRentalProduct = errors.New("rental assets can only be created under rental-type products")

type rentalAssetService struct {
	assetRepo   repository.RentalAssetRepository
	productRepo repository.ProductRepository
	logRepo     repository.ActivityLogRepository
}

func NewRentalAssetService(assetRepo repository.RentalAssetRepository, productRepo repository.ProductRepository, logRepo repository.ActivityLogRepository) RentalAssetService {
	return &rentalAssetService{
		assetRepo:   assetRepo,
		productRepo: productRepo,
		logRepo:     logRepo,
	}
}

func (s *rentalAssetService) ListByProduct(ctx context.Context, productID, page, limit int32) ([]domain.RentalAsset, int32, error) {
	return s.assetRepo.ListByProduct(ctx, productID, page, limit)
}

func (s *rentalAssetService) Get(ctx context.Context, id int32) (*domain.RentalAsset, error) {
	return s.assetRepo.GetByID(ctx, id)
}

func (s *rentalAssetService) Create(ctx context.Context, actorID int32, in validation.RentalAssetInput) (*domain.RentalAsset, error) {
	asset, err := validation.RentalAsset(in)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, asset.ProductID)
	if err != nil {
		return nil, err
	}
	if product.StockType != domain.StockTypeRental {
		return nil, ErrNotRentalProduct
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.logRepo, actorID, "rentalAsset", asset.ID, domain.LogActionCreate, asset.AssetCode)
	return asset, nil
}

func (s *rentalAssetService) UpdateStatus(ctx context.Context, actorID, id int32, status string, currentRentalID *int32) (*domain.RentalAsset, error) {
	normalized, err := validation.AssetStatus(status)
	if err != nil {
		return nil, err
	}

	// Membership in the enum is the only guard; any legal value may be
	// written at any time.
	if err := s.assetRepo.UpdateStatus(ctx, id, normalized, currentRentalID); err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recordActivity(ctx, s.logRepo, actorID, "rentalAsset", id, domain.LogActionUpdate, string(normalized))
	return asset, nil
}
