package service

import (
	"context"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type buyStockService struct {
	stockRepo repository.BuyStockRepository
	logRepo   repository.ActivityLogRepository
}

func NewBuyStockService(stockRepo repository.BuyStockRepository, logRepo repository.ActivityLogRepository) BuyStockService {
	return &buyStockService{stockRepo: stockRepo, logRepo: logRepo}
}

func (s *buyStockService) GetByProduct(ctx context.Context, productID int32) (*domain.BuyStock, error) {
	return s.stockRepo.GetByProduct(ctx, productID)
}

func (s *buyStockService) Adjust(ctx context.Context, actorID, productID int32, in validation.StockAdjustmentInput) (*domain.BuyStock, error) {
	if err := validation.StockAdjustment(in); err != nil {
		return nil, err
	}

	stock, err := s.stockRepo.GetByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	stock.Quantity = in.Quantity
	stock.MinQuantity = in.MinQuantity

	if err := s.stockRepo.Update(ctx, stock); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.logRepo, actorID, "buyStock", stock.ID, domain.LogActionUpdate, "")
	return stock, nil
}

func (s *buyStockService) ListLowStock(ctx context.Context, page, limit int32) ([]domain.BuyStock, int32, error) {
	return s.stockRepo.ListLowStock(ctx, page, limit)
}
