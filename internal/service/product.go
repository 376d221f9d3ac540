package service

import (
	"context"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type productService struct {
	productRepo repository.ProductRepository
	stockRepo   repository.BuyStockRepository
	logRepo     repository.ActivityLogRepository
}

func NewProductService(productRepo repository.ProductRepository, stockRepo repository.BuyStockRepository, logRepo repository.ActivityLogRepository) ProductService {
	return &productService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		logRepo:     logRepo,
	}
}

func (s *productService) List(ctx context.Context, category string, page, limit int32) ([]domain.Product, int32, error) {
	return s.productRepo.List(ctx, category, page, limit)
}

func (s *productService) Get(ctx context.Context, id int32) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, actorID int32, in validation.ProductInput) (*domain.Product, error) {
	product, err := validation.Product(in)
	if err != nil {
		return nil, err
	}
	product.CreatedBy = actorID

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	// A buy-type product gets its one-to-one stock counter at creation.
	// This is a second single-row write, not a transaction with the product
	// insert; the buystocks product_id index stops double counters.
	if product.StockType == domain.StockTypeBuy {
		stock := &domain.BuyStock{
			ProductID:   product.ID,
			Quantity:    in.Quantity,
			MinQuantity: in.MinQuantity,
		}
		if err := s.stockRepo.Create(ctx, stock); err != nil {
			logger.Error("Product created but stock counter failed",
				"product_id", product.ID, "error", err)
			return nil, err
		}
	}

	recordActivity(ctx, s.logRepo, actorID, "product", product.ID, domain.LogActionCreate, product.SKU)
	return product, nil
}

func (s *productService) Update(ctx context.Context, actorID, id int32, in validation.ProductInput) (*domain.Product, error) {
	normalized, err := validation.Product(in)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = normalized.Name
	product.SKU = normalized.SKU
	product.Category = normalized.Category
	product.StockType = normalized.StockType
	product.Price = normalized.Price
	product.RentalRatePerDay = normalized.RentalRatePerDay
	product.RentalRatePerWeek = normalized.RentalRatePerWeek
	product.RentalRatePerMonth = normalized.RentalRatePerMonth

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.logRepo, actorID, "product", product.ID, domain.LogActionUpdate, product.SKU)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, actorID, id int32) error {
	if err := s.productRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	recordActivity(ctx, s.logRepo, actorID, "product", id, domain.LogActionDelete, "")
	return nil
}
