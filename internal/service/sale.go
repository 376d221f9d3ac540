package service

import (
	"context"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/utils"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type saleService struct {
	saleRepo repository.SaleRepository
	logRepo  repository.ActivityLogRepository
}

func NewSaleService(saleRepo repository.SaleRepository, logRepo repository.ActivityLogRepository) SaleService {
	return &saleService{saleRepo: saleRepo, logRepo: logRepo}
}

func (s *saleService) List(ctx context.Context, paymentStatus string, page, limit int32) ([]domain.Sale, int32, error) {
	return s.saleRepo.List(ctx, paymentStatus, page, limit)
}

func (s *saleService) Get(ctx context.Context, id int32) (*domain.Sale, error) {
	return s.saleRepo.GetByID(ctx, id)
}

func (s *saleService) Create(ctx context.Context, actorID int32, in validation.SaleInput) (*domain.Sale, error) {
	sale, err := validation.Sale(in)
	if err != nil {
		return nil, err
	}

	if sale.BillNumber == "" {
		sale.BillNumber = utils.GenerateBillNumber(time.Now())
	}
	sale.CreatedBy = actorID

	// Stock counters are not decremented here. Sale creation and stock
	// adjustment stay separate single-document writes.
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.logRepo, actorID, "sale", sale.ID, domain.LogActionCreate, sale.BillNumber)
	return sale, nil
}

func (s *saleService) UpdatePaymentStatus(ctx context.Context, actorID, id int32, status string) (*domain.Sale, error) {
	normalized, err := validation.PaymentStatus(status)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepo.UpdatePaymentStatus(ctx, id, normalized); err != nil {
		return nil, err
	}

	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recordActivity(ctx, s.logRepo, actorID, "sale", id, domain.LogActionUpdate, string(normalized))
	return sale, nil
}
