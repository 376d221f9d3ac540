package service

import (
	"context"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/utils"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	productRepo repository.ProductRepository
	logRepo     repository.ActivityLogRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, productRepo repository.ProductRepository, logRepo repository.ActivityLogRepository) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		productRepo: productRepo,
		logRepo:     logRepo,
	}
}

func (s *rentalService) List(ctx context.Context, status string, page, limit int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.List(ctx, status, page, limit)
}

func (s *rentalService) Get(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) Create(ctx context.Context, actorID int32, in validation.RentalInput) (*domain.Rental, error) {
	rental, err := validation.Rental(in)
	if err != nil {
		return nil, err
	}

	// The product must exist; asset status is not flipped here. Rental
	// activation and asset state are decoupled single-document writes, the
	// same consistency model as the rest of the system.
	if _, err := s.productRepo.GetByID(ctx, rental.ProductID); err != nil {
		return nil, err
	}

	if rental.RentalNumber == "" {
		rental.RentalNumber = utils.GenerateRentalNumber(time.Now())
	}
	rental.CreatedBy = actorID

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.logRepo, actorID, "rental", rental.ID, domain.LogActionCreate, rental.RentalNumber)
	return rental, nil
}

func (s *rentalService) UpdateStatus(ctx context.Context, actorID, id int32, status string) (*domain.Rental, error) {
	normalized, err := validation.RentalStatus(status)
	if err != nil {
		return nil, err
	}

	if err := s.rentalRepo.UpdateStatus(ctx, id, normalized); err != nil {
		return nil, err
	}

	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recordActivity(ctx, s.logRepo, actorID, "rental", id, domain.LogActionUpdate, string(normalized))
	return rental, nil
}
