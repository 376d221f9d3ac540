package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/schema"
)

// uniqueViolation is the PostgreSQL error code for a unique index conflict.
const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ProductRepository
	repository.BuyStockRepository
	repository.RentalAssetRepository
	repository.RentalRepository
	repository.SaleRepository
	repository.ActivityLogRepository
	repository.PasswordResetTokenRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                           db,
		UserRepository:               NewUserRepository(db),
		ProductRepository:            NewProductRepository(db),
		BuyStockRepository:           NewBuyStockRepository(db),
		RentalAssetRepository:        NewRentalAssetRepository(db),
		RentalRepository:             NewRentalRepository(db),
		SaleRepository:               NewSaleRepository(db),
		ActivityLogRepository:        NewActivityLogRepository(db),
		PasswordResetTokenRepository: NewPasswordResetTokenRepository(db),
	}
}

// translateError maps driver errors onto the shared taxonomy: no rows
// becomes NotFound, a unique violation becomes a DuplicateKeyError naming
// the natural-key field behind the violated constraint, anything else is an
// infrastructure failure for this request.
func translateError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		field := "id"
		if ent, f, ok := schema.Default().ConstraintField(pqErr.Constraint); ok {
			entity, field = ent, f
		}
		return &apperr.DuplicateKeyError{Entity: entity, Field: field}
	}
	return &apperr.InfrastructureError{Op: op, Err: err}
}

// requireRow turns an update that matched nothing into a NotFound.
func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return &apperr.InfrastructureError{Op: op, Err: err}
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

const dateLayout = "2006-01-02"
