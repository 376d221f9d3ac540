package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
)

type buyStockRepository struct {
	db *sql.DB
}

func NewBuyStockRepository(db *sql.DB) repository.BuyStockRepository {
	return &buyStockRepository{db: db}
}

func (r *buyStockRepository) Create(ctx context.Context, s *domain.BuyStock) error {
	query := `INSERT INTO buystocks (product_id, quantity, min_quantity, created_on, updated_on)
	          VALUES ($1, $2, $3, now(), now()) RETURNING id, created_on, updated_on`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, s.ProductID, s.Quantity, s.MinQuantity).
		Scan(&s.ID, &createdOn, &updatedOn)
	if err != nil {
		return translateError("buystock.create", "buyStock", err)
	}
	s.CreatedOn = createdOn.Format(dateLayout)
	s.UpdatedOn = updatedOn.Format(dateLayout)
	return nil
}

func (r *buyStockRepository) GetByProduct(ctx context.Context, productID int32) (*domain.BuyStock, error) {
	s := &domain.BuyStock{}
	query := `SELECT id, product_id, quantity, min_quantity, created_on, updated_on
	          FROM buystocks WHERE product_id = $1`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, productID).
		Scan(&s.ID, &s.ProductID, &s.Quantity, &s.MinQuantity, &createdOn, &updatedOn)
	if err != nil {
		return nil, translateError("buystock.get_by_product", "buyStock", err)
	}
	s.CreatedOn = createdOn.Format(dateLayout)
	s.UpdatedOn = updatedOn.Format(dateLayout)
	return s, nil
}

func (r *buyStockRepository) Update(ctx context.Context, s *domain.BuyStock) error {
	query := `UPDATE buystocks SET quantity=$1, min_quantity=$2, updated_on=now() WHERE product_id=$3`
	res, err := r.db.ExecContext(ctx, query, s.Quantity, s.MinQuantity, s.ProductID)
	if err != nil {
		return translateError("buystock.update", "buyStock", err)
	}
	return requireRow(res, "buystock.update")
}

func (r *buyStockRepository) ListLowStock(ctx context.Context, page, limit int32) ([]domain.BuyStock, int32, error) {
	var total int32
	countQuery := `SELECT COUNT(*) FROM buystocks WHERE quantity < min_quantity`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, translateError("buystock.list_low", "buyStock", err)
	}

	query := `SELECT id, product_id, quantity, min_quantity, created_on, updated_on
	          FROM buystocks WHERE quantity < min_quantity
	          ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, translateError("buystock.list_low", "buyStock", err)
	}
	defer rows.Close()

	var stocks []domain.BuyStock
	for rows.Next() {
		var s domain.BuyStock
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.MinQuantity, &createdOn, &updatedOn); err != nil {
			return nil, 0, translateError("buystock.list_low", "buyStock", err)
		}
		s.CreatedOn = createdOn.Format(dateLayout)
		s.UpdatedOn = updatedOn.Format(dateLayout)
		stocks = append(stocks, s)
	}
	return stocks, total, rows.Err()
}
