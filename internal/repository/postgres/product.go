package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, sku, category, stock_type, price,
	rental_rate_per_day, rental_rate_per_week, rental_rate_per_month,
	created_by, created_on, updated_on, deleted_on`

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (name, sku, category, stock_type, price,
	            rental_rate_per_day, rental_rate_per_week, rental_rate_per_month,
	            created_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
	          RETURNING id, created_on, updated_on`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.SKU, p.Category, p.StockType, p.Price,
		p.RentalRatePerDay, p.RentalRatePerWeek, p.RentalRatePerMonth, p.CreatedBy).
		Scan(&p.ID, &createdOn, &updatedOn)
	if err != nil {
		return translateError("product.create", "product", err)
	}
	p.CreatedOn = createdOn.Format(dateLayout)
	p.UpdatedOn = updatedOn.Format(dateLayout)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_on IS NULL`
	return r.scanProduct(r.db.QueryRowContext(ctx, query, id), "product.get_by_id")
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1 AND deleted_on IS NULL`
	return r.scanProduct(r.db.QueryRowContext(ctx, query, sku), "product.get_by_sku")
}

func (r *productRepository) List(ctx context.Context, category string, page, limit int32) ([]domain.Product, int32, error) {
	countQuery := `SELECT COUNT(*) FROM products WHERE deleted_on IS NULL AND ($1 = '' OR category = $1)`
	var total int32
	if err := r.db.QueryRowContext(ctx, countQuery, category).Scan(&total); err != nil {
		return nil, 0, translateError("product.list", "product", err)
	}

	query := `SELECT ` + productColumns + ` FROM products
	          WHERE deleted_on IS NULL AND ($1 = '' OR category = $1)
	          ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, category, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, translateError("product.list", "product", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, 0, translateError("product.list", "product", err)
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name=$1, sku=$2, category=$3, stock_type=$4, price=$5,
	            rental_rate_per_day=$6, rental_rate_per_week=$7, rental_rate_per_month=$8,
	            updated_on=now()
	          WHERE id=$9 AND deleted_on IS NULL`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.SKU, p.Category, p.StockType, p.Price,
		p.RentalRatePerDay, p.RentalRatePerWeek, p.RentalRatePerMonth, p.ID)
	if err != nil {
		return translateError("product.update", "product", err)
	}
	return requireRow(res, "product.update")
}

func (r *productRepository) SoftDelete(ctx context.Context, id int32) error {
	query := `UPDATE products SET deleted_on=now(), updated_on=now() WHERE id=$1 AND deleted_on IS NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateError("product.delete", "product", err)
	}
	return requireRow(res, "product.delete")
}

func (r *productRepository) scanProduct(row *sql.Row, op string) (*domain.Product, error) {
	p := &domain.Product{}
	var createdOn, updatedOn time.Time
	var deletedOn sql.NullTime
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.StockType, &p.Price,
		&p.RentalRatePerDay, &p.RentalRatePerWeek, &p.RentalRatePerMonth,
		&p.CreatedBy, &createdOn, &updatedOn, &deletedOn)
	if err != nil {
		return nil, translateError(op, "product", err)
	}
	p.CreatedOn = createdOn.Format(dateLayout)
	p.UpdatedOn = updatedOn.Format(dateLayout)
	if deletedOn.Valid {
		d := deletedOn.Time.Format(dateLayout)
		p.DeletedOn = &d
	}
	return p, nil
}

func scanProductRow(rows *sql.Rows) (*domain.Product, error) {
	p := &domain.Product{}
	var createdOn, updatedOn time.Time
	var deletedOn sql.NullTime
	err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.StockType, &p.Price,
		&p.RentalRatePerDay, &p.RentalRatePerWeek, &p.RentalRatePerMonth,
		&p.CreatedBy, &createdOn, &updatedOn, &deletedOn)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdOn.Format(dateLayout)
	p.UpdatedOn = updatedOn.Format(dateLayout)
	if deletedOn.Valid {
		d := deletedOn.Time.Format(dateLayout)
		p.DeletedOn = &d
	}
	return p, nil
}
