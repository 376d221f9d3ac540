package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
)

type saleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

const saleColumns = `id, bill_number, customer_name, customer_email, subtotal,
	discount, tax, total_amount, payment_status, created_by, created_on, updated_on`

func (r *saleRepository) Create(ctx context.Context, s *domain.Sale) error {
	query := `INSERT INTO sales (bill_number, customer_name, customer_email, subtotal,
	            discount, tax, total_amount, payment_status, created_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
	          RETURNING id, created_on, updated_on`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query,
		s.BillNumber, s.CustomerName, s.CustomerEmail, s.Subtotal,
		s.Discount, s.Tax, s.TotalAmount, s.PaymentStatus, s.CreatedBy).
		Scan(&s.ID, &createdOn, &updatedOn)
	if err != nil {
		return translateError("sale.create", "sale", err)
	}
	s.CreatedOn = createdOn.Format(dateLayout)
	s.UpdatedOn = updatedOn.Format(dateLayout)

	// Item lines are separate single-row writes after the sale row. There is
	// no enclosing transaction; see the consistency note in DESIGN.md.
	itemQuery := `INSERT INTO saleitems (sale_id, product_id, quantity, unit_price, total_price)
	              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	for i := range s.Items {
		item := &s.Items[i]
		item.SaleID = s.ID
		err := r.db.QueryRowContext(ctx, itemQuery,
			item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice).
			Scan(&item.ID)
		if err != nil {
			return translateError("sale.create_item", "sale", err)
		}
	}
	return nil
}

func (r *saleRepository) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.db.QueryRowContext(ctx, query, id), "sale.get_by_id")
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *saleRepository) GetByBillNumber(ctx context.Context, billNumber string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE bill_number = $1`
	s, err := scanSale(r.db.QueryRowContext(ctx, query, billNumber), "sale.get_by_bill")
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *saleRepository) List(ctx context.Context, paymentStatus string, page, limit int32) ([]domain.Sale, int32, error) {
	var total int32
	countQuery := `SELECT COUNT(*) FROM sales WHERE ($1 = '' OR payment_status = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, paymentStatus).Scan(&total); err != nil {
		return nil, 0, translateError("sale.list", "sale", err)
	}

	query := `SELECT ` + saleColumns + ` FROM sales WHERE ($1 = '' OR payment_status = $1)
	          ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, paymentStatus, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, translateError("sale.list", "sale", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&s.ID, &s.BillNumber, &s.CustomerName, &s.CustomerEmail,
			&s.Subtotal, &s.Discount, &s.Tax, &s.TotalAmount, &s.PaymentStatus,
			&s.CreatedBy, &createdOn, &updatedOn); err != nil {
			return nil, 0, translateError("sale.list", "sale", err)
		}
		s.CreatedOn = createdOn.Format(dateLayout)
		s.UpdatedOn = updatedOn.Format(dateLayout)
		sales = append(sales, s)
	}
	return sales, total, rows.Err()
}

func (r *saleRepository) UpdatePaymentStatus(ctx context.Context, id int32, status domain.PaymentStatus) error {
	query := `UPDATE sales SET payment_status=$1, updated_on=now() WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return translateError("sale.update_payment", "sale", err)
	}
	return requireRow(res, "sale.update_payment")
}

func (r *saleRepository) loadItems(ctx context.Context, s *domain.Sale) error {
	query := `SELECT id, sale_id, product_id, quantity, unit_price, total_price
	          FROM saleitems WHERE sale_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, s.ID)
	if err != nil {
		return translateError("sale.load_items", "sale", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice); err != nil {
			return translateError("sale.load_items", "sale", err)
		}
		s.Items = append(s.Items, item)
	}
	return rows.Err()
}

func scanSale(row *sql.Row, op string) (*domain.Sale, error) {
	s := &domain.Sale{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&s.ID, &s.BillNumber, &s.CustomerName, &s.CustomerEmail,
		&s.Subtotal, &s.Discount, &s.Tax, &s.TotalAmount, &s.PaymentStatus,
		&s.CreatedBy, &createdOn, &updatedOn)
	if err != nil {
		return nil, translateError(op, "sale", err)
	}
	s.CreatedOn = createdOn.Format(dateLayout)
	s.UpdatedOn = updatedOn.Format(dateLayout)
	return s, nil
}
