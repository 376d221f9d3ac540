package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, rental_number, product_id, asset_id, customer_name, customer_email,
	customer_phone, start_date, end_date, rate_per_day, total_amount, deposit,
	status, notes, created_by, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `INSERT INTO rentals (rental_number, product_id, asset_id, customer_name,
	            customer_email, customer_phone, start_date, end_date, rate_per_day,
	            total_amount, deposit, status, notes, created_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())
	          RETURNING id, created_on, updated_on`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query,
		rental.RentalNumber, rental.ProductID, rental.AssetID, rental.CustomerName,
		rental.CustomerEmail, rental.CustomerPhone, rental.StartDate, rental.EndDate,
		rental.RatePerDay, rental.TotalAmount, rental.Deposit, rental.Status,
		rental.Notes, rental.CreatedBy).
		Scan(&rental.ID, &createdOn, &updatedOn)
	if err != nil {
		return translateError("rental.create", "rental", err)
	}
	rental.CreatedOn = createdOn.Format(dateLayout)
	rental.UpdatedOn = updatedOn.Format(dateLayout)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id), "rental.get_by_id")
}

func (r *rentalRepository) GetByNumber(ctx context.Context, rentalNumber string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE rental_number = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, rentalNumber), "rental.get_by_number")
}

func (r *rentalRepository) List(ctx context.Context, status string, page, limit int32) ([]domain.Rental, int32, error) {
	var total int32
	countQuery := `SELECT COUNT(*) FROM rentals WHERE ($1 = '' OR status = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, translateError("rental.list", "rental", err)
	}

	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE ($1 = '' OR status = $1)
	          ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, translateError("rental.list", "rental", err)
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rental, err := scanRentalRow(rows)
		if err != nil {
			return nil, 0, translateError("rental.list", "rental", err)
		}
		rentals = append(rentals, *rental)
	}
	return rentals, total, rows.Err()
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) error {
	query := `UPDATE rentals SET status=$1, updated_on=now() WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return translateError("rental.update_status", "rental", err)
	}
	return requireRow(res, "rental.update_status")
}

func scanRental(row *sql.Row, op string) (*domain.Rental, error) {
	rental := &domain.Rental{}
	var assetID sql.NullInt32
	var startDate, endDate, createdOn, updatedOn time.Time
	err := row.Scan(&rental.ID, &rental.RentalNumber, &rental.ProductID, &assetID,
		&rental.CustomerName, &rental.CustomerEmail, &rental.CustomerPhone,
		&startDate, &endDate, &rental.RatePerDay, &rental.TotalAmount, &rental.Deposit,
		&rental.Status, &rental.Notes, &rental.CreatedBy, &createdOn, &updatedOn)
	if err != nil {
		return nil, translateError(op, "rental", err)
	}
	fillRentalDates(rental, assetID, startDate, endDate, createdOn, updatedOn)
	return rental, nil
}

func scanRentalRow(rows *sql.Rows) (*domain.Rental, error) {
	rental := &domain.Rental{}
	var assetID sql.NullInt32
	var startDate, endDate, createdOn, updatedOn time.Time
	err := rows.Scan(&rental.ID, &rental.RentalNumber, &rental.ProductID, &assetID,
		&rental.CustomerName, &rental.CustomerEmail, &rental.CustomerPhone,
		&startDate, &endDate, &rental.RatePerDay, &rental.TotalAmount, &rental.Deposit,
		&rental.Status, &rental.Notes, &rental.CreatedBy, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	fillRentalDates(rental, assetID, startDate, endDate, createdOn, updatedOn)
	return rental, nil
}

func fillRentalDates(rental *domain.Rental, assetID sql.NullInt32, startDate, endDate, createdOn, updatedOn time.Time) {
	if assetID.Valid {
		v := assetID.Int32
		rental.AssetID = &v
	}
	rental.StartDate = startDate.Format(dateLayout)
	rental.EndDate = endDate.Format(dateLayout)
	rental.CreatedOn = createdOn.Format(dateLayout)
	rental.UpdatedOn = updatedOn.Format(dateLayout)
}
