package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository"
)

type rentalAssetRepository struct {
	db *sql.DB
}

func NewRentalAssetRepository(db *sql.DB) repository.RentalAssetRepository {
	return &rentalAssetRepository{db: db}
}

const assetColumns = `id, product_id, asset_code, status, current_rental_id, notes, created_on, updated_on`

func (r *rentalAssetRepository) Create(ctx context.Context, a *domain.RentalAsset) error {
	query := `INSERT INTO rentalassets (product_id, asset_code, status, current_rental_id, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, now(), now()) RETURNING id, created_on, updated_on`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query,
		a.ProductID, a.AssetCode, a.Status, a.CurrentRentalID, a.Notes).
		Scan(&a.ID, &createdOn, &updatedOn)
	if err != nil {
		return translateError("rentalasset.create", "rentalAsset", err)
	}
	a.CreatedOn = createdOn.Format(dateLayout)
	a.UpdatedOn = updatedOn.Format(dateLayout)
	return nil
}

func (r *rentalAssetRepository) GetByID(ctx context.Context, id int32) (*domain.RentalAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM rentalassets WHERE id = $1`
	a := &domain.RentalAsset{}
	var createdOn, updatedOn time.Time
	var currentRentalID sql.NullInt32
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.ProductID, &a.AssetCode, &a.Status, &currentRentalID, &a.Notes, &createdOn, &updatedOn)
	if err != nil {
		return nil, translateError("rentalasset.get_by_id", "rentalAsset", err)
	}
	if currentRentalID.Valid {
		v := currentRentalID.Int32
		a.CurrentRentalID = &v
	}
	a.CreatedOn = createdOn.Format(dateLayout)
	a.UpdatedOn = updatedOn.Format(dateLayout)
	return a, nil
}

func (r *rentalAssetRepository) ListByProduct(ctx context.Context, productID int32, page, limit int32) ([]domain.RentalAsset, int32, error) {
	var total int32
	countQuery := `SELECT COUNT(*) FROM rentalassets WHERE product_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, productID).Scan(&total); err != nil {
		return nil, 0, translateError("rentalasset.list", "rentalAsset", err)
	}

	query := `SELECT ` + assetColumns + ` FROM rentalassets WHERE product_id = $1
	          ORDER BY asset_code LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, productID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, translateError("rentalasset.list", "rentalAsset", err)
	}
	defer rows.Close()

	var assets []domain.RentalAsset
	for rows.Next() {
		var a domain.RentalAsset
		var createdOn, updatedOn time.Time
		var currentRentalID sql.NullInt32
		if err := rows.Scan(&a.ID, &a.ProductID, &a.AssetCode, &a.Status, &currentRentalID, &a.Notes, &createdOn, &updatedOn); err != nil {
			return nil, 0, translateError("rentalasset.list", "rentalAsset", err)
		}
		if currentRentalID.Valid {
			v := currentRentalID.Int32
			a.CurrentRentalID = &v
		}
		a.CreatedOn = createdOn.Format(dateLayout)
		a.UpdatedOn = updatedOn.Format(dateLayout)
		assets = append(assets, a)
	}
	return assets, total, rows.Err()
}

func (r *rentalAssetRepository) Update(ctx context.Context, a *domain.RentalAsset) error {
	query := `UPDATE rentalassets SET asset_code=$1, status=$2, current_rental_id=$3, notes=$4, updated_on=now() WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, a.AssetCode, a.Status, a.CurrentRentalID, a.Notes, a.ID)
	if err != nil {
		return translateError("rentalasset.update", "rentalAsset", err)
	}
	return requireRow(res, "rentalasset.update")
}

func (r *rentalAssetRepository) UpdateStatus(ctx context.Context, id int32, status domain.AssetStatus, currentRentalID *int32) error {
	query := `UPDATE rentalassets SET status=$1, current_rental_id=$2, updated_on=now() WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, currentRentalID, id)
	if err != nil {
		return translateError("rentalasset.update_status", "rentalAsset", err)
	}
	return requireRow(res, "rentalasset.update_status")
}
