package domain

type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusRented      AssetStatus = "rented"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusReserved    AssetStatus = "reserved"
	AssetStatusDamaged     AssetStatus = "damaged"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusAvailable, AssetStatusRented, AssetStatusMaintenance,
		AssetStatusReserved, AssetStatusDamaged:
		return true
	}
	return false
}

// RentalAsset is one physical unit of a rental-type product. The asset code
// is unique per product, not globally: two products may both have an "A01".
type RentalAsset struct {
	ID              int32       `json:"id"`
	ProductID       int32       `json:"product_id"`
	AssetCode       string      `json:"asset_code"`
	Status          AssetStatus `json:"status"`
	CurrentRentalID *int32      `json:"current_rental_id,omitempty"`
	Notes           string      `json:"notes"`
	CreatedOn       string      `json:"created_on"`
	UpdatedOn       string      `json:"updated_on"`
}
