package validation

import (
	"strings"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

type RentalAssetInput struct {
	ProductID int32  `json:"product_id"`
	AssetCode string `json:"asset_code"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// RentalAsset normalizes and validates a rental asset payload. The asset
// code follows the same uppercase normalization as SKUs, so "a01" and "A01"
// collide under the same product.
func RentalAsset(in RentalAssetInput) (*domain.RentalAsset, error) {
	ve := &apperr.ValidationError{}

	if in.ProductID <= 0 {
		ve.Add("product_id", "validation.required", "product_id is required",
			map[string]any{"Field": "product_id"})
	}

	code := NormalizeCode(in.AssetCode)
	if checkRequired(ve, "asset_code", code) {
		checkLength(ve, "asset_code", code, 1, 50)
		checkCode(ve, "asset_code", code)
	}

	status := domain.AssetStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = domain.AssetStatusAvailable
	}
	if !status.Valid() {
		addInvalidEnum(ve, "status", string(status), assetStatusValues())
	}

	if ve.HasErrors() {
		return nil, ve
	}

	return &domain.RentalAsset{
		ProductID: in.ProductID,
		AssetCode: code,
		Status:    status,
		Notes:     strings.TrimSpace(in.Notes),
	}, nil
}

// AssetStatus checks a bare status value for the update-status operation.
// Membership in the legal value set is the only rule; no transition table is
// enforced.
func AssetStatus(value string) (domain.AssetStatus, error) {
	status := domain.AssetStatus(strings.TrimSpace(value))
	if !status.Valid() {
		ve := &apperr.ValidationError{}
		addInvalidEnum(ve, "status", string(status), assetStatusValues())
		return "", ve
	}
	return status, nil
}

func assetStatusValues() []string {
	return []string{
		string(domain.AssetStatusAvailable),
		string(domain.AssetStatusRented),
		string(domain.AssetStatusMaintenance),
		string(domain.AssetStatusReserved),
		string(domain.AssetStatusDamaged),
	}
}
