package validation

import (
	"strings"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

type ProductInput struct {
	Name               string  `json:"name"`
	SKU                string  `json:"sku"`
	Category           string  `json:"category"`
	StockType          string  `json:"stock_type"`
	Price              float64 `json:"price"`
	RentalRatePerDay   float64 `json:"rental_rate_per_day"`
	RentalRatePerWeek  float64 `json:"rental_rate_per_week"`
	RentalRatePerMonth float64 `json:"rental_rate_per_month"`
	// Initial stock counters, used only for buy-type products.
	Quantity    int32 `json:"quantity"`
	MinQuantity int32 `json:"min_quantity"`
}

// Product normalizes and validates a product payload. The SKU is uppercased
// before the format check, so "cam-001" and "CAM-001" are the same product
// as far as the uniqueness index is concerned.
func Product(in ProductInput) (*domain.Product, error) {
	ve := &apperr.ValidationError{}

	if checkRequired(ve, "name", in.Name) {
		checkLength(ve, "name", strings.TrimSpace(in.Name), 2, 200)
	}

	sku := NormalizeCode(in.SKU)
	if checkRequired(ve, "sku", sku) {
		checkLength(ve, "sku", sku, 2, 50)
		checkCode(ve, "sku", sku)
	}

	checkLength(ve, "category", strings.TrimSpace(in.Category), 0, 100)

	stockType := domain.StockType(strings.TrimSpace(in.StockType))
	if !stockType.Valid() {
		addInvalidEnum(ve, "stock_type", string(stockType), []string{
			string(domain.StockTypeBuy),
			string(domain.StockTypeRental),
		})
	}

	checkNonNegative(ve, "price", in.Price)
	checkNonNegative(ve, "rental_rate_per_day", in.RentalRatePerDay)
	checkNonNegative(ve, "rental_rate_per_week", in.RentalRatePerWeek)
	checkNonNegative(ve, "rental_rate_per_month", in.RentalRatePerMonth)
	checkNonNegativeInt(ve, "quantity", in.Quantity)
	checkNonNegativeInt(ve, "min_quantity", in.MinQuantity)

	if ve.HasErrors() {
		return nil, ve
	}

	return &domain.Product{
		Name:               strings.TrimSpace(in.Name),
		SKU:                sku,
		Category:           strings.TrimSpace(in.Category),
		StockType:          stockType,
		Price:              in.Price,
		RentalRatePerDay:   in.RentalRatePerDay,
		RentalRatePerWeek:  in.RentalRatePerWeek,
		RentalRatePerMonth: in.RentalRatePerMonth,
	}, nil
}

type StockAdjustmentInput struct {
	Quantity    int32 `json:"quantity"`
	MinQuantity int32 `json:"min_quantity"`
}

// StockAdjustment validates replacement counters for a buy stock row. The
// quantity can never go negative.
func StockAdjustment(in StockAdjustmentInput) error {
	ve := &apperr.ValidationError{}
	checkNonNegativeInt(ve, "quantity", in.Quantity)
	checkNonNegativeInt(ve, "min_quantity", in.MinQuantity)
	if ve.HasErrors() {
		return ve
	}
	return nil
}
