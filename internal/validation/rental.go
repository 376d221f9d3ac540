package validation

import (
	"strings"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/utils"
)

type RentalInput struct {
	RentalNumber  string  `json:"rental_number"`
	ProductID     int32   `json:"product_id"`
	AssetID       *int32  `json:"asset_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	RatePerDay    float64 `json:"rate_per_day"`
	TotalAmount   float64 `json:"total_amount"`
	Deposit       float64 `json:"deposit"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

// Rental normalizes and validates a rental payload. The end date must be
// strictly after the start date; equal dates are rejected. The date rule is
// cross-field and only runs once the per-field rules pass, attributed to
// end_date.
func Rental(in RentalInput) (*domain.Rental, error) {
	ve := &apperr.ValidationError{}

	if in.ProductID <= 0 {
		ve.Add("product_id", "validation.required", "product_id is required",
			map[string]any{"Field": "product_id"})
	}

	if checkRequired(ve, "customer_name", in.CustomerName) {
		checkLength(ve, "customer_name", strings.TrimSpace(in.CustomerName), 2, 100)
	}
	if checkRequired(ve, "customer_email", in.CustomerEmail) {
		checkEmail(ve, "customer_email", strings.ToLower(strings.TrimSpace(in.CustomerEmail)))
	}

	start, startErr := utils.ParseDate(in.StartDate)
	if startErr != nil {
		ve.Add("start_date", "validation.invalid_date",
			"start_date must be a yyyy-mm-dd date",
			map[string]any{"Field": "start_date"})
	}
	end, endErr := utils.ParseDate(in.EndDate)
	if endErr != nil {
		ve.Add("end_date", "validation.invalid_date",
			"end_date must be a yyyy-mm-dd date",
			map[string]any{"Field": "end_date"})
	}

	checkNonNegative(ve, "rate_per_day", in.RatePerDay)
	checkNonNegative(ve, "total_amount", in.TotalAmount)
	checkNonNegative(ve, "deposit", in.Deposit)

	status := domain.RentalStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = domain.RentalStatusPending
	}
	if !status.Valid() {
		addInvalidEnum(ve, "status", string(status), rentalStatusValues())
	}

	if ve.HasErrors() {
		return nil, ve
	}

	// Cross-field rule, only after per-field rules pass.
	if !end.After(start) {
		ve.Add("end_date", "validation.end_before_start",
			"end_date must be after start_date", nil)
		return nil, ve
	}

	return &domain.Rental{
		RentalNumber:  strings.TrimSpace(in.RentalNumber),
		ProductID:     in.ProductID,
		AssetID:       in.AssetID,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		StartDate:     utils.FormatDate(start),
		EndDate:       utils.FormatDate(end),
		RatePerDay:    in.RatePerDay,
		TotalAmount:   in.TotalAmount,
		Deposit:       in.Deposit,
		Status:        status,
		Notes:         strings.TrimSpace(in.Notes),
	}, nil
}

// RentalStatus checks a bare status value for the update-status operation.
func RentalStatus(value string) (domain.RentalStatus, error) {
	status := domain.RentalStatus(strings.TrimSpace(value))
	if !status.Valid() {
		ve := &apperr.ValidationError{}
		addInvalidEnum(ve, "status", string(status), rentalStatusValues())
		return "", ve
	}
	return status, nil
}

func rentalStatusValues() []string {
	return []string{
		string(domain.RentalStatusPending),
		string(domain.RentalStatusActive),
		string(domain.RentalStatusCompleted),
		string(domain.RentalStatusCancelled),
	}
}
