package validation

import (
	"fmt"
	"strings"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/utils"
)

type SaleItemInput struct {
	ProductID  int32   `json:"product_id"`
	Quantity   int32   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type SaleInput struct {
	BillNumber    string          `json:"bill_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Items         []SaleItemInput `json:"items"`
	Subtotal      float64         `json:"subtotal"`
	Discount      float64         `json:"discount"`
	Tax           float64         `json:"tax"`
	TotalAmount   float64         `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
}

// Sale normalizes and validates a sale payload. The totals rules are
// cross-field and run only after every per-field rule passes:
//
//	sum(item.total_price) ≈ subtotal        (attributed to subtotal)
//	subtotal - discount + tax ≈ total_amount (attributed to total_amount)
//
// both within the shared money tolerance.
func Sale(in SaleInput) (*domain.Sale, error) {
	ve := &apperr.ValidationError{}

	if checkRequired(ve, "customer_name", in.CustomerName) {
		checkLength(ve, "customer_name", strings.TrimSpace(in.CustomerName), 2, 100)
	}
	if strings.TrimSpace(in.CustomerEmail) != "" {
		checkEmail(ve, "customer_email", strings.ToLower(strings.TrimSpace(in.CustomerEmail)))
	}

	if len(in.Items) == 0 {
		ve.Add("items", "validation.items_required",
			"a sale needs at least one item", nil)
	}
	for i, item := range in.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if item.ProductID <= 0 {
			ve.Add(prefix+".product_id", "validation.required",
				prefix+".product_id is required",
				map[string]any{"Field": prefix + ".product_id"})
		}
		if item.Quantity <= 0 {
			ve.Add(prefix+".quantity", "validation.positive_quantity",
				prefix+".quantity must be greater than zero",
				map[string]any{"Field": prefix + ".quantity"})
		}
		checkNonNegative(ve, prefix+".unit_price", item.UnitPrice)
		checkNonNegative(ve, prefix+".total_price", item.TotalPrice)
	}

	checkNonNegative(ve, "subtotal", in.Subtotal)
	checkNonNegative(ve, "discount", in.Discount)
	checkNonNegative(ve, "tax", in.Tax)
	checkNonNegative(ve, "total_amount", in.TotalAmount)

	status := domain.PaymentStatus(strings.TrimSpace(in.PaymentStatus))
	if status == "" {
		status = domain.PaymentStatusPending
	}
	if !status.Valid() {
		addInvalidEnum(ve, "payment_status", string(status), paymentStatusValues())
	}

	if ve.HasErrors() {
		return nil, ve
	}

	// Cross-field rules, only after per-field rules pass.
	var itemSum float64
	for _, item := range in.Items {
		itemSum += item.TotalPrice
	}
	if !utils.MoneyEqual(itemSum, in.Subtotal) {
		ve.Add("subtotal", "validation.subtotal_mismatch",
			"subtotal does not match the sum of item totals", nil)
	}
	if !utils.MoneyEqual(in.Subtotal-in.Discount+in.Tax, in.TotalAmount) {
		ve.Add("total_amount", "validation.total_mismatch",
			"total_amount must equal subtotal - discount + tax", nil)
	}
	if ve.HasErrors() {
		return nil, ve
	}

	items := make([]domain.SaleItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, domain.SaleItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return &domain.Sale{
		BillNumber:    strings.TrimSpace(in.BillNumber),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		Items:         items,
		Subtotal:      in.Subtotal,
		Discount:      in.Discount,
		Tax:           in.Tax,
		TotalAmount:   in.TotalAmount,
		PaymentStatus: status,
	}, nil
}

// PaymentStatus checks a bare status value for the update-payment operation.
func PaymentStatus(value string) (domain.PaymentStatus, error) {
	status := domain.PaymentStatus(strings.TrimSpace(value))
	if !status.Valid() {
		ve := &apperr.ValidationError{}
		addInvalidEnum(ve, "payment_status", string(status), paymentStatusValues())
		return "", ve
	}
	return status, nil
}

func paymentStatusValues() []string {
	return []string{
		string(domain.PaymentStatusPending),
		string(domain.PaymentStatusPaid),
		string(domain.PaymentStatusPartial),
	}
}
