package domain

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartial:
		return true
	}
	return false
}

type SaleItem struct {
	ID         int32   `json:"id"`
	SaleID     int32   `json:"sale_id"`
	ProductID  int32   `json:"product_id"`
	Quantity   int32   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Sale totals are linked: totalAmount = subtotal - discount + tax, and
// subtotal is the sum of the item line totals, both within a 0.01 tolerance.
type Sale struct {
	ID            int32         `json:"id"`
	BillNumber    string        `json:"bill_number"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	Items         []SaleItem    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Tax           float64       `json:"tax"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedBy     int32         `json:"created_by"`
	CreatedOn     string        `json:"created_on"`
	UpdatedOn     string        `json:"updated_on"`
}
