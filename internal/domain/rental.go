package domain

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusActive, RentalStatusCompleted, RentalStatusCancelled:
		return true
	}
	return false
}

type Rental struct {
	ID            int32        `json:"id"`
	RentalNumber  string       `json:"rental_number"`
	ProductID     int32        `json:"product_id"`
	AssetID       *int32       `json:"asset_id,omitempty"`
	CustomerName  string       `json:"customer_name"`
	CustomerEmail string       `json:"customer_email"`
	CustomerPhone string       `json:"customer_phone"`
	StartDate     string       `json:"start_date"`
	EndDate       string       `json:"end_date"`
	RatePerDay    float64      `json:"rate_per_day"`
	TotalAmount   float64      `json:"total_amount"`
	Deposit       float64      `json:"deposit"`
	Status        RentalStatus `json:"status"`
	Notes         string       `json:"notes"`
	CreatedBy     int32        `json:"created_by"`
	CreatedOn     string       `json:"created_on"`
	UpdatedOn     string       `json:"updated_on"`
}
