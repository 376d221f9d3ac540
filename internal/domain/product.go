package domain

type StockType string

const (
	StockTypeBuy    StockType = "buy"
	StockTypeRental StockType = "rental"
)

func (t StockType) Valid() bool {
	return t == StockTypeBuy || t == StockTypeRental
}

type Product struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Category  string    `json:"category"`
	StockType StockType `json:"stock_type"`
	// Price applies to buy-type products; the rental rates to rental-type.
	Price              float64 `json:"price"`
	RentalRatePerDay   float64 `json:"rental_rate_per_day"`
	RentalRatePerWeek  float64 `json:"rental_rate_per_week"`
	RentalRatePerMonth float64 `json:"rental_rate_per_month"`
	CreatedBy          int32   `json:"created_by"`
	CreatedOn          string  `json:"created_on"`
	UpdatedOn          string  `json:"updated_on"`
	DeletedOn          *string `json:"deleted_on,omitempty"`
}

// BuyStock is the one-to-one stock counter for a buy-type product.
type BuyStock struct {
	ID          int32  `json:"id"`
	ProductID   int32  `json:"product_id"`
	Quantity    int32  `json:"quantity"`
	MinQuantity int32  `json:"min_quantity"`
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
}

// LowStock reports whether the counter has fallen below its reorder floor.
func (s BuyStock) LowStock() bool {
	return s.Quantity < s.MinQuantity
}
