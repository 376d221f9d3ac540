package repository

import (
	"context"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByEmailWithCredential is the only read that projects the password
	// hash. It exists solely for the login check.
	GetByEmailWithCredential(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, page, limit int32) ([]domain.User, int32, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context, category string, page, limit int32) ([]domain.Product, int32, error)
	Update(ctx context.Context, product *domain.Product) error
	SoftDelete(ctx context.Context, id int32) error
}

type BuyStockRepository interface {
	Create(ctx context.Context, stock *domain.BuyStock) error
	GetByProduct(ctx context.Context, productID int32) (*domain.BuyStock, error)
	Update(ctx context.Context, stock *domain.BuyStock) error
	ListLowStock(ctx context.Context, page, limit int32) ([]domain.BuyStock, int32, error)
}

type RentalAssetRepository interface {
	Create(ctx context.Context, asset *domain.RentalAsset) error
	GetByID(ctx context.Context, id int32) (*domain.RentalAsset, error)
	ListByProduct(ctx context.Context, productID int32, page, limit int32) ([]domain.RentalAsset, int32, error)
	Update(ctx context.Context, asset *domain.RentalAsset) error
	UpdateStatus(ctx context.Context, id int32, status domain.AssetStatus, currentRentalID *int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	GetByNumber(ctx context.Context, rentalNumber string) (*domain.Rental, error)
	List(ctx context.Context, status string, page, limit int32) ([]domain.Rental, int32, error)
	UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) error
}

type SaleRepository interface {
	// Create writes the sale and its item lines. The two writes are not a
	// single transaction; see the consistency note in DESIGN.md.
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id int32) (*domain.Sale, error)
	GetByBillNumber(ctx context.Context, billNumber string) (*domain.Sale, error)
	List(ctx context.Context, paymentStatus string, page, limit int32) ([]domain.Sale, int32, error)
	UpdatePaymentStatus(ctx context.Context, id int32, status domain.PaymentStatus) error
}

// ActivityLogRepository is append-only: no update or delete exists.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *domain.ActivityLog) error
	List(ctx context.Context, entityType string, page, limit int32) ([]domain.ActivityLog, int32, error)
}

type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *domain.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int32, usedOn time.Time) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
