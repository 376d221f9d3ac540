package service

import (
	"context"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type AuthService interface {
	Signup(ctx context.Context, in validation.UserInput) (*domain.User, string, error) // user, access token
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type UserService interface {
	List(ctx context.Context, page, limit int32) ([]domain.User, int32, error)
	Get(ctx context.Context, id int32) (*domain.User, error)
	Create(ctx context.Context, actorID int32, in validation.UserInput) (*domain.User, error)
	Update(ctx context.Context, actorID, id int32, in validation.UserUpdateInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error
}

type ProductService interface {
	List(ctx context.Context, category string, page, limit int32) ([]domain.Product, int32, error)
	Get(ctx context.Context, id int32) (*domain.Product, error)
	Create(ctx context.Context, actorID int32, in validation.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, actorID, id int32, in validation.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actorID, id int32) error
}

type BuyStockService interface {
	GetByProduct(ctx context.Context, productID int32) (*domain.BuyStock, error)
	Adjust(ctx context.Context, actorID, productID int32, in validation.StockAdjustmentInput) (*domain.BuyStock, error)
	ListLowStock(ctx context.Context, page, limit int32) ([]domain.BuyStock, int32, error)
}

type RentalAssetService interface {
	ListByProduct(ctx context.Context, productID, page, limit int32) ([]domain.RentalAsset, int32, error)
	Get(ctx context.Context, id int32) (*domain.RentalAsset, error)
	Create(ctx context.Context, actorID int32, in validation.RentalAssetInput) (*domain.RentalAsset, error)
	UpdateStatus(ctx context.Context, actorID, id int32, status string, currentRentalID *int32) (*domain.RentalAsset, error)
}

type RentalService interface {
	List(ctx context.Context, status string, page, limit int32) ([]domain.Rental, int32, error)
	Get(ctx context.Context, id int32) (*domain.Rental, error)
	Create(ctx context.Context, actorID int32, in validation.RentalInput) (*domain.Rental, error)
	UpdateStatus(ctx context.Context, actorID, id int32, status string) (*domain.Rental, error)
}

type SaleService interface {
	List(ctx context.Context, paymentStatus string, page, limit int32) ([]domain.Sale, int32, error)
	Get(ctx context.Context, id int32) (*domain.Sale, error)
	Create(ctx context.Context, actorID int32, in validation.SaleInput) (*domain.Sale, error)
	UpdatePaymentStatus(ctx context.Context, actorID, id int32, status string) (*domain.Sale, error)
}

type ActivityLogService interface {
	List(ctx context.Context, entityType string, page, limit int32) ([]domain.ActivityLog, int32, error)
}

type EmailService interface {
	SendPasswordReset(ctx context.Context, email, name, token string) error
}
