package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/security"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmailWithCredential(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context, page, limit int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, page, limit)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Get(1).(int32), args.Error(2)
}

func (m *MockUserRepo) Update(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int32, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context, category string, page, limit int32) ([]domain.Product, int32, error) {
	args := m.Called(ctx, category, page, limit)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Get(1).(int32), args.Error(2)
}

func (m *MockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepo) SoftDelete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockBuyStockRepo struct{ mock.Mock }

func (m *MockBuyStockRepo) Create(ctx context.Context, s *domain.BuyStock) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockBuyStockRepo) GetByProduct(ctx context.Context, productID int32) (*domain.BuyStock, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BuyStock), args.Error(1)
}

func (m *MockBuyStockRepo) Update(ctx context.Context, s *domain.BuyStock) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockBuyStockRepo) ListLowStock(ctx context.Context, page, limit int32) ([]domain.BuyStock, int32, error) {
	args := m.Called(ctx, page, limit)
	var stocks []domain.BuyStock
	if args.Get(0) != nil {
		stocks = args.Get(0).([]domain.BuyStock)
	}
	return stocks, args.Get(1).(int32), args.Error(2)
}

type MockRentalAssetRepo struct{ mock.Mock }

func (m *MockRentalAssetRepo) Create(ctx context.Context, a *domain.RentalAsset) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockRentalAssetRepo) GetByID(ctx context.Context, id int32) (*domain.RentalAsset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalAsset), args.Error(1)
}

func (m *MockRentalAssetRepo) ListByProduct(ctx context.Context, productID int32, page, limit int32) ([]domain.RentalAsset, int32, error) {
	args := m.Called(ctx, productID, page, limit)
	var assets []domain.RentalAsset
	if args.Get(0) != nil {
		assets = args.Get(0).([]domain.RentalAsset)
	}
	return assets, args.Get(1).(int32), args.Error(2)
}

func (m *MockRentalAssetRepo) Update(ctx context.Context, a *domain.RentalAsset) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockRentalAssetRepo) UpdateStatus(ctx context.Context, id int32, status domain.AssetStatus, currentRentalID *int32) error {
	return m.Called(ctx, id, status, currentRentalID).Error(0)
}

type MockRentalRepo struct{ mock.Mock }

func (m *MockRentalRepo) Create(ctx context.Context, r *domain.Rental) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) GetByNumber(ctx context.Context, rentalNumber string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) List(ctx context.Context, status string, page, limit int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, status, page, limit)
	var rentals []domain.Rental
	if args.Get(0) != nil {
		rentals = args.Get(0).([]domain.Rental)
	}
	return rentals, args.Get(1).(int32), args.Error(2)
}

func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockSaleRepo struct{ mock.Mock }

func (m *MockSaleRepo) Create(ctx context.Context, s *domain.Sale) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSaleRepo) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepo) GetByBillNumber(ctx context.Context, billNumber string) (*domain.Sale, error) {
	args := m.Called(ctx, billNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepo) List(ctx context.Context, paymentStatus string, page, limit int32) ([]domain.Sale, int32, error) {
	args := m.Called(ctx, paymentStatus, page, limit)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Get(1).(int32), args.Error(2)
}

func (m *MockSaleRepo) UpdatePaymentStatus(ctx context.Context, id int32, status domain.PaymentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockActivityLogRepo struct{ mock.Mock }

func (m *MockActivityLogRepo) Create(ctx context.Context, l *domain.ActivityLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockActivityLogRepo) List(ctx context.Context, entityType string, page, limit int32) ([]domain.ActivityLog, int32, error) {
	args := m.Called(ctx, entityType, page, limit)
	var logs []domain.ActivityLog
	if args.Get(0) != nil {
		logs = args.Get(0).([]domain.ActivityLog)
	}
	return logs, args.Get(1).(int32), args.Error(2)
}

type MockResetTokenRepo struct{ mock.Mock }

func (m *MockResetTokenRepo) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockResetTokenRepo) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordResetToken), args.Error(1)
}

func (m *MockResetTokenRepo) MarkUsed(ctx context.Context, id int32, usedOn time.Time) error {
	return m.Called(ctx, id, usedOn).Error(0)
}

func (m *MockResetTokenRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendPasswordReset(ctx context.Context, email, name, token string) error {
	return m.Called(ctx, email, name, token).Error(0)
}

type MockTokenManager struct{ mock.Mock }

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string, role domain.UserRole) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
