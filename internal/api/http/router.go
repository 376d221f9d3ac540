package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/security"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
)

// Services bundles everything the router exposes.
type Services struct {
	Auth        service.AuthService
	Users       service.UserService
	Products    service.ProductService
	Stock       service.BuyStockService
	Assets      service.RentalAssetService
	Rentals     service.RentalService
	Sales       service.SaleService
	ActivityLog service.ActivityLogService
}

// NewRouter wires all HTTP routes. Auth routes and the health check are
// public, everything else requires a valid access token. User management
// and activity logs are further restricted to admins.
func NewRouter(db *sql.DB, tokens security.TokenManager, svcs Services) *mux.Router {
	auth := NewAuthHandler(svcs.Auth)
	users := NewUserHandler(svcs.Users)
	products := NewProductHandler(svcs.Products)
	stock := NewStockHandler(svcs.Stock)
	assets := NewRentalAssetHandler(svcs.Assets)
	rentals := NewRentalHandler(svcs.Rentals)
	sales := NewSaleHandler(svcs.Sales)
	logs := NewActivityLogHandler(svcs.ActivityLog)
	health := NewHealthHandler(db)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", health.Check).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", auth.ForgotPassword).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", auth.ResetPassword).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	manageUsers := func(next http.HandlerFunc) http.HandlerFunc {
		return requireRole(domain.UserRole.CanManageUsers, next)
	}
	protected.HandleFunc("/users", manageUsers(users.List)).Methods(http.MethodGet)
	protected.HandleFunc("/users", manageUsers(users.Create)).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}", manageUsers(users.Get)).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", manageUsers(users.Update)).Methods(http.MethodPut)
	protected.HandleFunc("/users/me/password", users.ChangePassword).Methods(http.MethodPut)

	protected.HandleFunc("/products", products.List).Methods(http.MethodGet)
	protected.HandleFunc("/products", products.Create).Methods(http.MethodPost)
	protected.HandleFunc("/products/{id}", products.Get).Methods(http.MethodGet)
	protected.HandleFunc("/products/{id}", products.Update).Methods(http.MethodPut)
	protected.HandleFunc("/products/{id}", adminOnly(products.Delete)).Methods(http.MethodDelete)

	protected.HandleFunc("/products/{productId}/stock", stock.GetByProduct).Methods(http.MethodGet)
	protected.HandleFunc("/products/{productId}/stock", stock.Adjust).Methods(http.MethodPut)
	protected.HandleFunc("/stock/low", stock.ListLowStock).Methods(http.MethodGet)

	protected.HandleFunc("/products/{productId}/assets", assets.ListByProduct).Methods(http.MethodGet)
	protected.HandleFunc("/assets", assets.Create).Methods(http.MethodPost)
	protected.HandleFunc("/assets/{id}", assets.Get).Methods(http.MethodGet)
	protected.HandleFunc("/assets/{id}/status", assets.UpdateStatus).Methods(http.MethodPut)

	protected.HandleFunc("/rentals", rentals.List).Methods(http.MethodGet)
	protected.HandleFunc("/rentals", rentals.Create).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/{id}", rentals.Get).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id}/status", rentals.UpdateStatus).Methods(http.MethodPut)

	protected.HandleFunc("/sales", sales.List).Methods(http.MethodGet)
	protected.HandleFunc("/sales", sales.Create).Methods(http.MethodPost)
	protected.HandleFunc("/sales/{id}", sales.Get).Methods(http.MethodGet)
	protected.HandleFunc("/sales/{id}/payment-status", sales.UpdatePaymentStatus).Methods(http.MethodPut)

	protected.HandleFunc("/activity-logs", requireRole(domain.UserRole.CanViewActivityLogs, logs.List)).Methods(http.MethodGet)

	return r
}
