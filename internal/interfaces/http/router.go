package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grocerybag/grocerybag-api/internal/application/auth"
	"github.com/grocerybag/grocerybag-api/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	SupplierUC    *ledger.SupplierUseCase
	CustomerUC    *ledger.CustomerUseCase
	PurchaseUC    *ledger.PurchaseUseCase
	SaleUC        *ledger.SaleUseCase
	ReceiptUC     *ledger.ReceiptUseCase
	TransactionUC *ledger.TransactionUseCase
	AlertUC       *ledger.AlertUseCase
	UpdatesUC     *ledger.UpdatesUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/otp/request", authHandler.RequestOTP)
	authGroup.Post("/otp/verify", authHandler.VerifyOTP)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:ref", supplierHandler.Get)
	suppliers.Put("/:ref", supplierHandler.Update)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:ref", customerHandler.Get)
	customers.Put("/:ref", customerHandler.Update)

	// Purchases (protegido)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Put("/:ref", purchaseHandler.Update)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:ref", saleHandler.Get)
	sales.Put("/:ref", saleHandler.Update)
	sales.Get("/:ref/receipt", saleHandler.Receipt)

	// Transactions (protegido)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)

	// Alerts (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Put("/:id/resolve", alertHandler.Resolve)

	// Updates (protegido)
	updatesHandler := NewUpdatesHandler(deps.UpdatesUC)
	protected.Get("/updates", updatesHandler.Recent)
}
