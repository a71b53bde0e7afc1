package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/grocerybag/grocerybag-api/internal/application/auth"
	"github.com/grocerybag/grocerybag-api/internal/application/ledger"
	infrapdf "github.com/grocerybag/grocerybag-api/internal/infrastructure/pdf"
	"github.com/grocerybag/grocerybag-api/internal/infrastructure/postgres"
	httpRouter "github.com/grocerybag/grocerybag-api/internal/interfaces/http"
	"github.com/grocerybag/grocerybag-api/pkg/config"
	"github.com/grocerybag/grocerybag-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	otpRepo := postgres.NewOTPRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, otpRepo,
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		auth.OTPConfig{
			ExpiryMinutes: cfg.OTP.ExpiryMinutes,
			DevReturnCode: cfg.OTP.DevReturnCode,
		},
	)

	supplierUC := ledger.NewSupplierUseCase(supplierRepo)
	customerUC := ledger.NewCustomerUseCase(txRunner, customerRepo)
	purchaseUC := ledger.NewPurchaseUseCase(purchaseRepo, supplierRepo)
	saleUC := ledger.NewSaleUseCase(txRunner, saleRepo, customerRepo)
	transactionUC := ledger.NewTransactionUseCase(transactionRepo)
	alertUC := ledger.NewAlertUseCase(alertRepo)
	updatesUC := ledger.NewUpdatesUseCase(supplierRepo, customerRepo, purchaseRepo, saleRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := ledger.NewReceiptUseCase(saleRepo, customerRepo, transactionRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GroceryBag API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SupplierUC:    supplierUC,
		CustomerUC:    customerUC,
		PurchaseUC:    purchaseUC,
		SaleUC:        saleUC,
		ReceiptUC:     receiptUC,
		TransactionUC: transactionUC,
		AlertUC:       alertUC,
		UpdatesUC:     updatesUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
