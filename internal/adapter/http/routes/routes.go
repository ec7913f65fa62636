package routes

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/The0ne18/jobsbreeze-api/docs" // swag-generated documentation
	"github.com/The0ne18/jobsbreeze-api/internal/adapter/http/handlers"
	"github.com/The0ne18/jobsbreeze-api/internal/adapter/http/middleware"
	"github.com/The0ne18/jobsbreeze-api/internal/adapter/persistence/repository"
	"github.com/The0ne18/jobsbreeze-api/internal/infrastructure/config"
	"github.com/The0ne18/jobsbreeze-api/internal/infrastructure/database"
	"github.com/The0ne18/jobsbreeze-api/internal/infrastructure/payments"
	"github.com/The0ne18/jobsbreeze-api/internal/usecase"
	"github.com/The0ne18/jobsbreeze-api/internal/usecase/interfaces"
)

// Run builds the router with all dependencies wired and starts the server.
func Run(cfg config.Config) error {
	router, err := NewRouter(cfg)
	if err != nil {
		return err
	}
	return router.Run(":" + strconv.Itoa(cfg.Server.Port))
}

// NewRouter wires repositories, use cases and handlers into a gin engine.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	router := gin.Default()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.AWS)
	if err != nil {
		return nil, err
	}

	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.Tables)
	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.Tables)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb, cfg.Tables)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.Tables)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb, cfg.Tables)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, clientRepo, settingsRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, paymentRepo, estimateRepo, clientRepo, settingsRepo, paymentGateway)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	authHandler := handlers.NewAuthHandler(handlers.AuthCredentials{
		Email:        cfg.Auth.AdminEmail,
		PasswordHash: cfg.Auth.AdminPasswordHash,
		Name:         cfg.Auth.AdminName,
	}, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	v1 := router.Group("/v1")

	// Public routes
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Everything else requires a session token
	protected := v1.Group("", middleware.RequireAuth(cfg.Auth.JWTSecret))
	addEstimateRoutes(protected, estimateHandler, invoiceHandler)
	addClientRoutes(protected, clientHandler)
	addInvoiceRoutes(protected, invoiceHandler)
	addSettingsRoutes(protected, settingsHandler)

	return router, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
