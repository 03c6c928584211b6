package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"autoflow/internal/adapter/http/handlers"
	"autoflow/internal/adapter/persistence/repository"
	"autoflow/internal/domain/pdf"
	"autoflow/internal/infrastructure/auth"
	"autoflow/internal/infrastructure/database"
	"autoflow/internal/infrastructure/payments"
	"autoflow/internal/infrastructure/storage"
	"autoflow/internal/usecase"
	"autoflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	salespersonRepo := repository.NewSalespersonDynamoRepository(ddb)
	vehicleRepo := repository.NewVehicleDynamoRepository(ddb)
	optionalRepo := repository.NewOptionalAccessoryDynamoRepository(ddb)
	configRepo := repository.NewConfigurationDynamoRepository(ddb)
	proposalRepo := repository.NewProposalDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	documentRepo := repository.NewDocumentDynamoRepository(ddb)

	fileStorage, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to configure document storage: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	tokenStore := auth.NewMemoryTokenStore()
	renderer := pdf.NewInvoiceRenderer()

	authUseCase := usecase.NewAuthUseCase(customerRepo, salespersonRepo, tokenStore)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	salespersonUseCase := usecase.NewSalespersonUseCase(salespersonRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo)
	showroomUseCase := usecase.NewShowroomUseCase(vehicleRepo)
	configUseCase := usecase.NewConfigurationUseCase(configRepo, customerRepo, vehicleRepo, optionalRepo)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, customerRepo, salespersonRepo, configRepo, vehicleRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, proposalRepo, customerRepo, configRepo, vehicleRepo, documentRepo, fileStorage, renderer)
	invoicePaymentUseCase := usecase.NewInvoicePaymentUseCase(invoiceRepo, paymentGateway)
	statisticsUseCase := usecase.NewStatisticsUseCase(customerRepo, vehicleRepo, proposalRepo, invoiceRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	salespersonHandler := handlers.NewSalespersonHandler(salespersonUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	showroomHandler := handlers.NewShowroomHandler(showroomUseCase)
	configHandler := handlers.NewConfigurationHandler(configUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	invoicePaymentHandler := handlers.NewInvoicePaymentHandler(invoicePaymentUseCase)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAccountRoutes(v1, authHandler, customerHandler, salespersonHandler)
	addCatalogRoutes(v1, vehicleHandler, showroomHandler, configHandler)
	addSalesRoutes(v1, proposalHandler, invoiceHandler, invoicePaymentHandler)
	addAdminRoutes(v1, statisticsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
