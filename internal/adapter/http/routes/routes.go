package routes

import (
	_ "ges_rdo/docs" // This will be auto-generated
	"ges_rdo/internal/adapter/http/handlers"
	repository2 "ges_rdo/internal/adapter/persistence/repository"
	"ges_rdo/internal/infrastructure/database"
	"ges_rdo/internal/infrastructure/payments"
	"ges_rdo/internal/usecase"
	"ges_rdo/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

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

	rdoRepo := repository2.NewRDODynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	measurementRepo := repository2.NewMeasurementDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	rdoUseCase := usecase.NewRDOUseCase(rdoRepo, projectRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	timesheetUseCase := usecase.NewTimesheetUseCase(rdoRepo, projectRepo)
	measurementUseCase := usecase.NewMeasurementUseCase(measurementRepo, rdoRepo, projectRepo, paymentGateway)

	rdoHandler := handlers.NewRDOHandler(rdoUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	timesheetHandler := handlers.NewTimesheetHandler(timesheetUseCase)
	measurementHandler := handlers.NewMeasurementHandler(measurementUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRDORoutes(v1, rdoHandler, timesheetHandler)
	addProjectRoutes(v1, projectHandler)
	addMeasurementRoutes(v1, measurementHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
