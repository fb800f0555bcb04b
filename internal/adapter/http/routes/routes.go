package routes

import (
	"log"
	"os"
	"strconv"

	_ "vistoria_xpto/docs" // This will be auto-generated
	"vistoria_xpto/internal/adapter/http/handlers"
	"vistoria_xpto/internal/adapter/http/sse"
	repository2 "vistoria_xpto/internal/adapter/persistence/repository"
	"vistoria_xpto/internal/infrastructure/database"
	"vistoria_xpto/internal/infrastructure/payments"
	"vistoria_xpto/internal/usecase"
	"vistoria_xpto/internal/usecase/interfaces"

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

	assessmentRepo := repository2.NewAssessmentDynamoRepository(ddb)
	lineRepo := repository2.NewLineItemDynamoRepository(ddb)
	frcRepo := repository2.NewFRCSnapshotDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)
	paymentRepo := repository2.NewExcessPaymentDynamoRepository(ddb)
	auditSink := repository2.NewAuditDynamoRepository(ddb)

	broadcaster := sse.NewBroadcaster()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	sequenceUseCase := usecase.NewSequenceUseCase(sequenceRepo)
	assessmentUseCase := usecase.NewAssessmentUseCase(assessmentRepo, sequenceUseCase, auditSink)
	stageUseCase := usecase.NewStageUseCase(assessmentRepo, frcRepo, auditSink, broadcaster)
	lineUseCase := usecase.NewLineUseCase(assessmentRepo, lineRepo, auditSink)
	reconcileUseCase := usecase.NewReconcileUseCase(assessmentRepo, lineRepo, frcRepo, auditSink)
	decisionUseCase := usecase.NewDecisionUseCase(frcRepo, auditSink)
	dashboardUseCase := usecase.NewDashboardUseCase(assessmentRepo)
	excessPaymentUseCase := usecase.NewExcessPaymentUseCase(paymentRepo, assessmentRepo, frcRepo, paymentGateway, auditSink)

	assessmentHandler := handlers.NewAssessmentHandler(assessmentUseCase, stageUseCase)
	lineHandler := handlers.NewLineHandler(lineUseCase)
	frcHandler := handlers.NewFRCHandler(reconcileUseCase, decisionUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	excessPaymentHandler := handlers.NewExcessPaymentHandler(excessPaymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAssessmentRoutes(v1, assessmentHandler, lineHandler, frcHandler, excessPaymentHandler)
	addDashboardRoutes(v1, dashboardHandler, broadcaster)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
