package routes

import (
	"vistoria_xpto/internal/adapter/http/handlers"
	"vistoria_xpto/internal/adapter/http/sse"

	"github.com/gin-gonic/gin"
)

const (
	PathAssessments = "/assessments"
	PathAdditionals = "/additionals"
	PathPayments    = "/excess-payments"
	PathDashboard   = "/dashboard"
)

func addAssessmentRoutes(
	rg *gin.RouterGroup,
	assessmentHandler *handlers.AssessmentHandler,
	lineHandler *handlers.LineHandler,
	frcHandler *handlers.FRCHandler,
	paymentHandler *handlers.ExcessPaymentHandler,
) {
	assessments := rg.Group(PathAssessments)
	{
		assessments.POST("", assessmentHandler.OpenAssessment)
		assessments.GET("", assessmentHandler.ListAssessments)
		assessments.GET("/:id", assessmentHandler.GetAssessment)
		assessments.PATCH("/:id/scheduling", assessmentHandler.LinkScheduling)
		assessments.PATCH("/:id/stage", assessmentHandler.TransitionStage)
		assessments.PATCH("/:id/cancel", assessmentHandler.CancelAssessment)

		assessments.POST("/:id/estimate-lines", lineHandler.AddEstimateLine)
		assessments.POST("/:id/additionals", lineHandler.RequestAdditional)
		assessments.GET("/:id/line-items", lineHandler.ListLineItems)

		assessments.POST("/:id/frc/merge", frcHandler.MergeSnapshot)
		assessments.GET("/:id/frc", frcHandler.GetSnapshot)
		assessments.POST("/:id/frc/reopen", frcHandler.ReopenSnapshot)
		assessments.PATCH("/:id/frc/lines/:fingerprint", frcHandler.DecideLine)

		assessments.POST("/:id/excess-payments", paymentHandler.ChargeExcess)
		assessments.GET("/:id/excess-payments", paymentHandler.ListPayments)
	}

	additionals := rg.Group(PathAdditionals)
	{
		additionals.PATCH("/:additional_id/approve", lineHandler.ApproveAdditional)
		additionals.PATCH("/:additional_id/decline", lineHandler.DeclineAdditional)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, broadcaster *sse.Broadcaster) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/counts", dashboardHandler.CountAssessments)
		dashboard.GET("/events", broadcaster.Handler())
	}
}
