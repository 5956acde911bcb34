package router

import (
	"sportsclub_backend/internal/handlers"
	"sportsclub_backend/internal/middleware"
	"sportsclub_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPublicContentRoutes sets up the routes serving the public site:
// event listings, the coaching team, club locations, the facility
// pricelist and the contact form.
func SetupPublicContentRoutes(apiGroup *gin.RouterGroup, contentHandler *handlers.ContentHandler, facilityHandler *handlers.FacilityHandler) {
	apiGroup.GET("/events", contentHandler.GetEvents)
	apiGroup.GET("/events/:id", contentHandler.GetEventByID)
	apiGroup.GET("/team", contentHandler.GetTeamMembers)
	apiGroup.GET("/locations", contentHandler.GetLocations)
	apiGroup.GET("/facilities", facilityHandler.GetFacilities)
	apiGroup.POST("/enquiries", contentHandler.SubmitEnquiry)
}

// SetupMemberRoutes sets up the member management routes.
// Writes are admin only; reads are open to any authenticated user.
func SetupMemberRoutes(authenticatedGroup *gin.RouterGroup, memberHandler *handlers.MemberHandler) {
	memberWriteRoutes := authenticatedGroup.Group("/members")
	memberWriteRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		memberWriteRoutes.POST("", memberHandler.CreateMember)
		memberWriteRoutes.PUT("/:id", memberHandler.UpdateMember)
		memberWriteRoutes.DELETE("/:id", memberHandler.DeleteMember)
	}

	authenticatedGroup.GET("/members", memberHandler.GetMembers)
	authenticatedGroup.GET("/members/:id", memberHandler.GetMemberByID)
	authenticatedGroup.GET("/members/:id/due", memberHandler.GetMemberDue)
}

// SetupPaymentRoutes sets up the dues and payment routes.
func SetupPaymentRoutes(authenticatedGroup *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentWriteRoutes := authenticatedGroup.Group("/payments")
	paymentWriteRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		paymentWriteRoutes.POST("", paymentHandler.CreatePayment)
		paymentWriteRoutes.POST("/bulk", paymentHandler.CreateBulkPayment)
		paymentWriteRoutes.PATCH("/:id/paid", paymentHandler.MarkPaymentPaid)
	}

	authenticatedGroup.GET("/payments", paymentHandler.GetPayments)
	authenticatedGroup.GET("/members/:id/payments", paymentHandler.GetMemberPayments)
}

// SetupExpenditureRoutes sets up the expenditure routes. Admin only.
func SetupExpenditureRoutes(authenticatedGroup *gin.RouterGroup, expenditureHandler *handlers.ExpenditureHandler) {
	expenditureRoutes := authenticatedGroup.Group("/expenditures")
	expenditureRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		expenditureRoutes.POST("", expenditureHandler.CreateExpenditure)
		expenditureRoutes.GET("", expenditureHandler.GetExpenditures)
		expenditureRoutes.GET("/:id", expenditureHandler.GetExpenditureByID)
		expenditureRoutes.PUT("/:id", expenditureHandler.UpdateExpenditure)
		expenditureRoutes.DELETE("/:id", expenditureHandler.DeleteExpenditure)
	}
}

// SetupReportRoutes sets up the financial report routes. Admin only.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	reportRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		reportRoutes.GET("/financial-summary", reportHandler.GetFinancialSummary)
	}
}

// SetupContentAdminRoutes sets up the content management routes used by
// the admin area. The corresponding reads are public.
func SetupContentAdminRoutes(authenticatedGroup *gin.RouterGroup, contentHandler *handlers.ContentHandler) {
	adminContent := authenticatedGroup.Group("")
	adminContent.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		adminContent.POST("/events", contentHandler.CreateEvent)
		adminContent.PUT("/events/:id", contentHandler.UpdateEvent)
		adminContent.DELETE("/events/:id", contentHandler.DeleteEvent)

		adminContent.POST("/team", contentHandler.CreateTeamMember)
		adminContent.PUT("/team/:id", contentHandler.UpdateTeamMember)
		adminContent.DELETE("/team/:id", contentHandler.DeleteTeamMember)

		adminContent.POST("/locations", contentHandler.CreateLocation)
		adminContent.PUT("/locations/:id", contentHandler.UpdateLocation)
		adminContent.DELETE("/locations/:id", contentHandler.DeleteLocation)

		adminContent.GET("/enquiries", contentHandler.GetEnquiries)
	}
}

// SetupUploadRoutes sets up the photo upload route. Admin only.
func SetupUploadRoutes(authenticatedGroup *gin.RouterGroup, uploadHandler *handlers.UploadHandler) {
	uploadRoutes := authenticatedGroup.Group("/uploads")
	uploadRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		uploadRoutes.POST("/photos", uploadHandler.UploadPhoto)
	}
}

// SetupDescribeRoutes sets up the description generation route. Admin only.
func SetupDescribeRoutes(authenticatedGroup *gin.RouterGroup, describeHandler *handlers.DescribeHandler) {
	describeRoutes := authenticatedGroup.Group("/describe")
	describeRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		describeRoutes.POST("", describeHandler.GenerateDescription)
	}
}
