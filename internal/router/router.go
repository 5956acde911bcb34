package router

import (
	"database/sql"

	"sportsclub_backend/internal/handlers"
	"sportsclub_backend/internal/middleware"
	"sportsclub_backend/internal/repositories"
	"sportsclub_backend/internal/services"
	"sportsclub_backend/internal/storage"
	"sportsclub_backend/internal/textgen"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, baseFee float64, uploader *storage.Uploader, textClient *textgen.Client) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	expenditureRepo := repositories.NewExpenditureRepository(db)
	facilityRepo := repositories.NewFacilityRepository(db)
	contentRepo := repositories.NewContentRepository(db)

	// Initialize Services
	authService := services.NewAuthService(authRepo, db)
	memberService := services.NewMemberService(memberRepo, authRepo, db)
	feeService := services.NewFeeService(facilityRepo, memberRepo, baseFee)
	paymentService := services.NewPaymentService(paymentRepo, memberRepo, db)
	expenditureService := services.NewExpenditureService(expenditureRepo, db)
	reportService := services.NewReportService(paymentRepo, expenditureRepo, memberRepo)
	contentService := services.NewContentService(contentRepo, db)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	memberHandler := handlers.NewMemberHandler(memberService, feeService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	expenditureHandler := handlers.NewExpenditureHandler(expenditureService)
	reportHandler := handlers.NewReportHandler(reportService)
	facilityHandler := handlers.NewFacilityHandler(feeService)
	contentHandler := handlers.NewContentHandler(contentService)
	uploadHandler := handlers.NewUploadHandler(uploader)
	describeHandler := handlers.NewDescribeHandler(textClient)

	apiV1 := engine.Group("/api/v1")

	// Public routes: marketing content reads, contact form and login.
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)
	SetupPublicContentRoutes(apiV1, contentHandler, facilityHandler)

	// Authenticated routes.
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)

		SetupMemberRoutes(authenticated, memberHandler)
		SetupPaymentRoutes(authenticated, paymentHandler)
		SetupExpenditureRoutes(authenticated, expenditureHandler)
		SetupReportRoutes(authenticated, reportHandler)
		SetupContentAdminRoutes(authenticated, contentHandler)
		SetupUploadRoutes(authenticated, uploadHandler)
		SetupDescribeRoutes(authenticated, describeHandler)
	}
}

// SetupPublicAuthRoutes registers auth endpoints that require no token.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.RegisterUser)
	group.POST("/login", authHandler.LoginUser)
	group.POST("/refresh-token", authHandler.RefreshToken)
}

// SetupAuthenticatedAuthRoutes registers auth endpoints behind the token check.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.LogoutUser)
	group.GET("/me", authHandler.GetCurrentUser)
}
